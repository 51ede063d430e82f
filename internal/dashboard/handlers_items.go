package dashboard

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/openexhibits/exhibits-admin/internal/activity"
	"github.com/openexhibits/exhibits-admin/internal/forms"
)

func gridItemsPath(exhibitID, gridID string) string {
	return "/exhibits/" + exhibitID + "/grids/" + gridID + "/items"
}

func (d *Dashboard) newGridItem(w http.ResponseWriter, r *http.Request) {
	exhibitID := chi.URLParam(r, "exhibitID")
	gridID := chi.URLParam(r, "gridID")
	d.render(w, r, "grid_item_form", page{
		Title: "Add grid item",
		Data:  formPage{Action: gridItemsPath(exhibitID, gridID), ExhibitID: exhibitID, IsNew: true, Values: url.Values{}},
	})
}

func (d *Dashboard) createGridItem(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	gridID := chi.URLParam(r, "gridID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: gridItemsPath(exhibitID, gridID), ExhibitID: exhibitID, IsNew: true, Values: r.PostForm}

	item, err := forms.GridItem(r.PostForm)
	if err != nil {
		d.render(w, r, "grid_item_form", page{Title: "Add grid item", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	uuid, err := d.backend(sess).CreateGridItem(r.Context(), exhibitID, gridID, item)
	if err != nil {
		d.render(w, r, "grid_item_form", page{Title: "Add grid item", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionCreate, RecordType: "grid_item", RecordID: uuid,
		ExhibitID: exhibitID, Summary: item.Title,
	})
	d.flashAndRedirect(w, r, "Grid item created", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) editGridItem(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	gridID := chi.URLParam(r, "gridID")
	itemID := chi.URLParam(r, "itemID")
	action := gridItemsPath(exhibitID, gridID) + "/" + itemID

	item, err := d.backend(sess).GridItem(r.Context(), exhibitID, gridID, itemID)
	if err != nil {
		d.render(w, r, "grid_item_form", page{
			Title:  "Edit grid item",
			Banner: errorBanner(err.Error()),
			Data:   formPage{Action: action, ExhibitID: exhibitID, Values: url.Values{}},
		})
		return
	}

	d.render(w, r, "grid_item_form", page{
		Title: "Edit grid item",
		Data:  formPage{Action: action, ExhibitID: exhibitID, Values: gridItemValues(item)},
	})
}

func (d *Dashboard) updateGridItem(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	gridID := chi.URLParam(r, "gridID")
	itemID := chi.URLParam(r, "itemID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: gridItemsPath(exhibitID, gridID) + "/" + itemID, ExhibitID: exhibitID, Values: r.PostForm}

	item, err := forms.GridItem(r.PostForm)
	if err != nil {
		d.render(w, r, "grid_item_form", page{Title: "Edit grid item", Banner: errorBanner(err.Error()), Data: form})
		return
	}
	item.UUID = itemID

	if err := d.backend(sess).UpdateGridItem(r.Context(), exhibitID, gridID, itemID, item); err != nil {
		d.render(w, r, "grid_item_form", page{Title: "Edit grid item", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionUpdate, RecordType: "grid_item", RecordID: itemID,
		ExhibitID: exhibitID, Summary: item.Title,
	})
	d.flashAndRedirect(w, r, "Grid item saved", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) deleteGridItem(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	gridID := chi.URLParam(r, "gridID")
	itemID := chi.URLParam(r, "itemID")

	if err := d.backend(sess).DeleteGridItem(r.Context(), exhibitID, gridID, itemID); err != nil {
		d.flashAndRedirect(w, r, err.Error(), "/exhibits/"+exhibitID+"/edit")
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionDelete, RecordType: "grid_item", RecordID: itemID,
		ExhibitID: exhibitID,
	})
	d.flashAndRedirect(w, r, "Grid item deleted", "/exhibits/"+exhibitID+"/edit")
}
