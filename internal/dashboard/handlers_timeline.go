package dashboard

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/openexhibits/exhibits-admin/internal/activity"
	"github.com/openexhibits/exhibits-admin/internal/forms"
)

func timelineItemsPath(exhibitID, timelineID string) string {
	return "/exhibits/" + exhibitID + "/timelines/" + timelineID + "/items"
}

func (d *Dashboard) newTimelineItem(w http.ResponseWriter, r *http.Request) {
	exhibitID := chi.URLParam(r, "exhibitID")
	timelineID := chi.URLParam(r, "timelineID")
	d.render(w, r, "timeline_item_form", page{
		Title: "Add timeline item",
		Data:  formPage{Action: timelineItemsPath(exhibitID, timelineID), ExhibitID: exhibitID, IsNew: true, Values: url.Values{}},
	})
}

func (d *Dashboard) createTimelineItem(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	timelineID := chi.URLParam(r, "timelineID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: timelineItemsPath(exhibitID, timelineID), ExhibitID: exhibitID, IsNew: true, Values: r.PostForm}

	item, err := forms.TimelineItem(r.PostForm)
	if err != nil {
		d.render(w, r, "timeline_item_form", page{Title: "Add timeline item", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	uuid, err := d.backend(sess).CreateTimelineItem(r.Context(), exhibitID, timelineID, item)
	if err != nil {
		d.render(w, r, "timeline_item_form", page{Title: "Add timeline item", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionCreate, RecordType: "timeline_item", RecordID: uuid,
		ExhibitID: exhibitID, Summary: item.Title,
	})
	d.flashAndRedirect(w, r, "Timeline item created", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) editTimelineItem(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	timelineID := chi.URLParam(r, "timelineID")
	itemID := chi.URLParam(r, "itemID")
	action := timelineItemsPath(exhibitID, timelineID) + "/" + itemID

	item, err := d.backend(sess).TimelineItem(r.Context(), exhibitID, timelineID, itemID)
	if err != nil {
		d.render(w, r, "timeline_item_form", page{
			Title:  "Edit timeline item",
			Banner: errorBanner(err.Error()),
			Data:   formPage{Action: action, ExhibitID: exhibitID, Values: url.Values{}},
		})
		return
	}

	d.render(w, r, "timeline_item_form", page{
		Title: "Edit timeline item",
		Data:  formPage{Action: action, ExhibitID: exhibitID, Values: timelineItemValues(item)},
	})
}

func (d *Dashboard) updateTimelineItem(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	timelineID := chi.URLParam(r, "timelineID")
	itemID := chi.URLParam(r, "itemID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: timelineItemsPath(exhibitID, timelineID) + "/" + itemID, ExhibitID: exhibitID, Values: r.PostForm}

	item, err := forms.TimelineItem(r.PostForm)
	if err != nil {
		d.render(w, r, "timeline_item_form", page{Title: "Edit timeline item", Banner: errorBanner(err.Error()), Data: form})
		return
	}
	item.UUID = itemID

	if err := d.backend(sess).UpdateTimelineItem(r.Context(), exhibitID, timelineID, itemID, item); err != nil {
		d.render(w, r, "timeline_item_form", page{Title: "Edit timeline item", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionUpdate, RecordType: "timeline_item", RecordID: itemID,
		ExhibitID: exhibitID, Summary: item.Title,
	})
	d.flashAndRedirect(w, r, "Timeline item saved", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) deleteTimelineItem(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	timelineID := chi.URLParam(r, "timelineID")
	itemID := chi.URLParam(r, "itemID")

	if err := d.backend(sess).DeleteTimelineItem(r.Context(), exhibitID, timelineID, itemID); err != nil {
		d.flashAndRedirect(w, r, err.Error(), "/exhibits/"+exhibitID+"/edit")
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionDelete, RecordType: "timeline_item", RecordID: itemID,
		ExhibitID: exhibitID,
	})
	d.flashAndRedirect(w, r, "Timeline item deleted", "/exhibits/"+exhibitID+"/edit")
}
