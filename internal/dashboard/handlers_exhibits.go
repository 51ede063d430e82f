package dashboard

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/openexhibits/exhibits-admin/internal/activity"
	"github.com/openexhibits/exhibits-admin/internal/forms"
)

func (d *Dashboard) listExhibits(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)

	exhibits, err := d.backend(sess).Exhibits(r.Context())
	if err != nil {
		d.render(w, r, "exhibits", page{
			Title:  "Exhibits",
			Banner: errorBanner(err.Error()),
			Data:   exhibitsPage{},
		})
		return
	}

	d.render(w, r, "exhibits", page{
		Title: "Exhibits",
		Data:  exhibitsPage{Exhibits: exhibits},
	})
}

func (d *Dashboard) newExhibit(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, "exhibit_form", page{
		Title: "Add exhibit",
		Data:  formPage{Action: "/exhibits", IsNew: true, Values: url.Values{}},
	})
}

func (d *Dashboard) createExhibit(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: "/exhibits", IsNew: true, Values: r.PostForm}

	exhibit, err := forms.Exhibit(r.PostForm)
	if err != nil {
		d.render(w, r, "exhibit_form", page{Title: "Add exhibit", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	uuid, err := d.backend(sess).CreateExhibit(r.Context(), exhibit)
	if err != nil {
		d.render(w, r, "exhibit_form", page{Title: "Add exhibit", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionCreate, RecordType: "exhibit", RecordID: uuid,
		ExhibitID: uuid, Summary: exhibit.Title,
	})
	d.flashAndRedirect(w, r, "Exhibit created", "/exhibits/"+uuid+"/edit")
}

func (d *Dashboard) editExhibit(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")

	exhibit, err := d.backend(sess).Exhibit(r.Context(), exhibitID)
	if err != nil {
		d.render(w, r, "exhibit_form", page{
			Title:  "Edit exhibit",
			Banner: errorBanner(err.Error()),
			Data:   formPage{Action: "/exhibits/" + exhibitID, Values: url.Values{}},
		})
		return
	}

	d.render(w, r, "exhibit_form", page{
		Title: "Edit exhibit",
		Data:  formPage{Action: "/exhibits/" + exhibitID, Values: exhibitValues(exhibit)},
	})
}

func (d *Dashboard) updateExhibit(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: "/exhibits/" + exhibitID, Values: r.PostForm}

	exhibit, err := forms.Exhibit(r.PostForm)
	if err != nil {
		d.render(w, r, "exhibit_form", page{Title: "Edit exhibit", Banner: errorBanner(err.Error()), Data: form})
		return
	}
	exhibit.UUID = exhibitID

	if err := d.backend(sess).UpdateExhibit(r.Context(), exhibitID, exhibit); err != nil {
		d.render(w, r, "exhibit_form", page{Title: "Edit exhibit", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionUpdate, RecordType: "exhibit", RecordID: exhibitID,
		ExhibitID: exhibitID, Summary: exhibit.Title,
	})
	d.flashAndRedirect(w, r, "Exhibit saved", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) deleteExhibit(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")

	if err := d.backend(sess).DeleteExhibit(r.Context(), exhibitID); err != nil {
		d.flashAndRedirect(w, r, err.Error(), "/exhibits")
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionDelete, RecordType: "exhibit", RecordID: exhibitID,
		ExhibitID: exhibitID,
	})
	d.flashAndRedirect(w, r, "Exhibit deleted", "/exhibits")
}

func (d *Dashboard) publishExhibit(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	publish := r.PostForm.Get("state") == "on"

	if err := d.backend(sess).SetExhibitPublished(r.Context(), exhibitID, publish); err != nil {
		d.flashAndRedirect(w, r, err.Error(), "/exhibits")
		return
	}

	action := activity.ActionPublish
	message := "Exhibit published"
	if !publish {
		action = activity.ActionUnpublish
		message = "Exhibit unpublished"
	}
	d.logActivity(r.Context(), sess, activity.Entry{
		Action: action, RecordType: "exhibit", RecordID: exhibitID, ExhibitID: exhibitID,
	})
	d.flashAndRedirect(w, r, message, "/exhibits")
}
