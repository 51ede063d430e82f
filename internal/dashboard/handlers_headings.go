package dashboard

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/openexhibits/exhibits-admin/internal/activity"
	"github.com/openexhibits/exhibits-admin/internal/forms"
)

func headingsPath(exhibitID string) string {
	return "/exhibits/" + exhibitID + "/headings"
}

func (d *Dashboard) newHeading(w http.ResponseWriter, r *http.Request) {
	exhibitID := chi.URLParam(r, "exhibitID")
	d.render(w, r, "heading_form", page{
		Title: "Add heading",
		Data:  formPage{Action: headingsPath(exhibitID), IsNew: true, Values: url.Values{}},
	})
}

func (d *Dashboard) createHeading(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: headingsPath(exhibitID), IsNew: true, Values: r.PostForm}

	heading, err := forms.Heading(r.PostForm)
	if err != nil {
		d.render(w, r, "heading_form", page{Title: "Add heading", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	uuid, err := d.backend(sess).CreateHeading(r.Context(), exhibitID, heading)
	if err != nil {
		d.render(w, r, "heading_form", page{Title: "Add heading", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionCreate, RecordType: "heading", RecordID: uuid,
		ExhibitID: exhibitID, Summary: heading.Text,
	})
	d.flashAndRedirect(w, r, "Heading created", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) editHeading(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	headingID := chi.URLParam(r, "headingID")
	action := headingsPath(exhibitID) + "/" + headingID

	heading, err := d.backend(sess).Heading(r.Context(), exhibitID, headingID)
	if err != nil {
		d.render(w, r, "heading_form", page{
			Title:  "Edit heading",
			Banner: errorBanner(err.Error()),
			Data:   formPage{Action: action, Values: url.Values{}},
		})
		return
	}

	d.render(w, r, "heading_form", page{
		Title: "Edit heading",
		Data:  formPage{Action: action, Values: headingValues(heading)},
	})
}

func (d *Dashboard) updateHeading(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	headingID := chi.URLParam(r, "headingID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: headingsPath(exhibitID) + "/" + headingID, Values: r.PostForm}

	heading, err := forms.Heading(r.PostForm)
	if err != nil {
		d.render(w, r, "heading_form", page{Title: "Edit heading", Banner: errorBanner(err.Error()), Data: form})
		return
	}
	heading.UUID = headingID

	if err := d.backend(sess).UpdateHeading(r.Context(), exhibitID, headingID, heading); err != nil {
		d.render(w, r, "heading_form", page{Title: "Edit heading", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionUpdate, RecordType: "heading", RecordID: headingID,
		ExhibitID: exhibitID, Summary: heading.Text,
	})
	d.flashAndRedirect(w, r, "Heading saved", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) deleteHeading(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	headingID := chi.URLParam(r, "headingID")

	if err := d.backend(sess).DeleteHeading(r.Context(), exhibitID, headingID); err != nil {
		d.flashAndRedirect(w, r, err.Error(), "/exhibits/"+exhibitID+"/edit")
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionDelete, RecordType: "heading", RecordID: headingID,
		ExhibitID: exhibitID,
	})
	d.flashAndRedirect(w, r, "Heading deleted", "/exhibits/"+exhibitID+"/edit")
}
