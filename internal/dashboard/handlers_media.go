package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openexhibits/exhibits-admin/internal/activity"
)

// uploadMedia forwards one media file from the browser to the backend and
// answers with the stored filename, which the edit page writes back into
// its media field.
func (d *Dashboard) uploadMedia(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")

	r.Body = http.MaxBytesReader(w, r.Body, d.maxUpload)
	if err := r.ParseMultipartForm(d.maxUpload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "upload too large or malformed: " + err.Error()})
		return
	}

	file, header, err := r.FormFile("media")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "media file is required"})
		return
	}
	defer file.Close()

	stored, err := d.backend(sess).UploadMedia(r.Context(), exhibitID, header.Filename, file)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionUpload, RecordType: "media", RecordID: stored,
		ExhibitID: exhibitID, Summary: header.Filename,
	})
	writeJSON(w, http.StatusOK, map[string]string{"media": stored})
}

// deleteMedia removes an uploaded file from the backend, invoked when the
// operator clears a media field.
func (d *Dashboard) deleteMedia(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	filename := r.PostForm.Get("media")
	if filename == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "media filename is required"})
		return
	}

	if err := d.backend(sess).DeleteMedia(r.Context(), exhibitID, filename); err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionDelete, RecordType: "media", RecordID: filename,
		ExhibitID: exhibitID, Summary: filename,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
