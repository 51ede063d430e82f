package dashboard

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openexhibits/exhibits-admin/internal/activity"
)

// statsResponse is the JSON response for the stats endpoint.
type statsResponse struct {
	TotalActions int `json:"total_actions"`
}

// previewRequest carries the rich text to render.
type previewRequest struct {
	Source string `json:"source"`
}

// previewResponse carries the rendered HTML fragment.
type previewResponse struct {
	HTML string `json:"html"`
}

func (d *Dashboard) handleStats(w http.ResponseWriter, r *http.Request) {
	total, err := d.activity.Count(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{TotalActions: total})
}

func (d *Dashboard) handleRecent(w http.ResponseWriter, r *http.Request) {
	entries, err := d.activity.Recent(r.Context(), 10)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (d *Dashboard) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	html, err := d.renderer.Render(req.Source)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{HTML: html})
}

// saveDraft autosaves an in-progress form payload for the session.
func (d *Dashboard) saveDraft(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	formKey := chi.URLParam(r, "formKey")

	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading draft"})
		return
	}
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "draft must be a JSON object"})
		return
	}

	if err := d.sessions.SaveDraft(r.Context(), sess.ID, formKey, string(payload)); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// getDraft returns the stored draft payload for a form, or 404.
func (d *Dashboard) getDraft(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	formKey := chi.URLParam(r, "formKey")

	payload, err := d.sessions.Draft(r.Context(), sess.ID, formKey)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if payload == "" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no draft"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(payload))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
