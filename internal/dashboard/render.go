package dashboard

import (
	"log"
	"net/http"
)

// Banner is the status message block rendered at the top of every page.
type Banner struct {
	Level   string // "error" or "success"
	Message string
}

func errorBanner(message string) *Banner {
	return &Banner{Level: "error", Message: message}
}

func successBanner(message string) *Banner {
	return &Banner{Level: "success", Message: message}
}

// page is the data handed to every template.
type page struct {
	Title    string
	Username string
	Banner   *Banner
	Data     any
}

// render executes one page template. Rendering failures surface as a bare
// 500; by this point headers may already be out.
func (d *Dashboard) render(w http.ResponseWriter, r *http.Request, name string, p page) {
	if sess := currentSession(r); sess != nil {
		p.Username = sess.Username
		if p.Banner == nil {
			if flash, err := d.sessions.PopFlash(r.Context(), sess.ID); err == nil && flash != "" {
				p.Banner = successBanner(flash)
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.templates.ExecuteTemplate(w, name, p); err != nil {
		log.Printf("dashboard: rendering %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
