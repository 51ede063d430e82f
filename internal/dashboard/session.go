package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/openexhibits/exhibits-admin/internal/session"
)

// cookieName keys the operator's session row.
const cookieName = "exhibits_session"

type ctxKey int

const sessionKey ctxKey = 0

// requireSession redirects unauthenticated page requests to the login form
// and puts the live session on the request context otherwise.
func (d *Dashboard) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(cookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		sess, err := d.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentSession returns the session placed on the context by
// requireSession.
func currentSession(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionKey).(*session.Session)
	return sess
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// flashAndRedirect stores a one-shot status message and sends the operator
// to the next page, the server-side equivalent of the old "show message,
// wait, then navigate" pattern.
func (d *Dashboard) flashAndRedirect(w http.ResponseWriter, r *http.Request, message, location string) {
	if sess := currentSession(r); sess != nil {
		_ = d.sessions.SetFlash(r.Context(), sess.ID, message)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
