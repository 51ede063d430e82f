package dashboard

import (
	"net/http"
	"net/url"
)

func (d *Dashboard) handleHome(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(cookieName); err == nil {
		if _, err := d.sessions.Get(r.Context(), cookie.Value); err == nil {
			http.Redirect(w, r, "/exhibits", http.StatusSeeOther)
			return
		}
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (d *Dashboard) showLogin(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, "login", page{
		Title: "Sign in",
		Data:  formPage{Values: url.Values{}},
	})
}

func (d *Dashboard) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		d.render(w, r, "login", page{
			Title:  "Sign in",
			Banner: errorBanner("username and password are required"),
			Data:   formPage{Values: r.PostForm},
		})
		return
	}

	token, user, err := d.client.Login(r.Context(), username, password)
	if err != nil {
		d.render(w, r, "login", page{
			Title:  "Sign in",
			Banner: errorBanner(err.Error()),
			Data:   formPage{Values: r.PostForm},
		})
		return
	}

	sess, err := d.sessions.Create(r.Context(), token, user.Username)
	if err != nil {
		d.render(w, r, "login", page{
			Title:  "Sign in",
			Banner: errorBanner(err.Error()),
			Data:   formPage{Values: r.PostForm},
		})
		return
	}

	setSessionCookie(w, sess.ID)
	http.Redirect(w, r, "/exhibits", http.StatusSeeOther)
}

func (d *Dashboard) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(cookieName); err == nil {
		_ = d.sessions.Delete(r.Context(), cookie.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
