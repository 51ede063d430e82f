// Package dashboard serves the admin pages: one GET/POST handler pair per
// form module, all following the same shape — gather field values, validate,
// one backend call, then redirect with a flash message or re-render with an
// error banner.
package dashboard

import (
	"context"
	"html/template"

	"github.com/go-chi/chi/v5"

	"github.com/openexhibits/exhibits-admin/internal/activity"
	"github.com/openexhibits/exhibits-admin/internal/api"
	"github.com/openexhibits/exhibits-admin/internal/preview"
	"github.com/openexhibits/exhibits-admin/internal/session"
)

// Dashboard provides the server-rendered admin interface.
type Dashboard struct {
	client    *api.Client
	sessions  *session.Store
	activity  *activity.Store
	renderer  *preview.Renderer
	templates *template.Template
	feed      *feed
	maxUpload int64
}

// New creates a new Dashboard. maxUploadBytes caps media uploads through
// the browser.
func New(client *api.Client, sessions *session.Store, activityStore *activity.Store, maxUploadBytes int64) *Dashboard {
	return &Dashboard{
		client:    client,
		sessions:  sessions,
		activity:  activityStore,
		renderer:  preview.NewRenderer(),
		templates: parseTemplates(),
		feed:      newFeed(),
		maxUpload: maxUploadBytes,
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.handleHome)
	r.Get("/login", d.showLogin)
	r.Post("/login", d.handleLogin)
	r.Get("/logout", d.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(d.requireSession)

		r.Get("/exhibits", d.listExhibits)
		r.Get("/exhibits/new", d.newExhibit)
		r.Post("/exhibits", d.createExhibit)
		r.Get("/exhibits/{exhibitID}/edit", d.editExhibit)
		r.Post("/exhibits/{exhibitID}", d.updateExhibit)
		r.Post("/exhibits/{exhibitID}/delete", d.deleteExhibit)
		r.Post("/exhibits/{exhibitID}/publish", d.publishExhibit)

		r.Get("/exhibits/{exhibitID}/headings/new", d.newHeading)
		r.Post("/exhibits/{exhibitID}/headings", d.createHeading)
		r.Get("/exhibits/{exhibitID}/headings/{headingID}/edit", d.editHeading)
		r.Post("/exhibits/{exhibitID}/headings/{headingID}", d.updateHeading)
		r.Post("/exhibits/{exhibitID}/headings/{headingID}/delete", d.deleteHeading)

		r.Get("/exhibits/{exhibitID}/grids/new", d.newGrid)
		r.Post("/exhibits/{exhibitID}/grids", d.createGrid)
		r.Get("/exhibits/{exhibitID}/grids/{gridID}/edit", d.editGrid)
		r.Post("/exhibits/{exhibitID}/grids/{gridID}", d.updateGrid)
		r.Post("/exhibits/{exhibitID}/grids/{gridID}/delete", d.deleteGrid)

		r.Get("/exhibits/{exhibitID}/grids/{gridID}/items/new", d.newGridItem)
		r.Post("/exhibits/{exhibitID}/grids/{gridID}/items", d.createGridItem)
		r.Get("/exhibits/{exhibitID}/grids/{gridID}/items/{itemID}/edit", d.editGridItem)
		r.Post("/exhibits/{exhibitID}/grids/{gridID}/items/{itemID}", d.updateGridItem)
		r.Post("/exhibits/{exhibitID}/grids/{gridID}/items/{itemID}/delete", d.deleteGridItem)

		r.Get("/exhibits/{exhibitID}/timelines/new", d.newTimeline)
		r.Post("/exhibits/{exhibitID}/timelines", d.createTimeline)
		r.Get("/exhibits/{exhibitID}/timelines/{timelineID}/edit", d.editTimeline)
		r.Post("/exhibits/{exhibitID}/timelines/{timelineID}", d.updateTimeline)
		r.Post("/exhibits/{exhibitID}/timelines/{timelineID}/delete", d.deleteTimeline)

		r.Get("/exhibits/{exhibitID}/timelines/{timelineID}/items/new", d.newTimelineItem)
		r.Post("/exhibits/{exhibitID}/timelines/{timelineID}/items", d.createTimelineItem)
		r.Get("/exhibits/{exhibitID}/timelines/{timelineID}/items/{itemID}/edit", d.editTimelineItem)
		r.Post("/exhibits/{exhibitID}/timelines/{timelineID}/items/{itemID}", d.updateTimelineItem)
		r.Post("/exhibits/{exhibitID}/timelines/{timelineID}/items/{itemID}/delete", d.deleteTimelineItem)

		r.Post("/exhibits/{exhibitID}/media", d.uploadMedia)
		r.Post("/exhibits/{exhibitID}/media/delete", d.deleteMedia)

		r.Post("/api/preview", d.handlePreview)
		r.Post("/api/drafts/{formKey}", d.saveDraft)
		r.Get("/api/drafts/{formKey}", d.getDraft)
		r.Get("/api/dashboard/stats", d.handleStats)
		r.Get("/api/dashboard/recent", d.handleRecent)
		r.Get("/ws/activity", d.handleActivityFeed)
	})
}

// backend returns the API client authenticated for the given session.
func (d *Dashboard) backend(sess *session.Session) *api.Client {
	return d.client.WithToken(sess.Token)
}

// logActivity records a successful action and pushes it to the live feed.
// Logging failures never surface to the operator; the save already
// succeeded.
func (d *Dashboard) logActivity(ctx context.Context, sess *session.Session, e activity.Entry) {
	e.Username = sess.Username
	entry, err := d.activity.Record(ctx, e)
	if err == nil {
		d.feed.broadcast(entry)
	}
}
