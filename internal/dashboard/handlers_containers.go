package dashboard

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/openexhibits/exhibits-admin/internal/activity"
	"github.com/openexhibits/exhibits-admin/internal/forms"
	"github.com/openexhibits/exhibits-admin/internal/records"
	"github.com/openexhibits/exhibits-admin/internal/session"
)

func gridsPath(exhibitID string) string {
	return "/exhibits/" + exhibitID + "/grids"
}

func timelinesPath(exhibitID string) string {
	return "/exhibits/" + exhibitID + "/timelines"
}

func (d *Dashboard) newGrid(w http.ResponseWriter, r *http.Request) {
	exhibitID := chi.URLParam(r, "exhibitID")
	d.render(w, r, "grid_form", page{
		Title: "Add grid",
		Data:  formPage{Action: gridsPath(exhibitID), IsNew: true, Values: url.Values{}},
	})
}

func (d *Dashboard) createGrid(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: gridsPath(exhibitID), IsNew: true, Values: r.PostForm}

	grid, err := forms.Grid(r.PostForm)
	if err != nil {
		d.render(w, r, "grid_form", page{Title: "Add grid", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	uuid, err := d.backend(sess).CreateGrid(r.Context(), exhibitID, grid)
	if err != nil {
		d.render(w, r, "grid_form", page{Title: "Add grid", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionCreate, RecordType: "grid", RecordID: uuid,
		ExhibitID: exhibitID,
	})
	d.flashAndRedirect(w, r, "Grid created", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) editGrid(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	gridID := chi.URLParam(r, "gridID")
	action := gridsPath(exhibitID) + "/" + gridID

	grid, err := d.findGrid(r, sess, exhibitID, gridID)
	if err != nil {
		d.render(w, r, "grid_form", page{
			Title:  "Edit grid",
			Banner: errorBanner(err.Error()),
			Data:   formPage{Action: action, Values: url.Values{}},
		})
		return
	}

	d.render(w, r, "grid_form", page{
		Title: "Edit grid",
		Data:  formPage{Action: action, Values: gridValues(grid)},
	})
}

func (d *Dashboard) updateGrid(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	gridID := chi.URLParam(r, "gridID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: gridsPath(exhibitID) + "/" + gridID, Values: r.PostForm}

	grid, err := forms.Grid(r.PostForm)
	if err != nil {
		d.render(w, r, "grid_form", page{Title: "Edit grid", Banner: errorBanner(err.Error()), Data: form})
		return
	}
	grid.UUID = gridID

	if err := d.backend(sess).UpdateGrid(r.Context(), exhibitID, gridID, grid); err != nil {
		d.render(w, r, "grid_form", page{Title: "Edit grid", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionUpdate, RecordType: "grid", RecordID: gridID,
		ExhibitID: exhibitID,
	})
	d.flashAndRedirect(w, r, "Grid saved", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) deleteGrid(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	gridID := chi.URLParam(r, "gridID")

	if err := d.backend(sess).DeleteGrid(r.Context(), exhibitID, gridID); err != nil {
		d.flashAndRedirect(w, r, err.Error(), "/exhibits/"+exhibitID+"/edit")
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionDelete, RecordType: "grid", RecordID: gridID,
		ExhibitID: exhibitID,
	})
	d.flashAndRedirect(w, r, "Grid deleted", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) newTimeline(w http.ResponseWriter, r *http.Request) {
	exhibitID := chi.URLParam(r, "exhibitID")
	d.render(w, r, "timeline_form", page{
		Title: "Add timeline",
		Data:  formPage{Action: timelinesPath(exhibitID), IsNew: true, Values: url.Values{}},
	})
}

func (d *Dashboard) createTimeline(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: timelinesPath(exhibitID), IsNew: true, Values: r.PostForm}

	timeline, err := forms.Timeline(r.PostForm)
	if err != nil {
		d.render(w, r, "timeline_form", page{Title: "Add timeline", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	uuid, err := d.backend(sess).CreateTimeline(r.Context(), exhibitID, timeline)
	if err != nil {
		d.render(w, r, "timeline_form", page{Title: "Add timeline", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionCreate, RecordType: "timeline", RecordID: uuid,
		ExhibitID: exhibitID, Summary: timeline.Title,
	})
	d.flashAndRedirect(w, r, "Timeline created", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) editTimeline(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	timelineID := chi.URLParam(r, "timelineID")
	action := timelinesPath(exhibitID) + "/" + timelineID

	timeline, err := d.findTimeline(r, sess, exhibitID, timelineID)
	if err != nil {
		d.render(w, r, "timeline_form", page{
			Title:  "Edit timeline",
			Banner: errorBanner(err.Error()),
			Data:   formPage{Action: action, Values: url.Values{}},
		})
		return
	}

	d.render(w, r, "timeline_form", page{
		Title: "Edit timeline",
		Data:  formPage{Action: action, Values: timelineValues(timeline)},
	})
}

func (d *Dashboard) updateTimeline(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	timelineID := chi.URLParam(r, "timelineID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formPage{Action: timelinesPath(exhibitID) + "/" + timelineID, Values: r.PostForm}

	timeline, err := forms.Timeline(r.PostForm)
	if err != nil {
		d.render(w, r, "timeline_form", page{Title: "Edit timeline", Banner: errorBanner(err.Error()), Data: form})
		return
	}
	timeline.UUID = timelineID

	if err := d.backend(sess).UpdateTimeline(r.Context(), exhibitID, timelineID, timeline); err != nil {
		d.render(w, r, "timeline_form", page{Title: "Edit timeline", Banner: errorBanner(err.Error()), Data: form})
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionUpdate, RecordType: "timeline", RecordID: timelineID,
		ExhibitID: exhibitID, Summary: timeline.Title,
	})
	d.flashAndRedirect(w, r, "Timeline saved", "/exhibits/"+exhibitID+"/edit")
}

func (d *Dashboard) deleteTimeline(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	exhibitID := chi.URLParam(r, "exhibitID")
	timelineID := chi.URLParam(r, "timelineID")

	if err := d.backend(sess).DeleteTimeline(r.Context(), exhibitID, timelineID); err != nil {
		d.flashAndRedirect(w, r, err.Error(), "/exhibits/"+exhibitID+"/edit")
		return
	}

	d.logActivity(r.Context(), sess, activity.Entry{
		Action: activity.ActionDelete, RecordType: "timeline", RecordID: timelineID,
		ExhibitID: exhibitID,
	})
	d.flashAndRedirect(w, r, "Timeline deleted", "/exhibits/"+exhibitID+"/edit")
}

// findGrid locates one grid in the exhibit's grid list; the backend has no
// single-grid read.
func (d *Dashboard) findGrid(r *http.Request, sess *session.Session, exhibitID, gridID string) (*records.Grid, error) {
	grids, err := d.backend(sess).Grids(r.Context(), exhibitID)
	if err != nil {
		return nil, err
	}
	for i := range grids {
		if grids[i].UUID == gridID {
			return &grids[i], nil
		}
	}
	return nil, fmt.Errorf("grid %s not found", gridID)
}

// findTimeline locates one timeline in the exhibit's timeline list.
func (d *Dashboard) findTimeline(r *http.Request, sess *session.Session, exhibitID, timelineID string) (*records.Timeline, error) {
	timelines, err := d.backend(sess).Timelines(r.Context(), exhibitID)
	if err != nil {
		return nil, err
	}
	for i := range timelines {
		if timelines[i].UUID == timelineID {
			return &timelines[i], nil
		}
	}
	return nil, fmt.Errorf("timeline %s not found", timelineID)
}
