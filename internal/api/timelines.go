package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// Timelines lists the timeline containers attached to an exhibit.
func (c *Client) Timelines(ctx context.Context, exhibitID string) ([]records.Timeline, error) {
	path := expand(epTimelines, map[string]string{"exhibit_id": exhibitID})

	var timelines []records.Timeline
	if err := c.getList(ctx, path, &timelines); err != nil {
		return nil, err
	}
	return timelines, nil
}

// CreateTimeline attaches a new timeline container to an exhibit.
func (c *Client) CreateTimeline(ctx context.Context, exhibitID string, timeline *records.Timeline) (string, error) {
	path := expand(epTimelines, map[string]string{"exhibit_id": exhibitID})
	timeline.ExhibitID = exhibitID

	data, err := c.do(ctx, http.MethodPost, path, timeline)
	if err != nil {
		return "", err
	}
	return createdUUID(data)
}

// UpdateTimeline replaces a timeline container record.
func (c *Client) UpdateTimeline(ctx context.Context, exhibitID, timelineID string, timeline *records.Timeline) error {
	path := expand(epTimeline, map[string]string{"exhibit_id": exhibitID, "timeline_id": timelineID})
	timeline.ExhibitID = exhibitID
	_, err := c.do(ctx, http.MethodPut, path, timeline)
	return err
}

// DeleteTimeline removes a timeline container and its items.
func (c *Client) DeleteTimeline(ctx context.Context, exhibitID, timelineID string) error {
	path := expand(epTimeline, map[string]string{"exhibit_id": exhibitID, "timeline_id": timelineID})
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

// TimelineItems lists the items inside a timeline.
func (c *Client) TimelineItems(ctx context.Context, exhibitID, timelineID string) ([]records.TimelineItem, error) {
	path := expand(epTimelineItems, map[string]string{"exhibit_id": exhibitID, "timeline_id": timelineID})

	var items []records.TimelineItem
	if err := c.getList(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// TimelineItem fetches a single timeline item record.
func (c *Client) TimelineItem(ctx context.Context, exhibitID, timelineID, itemID string) (*records.TimelineItem, error) {
	path := expand(epTimelineItem, map[string]string{"exhibit_id": exhibitID, "timeline_id": timelineID, "item_id": itemID})

	var items []records.TimelineItem
	if err := c.getList(ctx, path, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("timeline item %s not found", itemID)
	}
	return &items[0], nil
}

// CreateTimelineItem adds an item to a timeline and returns its uuid.
func (c *Client) CreateTimelineItem(ctx context.Context, exhibitID, timelineID string, item *records.TimelineItem) (string, error) {
	path := expand(epTimelineItems, map[string]string{"exhibit_id": exhibitID, "timeline_id": timelineID})
	item.TimelineID = timelineID

	data, err := c.do(ctx, http.MethodPost, path, item)
	if err != nil {
		return "", err
	}
	return createdUUID(data)
}

// UpdateTimelineItem replaces a timeline item record.
func (c *Client) UpdateTimelineItem(ctx context.Context, exhibitID, timelineID, itemID string, item *records.TimelineItem) error {
	path := expand(epTimelineItem, map[string]string{"exhibit_id": exhibitID, "timeline_id": timelineID, "item_id": itemID})
	item.TimelineID = timelineID
	_, err := c.do(ctx, http.MethodPut, path, item)
	return err
}

// DeleteTimelineItem removes a timeline item record.
func (c *Client) DeleteTimelineItem(ctx context.Context, exhibitID, timelineID, itemID string) error {
	path := expand(epTimelineItem, map[string]string{"exhibit_id": exhibitID, "timeline_id": timelineID, "item_id": itemID})
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
