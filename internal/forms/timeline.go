package forms

import (
	"net/url"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// Timeline assembles a timeline container record from the timeline
// settings form.
func Timeline(v url.Values) (*records.Timeline, error) {
	order, err := integer(v, "order")
	if err != nil {
		return nil, err
	}

	return &records.Timeline{
		Type:      "vertical_timeline",
		Title:     text(v, "title"),
		Order:     order,
		IsVisible: checkbox(v, "is_visible"),
	}, nil
}

// TimelineItem assembles a timeline item record from the add/edit item
// form. Year anchors the item on the timeline and is required; the media
// sub-object is built only when a media source was provided.
func TimelineItem(v url.Values) (*records.TimelineItem, error) {
	if err := requireFields(v, "year"); err != nil {
		return nil, err
	}

	year, err := integer(v, "year")
	if err != nil {
		return nil, err
	}
	itemDate, err := date(v, "date")
	if err != nil {
		return nil, err
	}
	order, err := integer(v, "order")
	if err != nil {
		return nil, err
	}
	media, err := mediaField(v)
	if err != nil {
		return nil, err
	}

	return &records.TimelineItem{
		Type:        "timeline_item",
		Title:       text(v, "title"),
		Year:        year,
		Date:        itemDate,
		Text:        text(v, "item_text"),
		Layout:      text(v, "layout"),
		Media:       media,
		Styles:      textStyles(v, "item"),
		IsPublished: checkbox(v, "is_published"),
		Order:       order,
	}, nil
}
