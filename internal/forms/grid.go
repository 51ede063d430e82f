package forms

import (
	"net/url"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// Grid assembles a grid container record from the grid settings form.
func Grid(v url.Values) (*records.Grid, error) {
	if err := requireFields(v, "columns"); err != nil {
		return nil, err
	}

	columns, err := integer(v, "columns")
	if err != nil {
		return nil, err
	}
	order, err := integer(v, "order")
	if err != nil {
		return nil, err
	}

	return &records.Grid{
		Type:      "grid",
		Columns:   columns,
		Order:     order,
		IsVisible: checkbox(v, "is_visible"),
	}, nil
}

// GridItem assembles a grid item record from the add/edit item form. Item
// type is required; the media sub-object is built only when a media source
// was provided.
func GridItem(v url.Values) (*records.GridItem, error) {
	if err := requireFields(v, "item_type"); err != nil {
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

	return &records.GridItem{
		Type:        "item",
		Title:       text(v, "title"),
		Caption:     text(v, "caption"),
		Text:        text(v, "item_text"),
		Description: text(v, "description"),
		ItemType:    text(v, "item_type"),
		Layout:      text(v, "layout"),
		WrapText:    checkbox(v, "wrap_text"),
		Media:       media,
		Styles:      textStyles(v, "item"),
		IsPublished: checkbox(v, "is_published"),
		Order:       order,
	}, nil
}
