package forms

import (
	"net/url"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// Heading assembles a heading record from the add/edit heading form. The
// same fields are gathered for both variants; the edit page controller sets
// the UUID afterwards.
func Heading(v url.Values) (*records.Heading, error) {
	if err := requireFields(v, "text"); err != nil {
		return nil, err
	}

	order, err := integer(v, "order")
	if err != nil {
		return nil, err
	}

	return &records.Heading{
		Type:      "heading",
		Text:      text(v, "text"),
		Subtext:   text(v, "subtext"),
		Order:     order,
		IsVisible: checkbox(v, "is_visible"),
		IsAnchor:  checkbox(v, "is_anchor"),
		Styles:    textStyles(v, "heading"),
	}, nil
}
