package forms

import (
	"net/url"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// Exhibit assembles an exhibit record from the add/edit exhibit form.
// Title is the only required field; style sub-objects are built only from
// the fields the curator set.
func Exhibit(v url.Values) (*records.Exhibit, error) {
	if err := requireFields(v, "title"); err != nil {
		return nil, err
	}

	order, err := integer(v, "order")
	if err != nil {
		return nil, err
	}

	e := &records.Exhibit{
		Type:             "exhibit",
		Title:            text(v, "title"),
		Subtitle:         text(v, "subtitle"),
		BannerTemplate:   text(v, "banner_template"),
		AboutTheCurators: text(v, "about_the_curators"),
		AlertText:        text(v, "alert_text"),
		HeroImage:        text(v, "hero_image"),
		Thumbnail:        text(v, "thumbnail"),
		IsPublished:      checkbox(v, "is_published"),
		IsFeatured:       checkbox(v, "is_featured"),
		IsEmbedded:       checkbox(v, "is_embedded"),
		Order:            order,
	}

	e.Styles = exhibitStyles(v)
	return e, nil
}

// exhibitStyles builds the nested exhibit style object. Each level exists
// only when at least one of its fields was set.
func exhibitStyles(v url.Values) *records.ExhibitStyles {
	menu := textStyles(v, "nav_menu")
	template := textStyles(v, "template")
	if menu == nil && template == nil {
		return nil
	}

	s := &records.ExhibitStyles{Template: template}
	if menu != nil {
		s.Navigation = &records.NavigationStyles{Menu: menu}
	}
	return s
}
