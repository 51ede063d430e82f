package dashboard

import (
	"net/url"
	"strconv"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// The edit pages repopulate their inputs from url.Values so the same
// template serves three cases: a fresh form, a fetched record, and a failed
// submit echoed back. These helpers are the inverse of the forms package.

func setChecked(v url.Values, name string, checked bool) {
	if checked {
		v.Set(name, "on")
	}
}

func setInt(v url.Values, name string, n int) {
	if n != 0 {
		v.Set(name, strconv.Itoa(n))
	}
}

func setStyles(v url.Values, prefix string, s *records.TextStyles) {
	if s == nil {
		return
	}
	v.Set(prefix+"_font_family", s.FontFamily)
	v.Set(prefix+"_font_size", s.FontSize)
	v.Set(prefix+"_font_color", s.FontColor)
	v.Set(prefix+"_background_color", s.BackgroundColor)
}

func setMedia(v url.Values, m *records.MediaField) {
	if m == nil {
		return
	}
	if m.MediaType == records.MediaRepo {
		v.Set("repo_item_id", m.Source)
	} else {
		v.Set("media", m.Source)
	}
	v.Set("media_type", m.MediaType)
	v.Set("media_thumbnail", m.Thumbnail)
	setInt(v, "media_width", m.Width)
	setInt(v, "pdf_open_to_page", m.PDFOpenToPage)
}

func exhibitValues(e *records.Exhibit) url.Values {
	v := url.Values{}
	v.Set("title", e.Title)
	v.Set("subtitle", e.Subtitle)
	v.Set("banner_template", e.BannerTemplate)
	v.Set("about_the_curators", e.AboutTheCurators)
	v.Set("alert_text", e.AlertText)
	v.Set("hero_image", e.HeroImage)
	v.Set("thumbnail", e.Thumbnail)
	setChecked(v, "is_published", e.IsPublished)
	setChecked(v, "is_featured", e.IsFeatured)
	setChecked(v, "is_embedded", e.IsEmbedded)
	setInt(v, "order", e.Order)
	if e.Styles != nil {
		if e.Styles.Navigation != nil {
			setStyles(v, "nav_menu", e.Styles.Navigation.Menu)
		}
		setStyles(v, "template", e.Styles.Template)
	}
	return v
}

func headingValues(h *records.Heading) url.Values {
	v := url.Values{}
	v.Set("text", h.Text)
	v.Set("subtext", h.Subtext)
	setInt(v, "order", h.Order)
	setChecked(v, "is_visible", h.IsVisible)
	setChecked(v, "is_anchor", h.IsAnchor)
	setStyles(v, "heading", h.Styles)
	return v
}

func gridValues(g *records.Grid) url.Values {
	v := url.Values{}
	setInt(v, "columns", g.Columns)
	setInt(v, "order", g.Order)
	setChecked(v, "is_visible", g.IsVisible)
	return v
}

func timelineValues(t *records.Timeline) url.Values {
	v := url.Values{}
	v.Set("title", t.Title)
	setInt(v, "order", t.Order)
	setChecked(v, "is_visible", t.IsVisible)
	return v
}

func gridItemValues(i *records.GridItem) url.Values {
	v := url.Values{}
	v.Set("title", i.Title)
	v.Set("caption", i.Caption)
	v.Set("item_text", i.Text)
	v.Set("description", i.Description)
	v.Set("item_type", i.ItemType)
	v.Set("layout", i.Layout)
	setChecked(v, "wrap_text", i.WrapText)
	setChecked(v, "is_published", i.IsPublished)
	setInt(v, "order", i.Order)
	setMedia(v, i.Media)
	setStyles(v, "item", i.Styles)
	return v
}

func timelineItemValues(i *records.TimelineItem) url.Values {
	v := url.Values{}
	v.Set("title", i.Title)
	setInt(v, "year", i.Year)
	v.Set("date", i.Date)
	v.Set("item_text", i.Text)
	v.Set("layout", i.Layout)
	setChecked(v, "is_published", i.IsPublished)
	setInt(v, "order", i.Order)
	setMedia(v, i.Media)
	setStyles(v, "item", i.Styles)
	return v
}
