package forms

import (
	"errors"
	"net/url"
	"testing"
)

func TestExhibitAssemblesPayload(t *testing.T) {
	v := url.Values{}
	v.Set("title", "Mining the West")
	v.Set("subtitle", "A century of extraction")
	v.Set("banner_template", "banner_1")
	v.Set("about_the_curators", "Curated by the special collections team.")
	v.Set("hero_image", "hero.jpg")
	v.Set("order", "3")
	v.Set("is_published", "on")
	v.Set("is_featured", "on")

	e, err := Exhibit(v)
	if err != nil {
		t.Fatalf("Exhibit: %v", err)
	}

	if e.Title != "Mining the West" {
		t.Errorf("title: got %q", e.Title)
	}
	if e.Subtitle != "A century of extraction" {
		t.Errorf("subtitle: got %q", e.Subtitle)
	}
	if e.BannerTemplate != "banner_1" {
		t.Errorf("banner_template: got %q", e.BannerTemplate)
	}
	if e.Order != 3 {
		t.Errorf("order: got %d", e.Order)
	}
	if !e.IsPublished || !e.IsFeatured || e.IsEmbedded {
		t.Errorf("flags: published=%v featured=%v embedded=%v", e.IsPublished, e.IsFeatured, e.IsEmbedded)
	}
	if e.Styles != nil {
		t.Errorf("expected no styles when no style fields set, got %+v", e.Styles)
	}
}

func TestExhibitRequiresTitle(t *testing.T) {
	v := url.Values{}
	v.Set("subtitle", "no title here")

	_, err := Exhibit(v)
	var reqErr *RequiredError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequiredError, got %v", err)
	}
	if len(reqErr.Fields) != 1 || reqErr.Fields[0] != "title" {
		t.Errorf("expected missing title, got %v", reqErr.Fields)
	}
}

func TestExhibitConditionalStyles(t *testing.T) {
	v := url.Values{}
	v.Set("title", "t")
	v.Set("nav_menu_font_color", "#fff")

	e, err := Exhibit(v)
	if err != nil {
		t.Fatalf("Exhibit: %v", err)
	}

	if e.Styles == nil || e.Styles.Navigation == nil || e.Styles.Navigation.Menu == nil {
		t.Fatal("expected navigation menu styles")
	}
	if e.Styles.Navigation.Menu.FontColor != "#fff" {
		t.Errorf("font color: got %q", e.Styles.Navigation.Menu.FontColor)
	}
	if e.Styles.Template != nil {
		t.Error("template styles should be absent when unset")
	}
}

func TestExhibitRejectsBadOrder(t *testing.T) {
	v := url.Values{}
	v.Set("title", "t")
	v.Set("order", "three")

	if _, err := Exhibit(v); err == nil {
		t.Error("expected error for non-numeric order")
	}
}

func TestHeadingCommonFields(t *testing.T) {
	v := url.Values{}
	v.Set("text", "The Gold Rush")
	v.Set("subtext", "1858-1861")
	v.Set("order", "2")
	v.Set("is_visible", "on")
	v.Set("heading_background_color", "#eee")

	h, err := Heading(v)
	if err != nil {
		t.Fatalf("Heading: %v", err)
	}

	if h.Text != "The Gold Rush" || h.Subtext != "1858-1861" {
		t.Errorf("text fields: got %q / %q", h.Text, h.Subtext)
	}
	if h.Order != 2 || !h.IsVisible || h.IsAnchor {
		t.Errorf("order/flags: order=%d visible=%v anchor=%v", h.Order, h.IsVisible, h.IsAnchor)
	}
	if h.Styles == nil || h.Styles.BackgroundColor != "#eee" {
		t.Errorf("styles: got %+v", h.Styles)
	}
}

func TestHeadingRequiresText(t *testing.T) {
	_, err := Heading(url.Values{})
	var reqErr *RequiredError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequiredError, got %v", err)
	}
}

func TestGridItemWithMedia(t *testing.T) {
	v := url.Values{}
	v.Set("item_type", "media_text")
	v.Set("title", "Pan and shovel")
	v.Set("item_text", "Tools of the trade.")
	v.Set("media", "pan.jpg")
	v.Set("media_type", "image")
	v.Set("media_width", "50")
	v.Set("wrap_text", "on")

	item, err := GridItem(v)
	if err != nil {
		t.Fatalf("GridItem: %v", err)
	}

	if item.Media == nil {
		t.Fatal("expected media sub-object")
	}
	if item.Media.Source != "pan.jpg" || item.Media.MediaType != "image" || item.Media.Width != 50 {
		t.Errorf("media: got %+v", item.Media)
	}
	if item.Media.IsEmbedded {
		t.Error("file media should not be embedded")
	}
	if !item.WrapText {
		t.Error("wrap_text should be set")
	}
}

func TestGridItemMediaTypeRequiredWithSource(t *testing.T) {
	v := url.Values{}
	v.Set("item_type", "media")
	v.Set("media", "pan.jpg")

	_, err := GridItem(v)
	var reqErr *RequiredError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequiredError for media_type, got %v", err)
	}
	if reqErr.Fields[0] != "media_type" {
		t.Errorf("expected media_type missing, got %v", reqErr.Fields)
	}
}

func TestGridItemNoMediaWhenSourceEmpty(t *testing.T) {
	v := url.Values{}
	v.Set("item_type", "text")
	v.Set("item_text", "Just text.")
	// media_type set but no source: the sub-object must not be built.
	v.Set("media_type", "image")

	item, err := GridItem(v)
	if err != nil {
		t.Fatalf("GridItem: %v", err)
	}
	if item.Media != nil {
		t.Errorf("expected no media sub-object, got %+v", item.Media)
	}
}

func TestGridItemRepoMediaIsEmbedded(t *testing.T) {
	v := url.Values{}
	v.Set("item_type", "media")
	v.Set("repo_item_id", "codu:78912")
	v.Set("media_type", "repo")

	item, err := GridItem(v)
	if err != nil {
		t.Fatalf("GridItem: %v", err)
	}
	if item.Media == nil || !item.Media.IsEmbedded {
		t.Errorf("repo media should be embedded, got %+v", item.Media)
	}
	if item.Media.Source != "codu:78912" {
		t.Errorf("source: got %q", item.Media.Source)
	}
}

func TestGridItemRejectsUnknownMediaType(t *testing.T) {
	v := url.Values{}
	v.Set("item_type", "media")
	v.Set("media", "clip.mov")
	v.Set("media_type", "movie")

	if _, err := GridItem(v); err == nil {
		t.Error("expected error for unknown media type")
	}
}

func TestGridItemPDFPageOnlyForPDF(t *testing.T) {
	v := url.Values{}
	v.Set("item_type", "media")
	v.Set("media", "scan.jpg")
	v.Set("media_type", "image")
	v.Set("pdf_open_to_page", "4")

	if _, err := GridItem(v); err == nil {
		t.Error("expected error for pdf_open_to_page on non-pdf media")
	}
}

func TestTimelineItemCommonFields(t *testing.T) {
	v := url.Values{}
	v.Set("year", "1893")
	v.Set("date", "1893-07-11")
	v.Set("title", "Silver crash")
	v.Set("item_text", "The panic reaches Colorado.")
	v.Set("media", "crash.pdf")
	v.Set("media_type", "pdf")
	v.Set("pdf_open_to_page", "2")
	v.Set("is_published", "on")

	item, err := TimelineItem(v)
	if err != nil {
		t.Fatalf("TimelineItem: %v", err)
	}

	if item.Year != 1893 || item.Date != "1893-07-11" {
		t.Errorf("year/date: got %d / %q", item.Year, item.Date)
	}
	if item.Media == nil || item.Media.PDFOpenToPage != 2 {
		t.Errorf("media: got %+v", item.Media)
	}
	if !item.IsPublished {
		t.Error("is_published should be set")
	}
}

func TestTimelineItemRejectsBadDate(t *testing.T) {
	v := url.Values{}
	v.Set("year", "1893")
	v.Set("date", "not-a-date")

	if _, err := TimelineItem(v); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestTimelineItemDateOptional(t *testing.T) {
	v := url.Values{}
	v.Set("year", "1893")

	item, err := TimelineItem(v)
	if err != nil {
		t.Fatalf("TimelineItem: %v", err)
	}
	if item.Date != "" {
		t.Errorf("date: got %q", item.Date)
	}
}

func TestTimelineItemRequiresYear(t *testing.T) {
	v := url.Values{}
	v.Set("title", "undated")

	_, err := TimelineItem(v)
	var reqErr *RequiredError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequiredError, got %v", err)
	}
	if reqErr.Fields[0] != "year" {
		t.Errorf("expected year missing, got %v", reqErr.Fields)
	}
}

func TestGridRequiresColumns(t *testing.T) {
	_, err := Grid(url.Values{})
	var reqErr *RequiredError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequiredError, got %v", err)
	}
}

func TestCheckboxValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"on", true},
		{"true", true},
		{"1", true},
		{"", false},
		{"off", false},
	}
	for _, tt := range tests {
		v := url.Values{}
		if tt.value != "" {
			v.Set("flag", tt.value)
		}
		if got := checkbox(v, "flag"); got != tt.want {
			t.Errorf("checkbox(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestTextTrimsWhitespace(t *testing.T) {
	v := url.Values{}
	v.Set("title", "  padded  ")
	if got := text(v, "title"); got != "padded" {
		t.Errorf("text: got %q", got)
	}
}
