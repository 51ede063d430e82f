// Package forms converts submitted admin form values into backend records.
// Every page controller funnels through here: gather field values, check the
// required ones, and build the conditional style/media sub-objects before
// anything is sent to the backend.
package forms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// RequiredError reports form fields that were submitted empty.
type RequiredError struct {
	Fields []string
}

func (e *RequiredError) Error() string {
	return "required field(s) missing: " + strings.Join(e.Fields, ", ")
}

// text returns the trimmed value of a form field.
func text(v url.Values, name string) string {
	return strings.TrimSpace(v.Get(name))
}

// checkbox reports whether a checkbox field was checked. Browsers submit
// "on" for checked boxes and omit the field entirely otherwise.
func checkbox(v url.Values, name string) bool {
	switch strings.ToLower(text(v, name)) {
	case "on", "true", "1":
		return true
	}
	return false
}

// integer parses an optional numeric field. An empty value yields zero.
func integer(v url.Values, name string) (int, error) {
	s := text(v, name)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("field %s: %q is not a number", name, s)
	}
	return n, nil
}

// date parses an optional YYYY-MM-DD field. An empty value yields "".
func date(v url.Values, name string) (string, error) {
	s := text(v, name)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("field %s: %q is not a YYYY-MM-DD date", name, s)
	}
	return s, nil
}

// requireFields collects the names of empty required fields and returns a
// RequiredError if any are missing.
func requireFields(v url.Values, names ...string) error {
	var missing []string
	for _, name := range names {
		if text(v, name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &RequiredError{Fields: missing}
	}
	return nil
}

// textStyles builds a style sub-object from the prefixed style fields, or
// nil when the curator set none of them.
func textStyles(v url.Values, prefix string) *records.TextStyles {
	s := &records.TextStyles{
		FontFamily:      text(v, prefix+"_font_family"),
		FontSize:        text(v, prefix+"_font_size"),
		FontColor:       text(v, prefix+"_font_color"),
		BackgroundColor: text(v, prefix+"_background_color"),
	}
	if s.Empty() {
		return nil
	}
	return s
}

// mediaField builds the media sub-object shared by grid and timeline item
// forms. It is only built when a media source is present; a media type is
// then required. Repository items are marked embedded.
func mediaField(v url.Values) (*records.MediaField, error) {
	source := text(v, "media")
	if source == "" {
		source = text(v, "repo_item_id")
	}
	if source == "" {
		return nil, nil
	}

	mediaType := text(v, "media_type")
	if mediaType == "" {
		return nil, &RequiredError{Fields: []string{"media_type"}}
	}
	switch mediaType {
	case records.MediaImage, records.MediaVideo, records.MediaAudio, records.MediaPDF, records.MediaRepo:
	default:
		return nil, fmt.Errorf("field media_type: unknown media type %q", mediaType)
	}

	width, err := integer(v, "media_width")
	if err != nil {
		return nil, err
	}
	page, err := integer(v, "pdf_open_to_page")
	if err != nil {
		return nil, err
	}
	if page != 0 && mediaType != records.MediaPDF {
		return nil, fmt.Errorf("field pdf_open_to_page: only valid for pdf media")
	}

	return &records.MediaField{
		Source:        source,
		MediaType:     mediaType,
		Width:         width,
		Thumbnail:     text(v, "media_thumbnail"),
		PDFOpenToPage: page,
		IsEmbedded:    mediaType == records.MediaRepo,
	}, nil
}
