// Package records defines the remote record types manipulated through the
// exhibits backend REST API. The client holds no local model beyond these
// transient values; every record is fetched, mutated, and discarded within
// a single request cycle.
package records

// Exhibit is the top-level content container record.
type Exhibit struct {
	UUID             string         `json:"uuid,omitempty"`
	Type             string         `json:"type,omitempty"`
	Title            string         `json:"title"`
	Subtitle         string         `json:"subtitle,omitempty"`
	BannerTemplate   string         `json:"banner_template,omitempty"`
	AboutTheCurators string         `json:"about_the_curators,omitempty"`
	AlertText        string         `json:"alert_text,omitempty"`
	HeroImage        string         `json:"hero_image,omitempty"`
	Thumbnail        string         `json:"thumbnail,omitempty"`
	Styles           *ExhibitStyles `json:"styles,omitempty"`
	IsPublished      bool           `json:"is_published"`
	IsFeatured       bool           `json:"is_featured"`
	IsEmbedded       bool           `json:"is_embedded"`
	Order            int            `json:"order,omitempty"`
	CreatedAt        string         `json:"created,omitempty"`
}

// ExhibitStyles groups the optional exhibit-level style overrides. Only the
// sub-objects the curator actually set are present.
type ExhibitStyles struct {
	Navigation *NavigationStyles `json:"navigation,omitempty"`
	Template   *TextStyles       `json:"template,omitempty"`
}

// NavigationStyles holds the navigation menu style overrides.
type NavigationStyles struct {
	Menu *TextStyles `json:"menu,omitempty"`
}

// TextStyles is the shared font/color style sub-object.
type TextStyles struct {
	FontFamily      string `json:"fontFamily,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`
	FontColor       string `json:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// Empty reports whether no style field is set.
func (s *TextStyles) Empty() bool {
	return s == nil || (s.FontFamily == "" && s.FontSize == "" && s.FontColor == "" && s.BackgroundColor == "")
}

// Heading is a section heading attached to an exhibit.
type Heading struct {
	UUID      string      `json:"uuid,omitempty"`
	ExhibitID string      `json:"is_member_of_exhibit,omitempty"`
	Type      string      `json:"type,omitempty"`
	Text      string      `json:"text"`
	Subtext   string      `json:"subtext,omitempty"`
	Order     int         `json:"order"`
	IsVisible bool        `json:"is_visible"`
	IsAnchor  bool        `json:"is_anchor"`
	Styles    *TextStyles `json:"styles,omitempty"`
}

// Grid is a grid container attached to an exhibit.
type Grid struct {
	UUID      string `json:"uuid,omitempty"`
	ExhibitID string `json:"is_member_of_exhibit,omitempty"`
	Type      string `json:"type,omitempty"`
	Columns   int    `json:"columns"`
	Order     int    `json:"order"`
	IsVisible bool   `json:"is_visible"`
}

// GridItem is a single item inside a grid.
type GridItem struct {
	UUID        string      `json:"uuid,omitempty"`
	GridID      string      `json:"is_member_of_grid,omitempty"`
	Type        string      `json:"type,omitempty"`
	Title       string      `json:"title,omitempty"`
	Caption     string      `json:"caption,omitempty"`
	Text        string      `json:"text,omitempty"`
	Description string      `json:"description,omitempty"`
	ItemType    string      `json:"item_type"`
	Layout      string      `json:"layout,omitempty"`
	WrapText    bool        `json:"wrap_text"`
	Media       *MediaField `json:"media,omitempty"`
	Styles      *TextStyles `json:"styles,omitempty"`
	IsPublished bool        `json:"is_published"`
	Order       int         `json:"order"`
}

// Timeline is a vertical timeline container attached to an exhibit.
type Timeline struct {
	UUID      string `json:"uuid,omitempty"`
	ExhibitID string `json:"is_member_of_exhibit,omitempty"`
	Type      string `json:"type,omitempty"`
	Title     string `json:"title,omitempty"`
	Order     int    `json:"order"`
	IsVisible bool   `json:"is_visible"`
}

// TimelineItem is a dated entry inside a timeline.
type TimelineItem struct {
	UUID        string      `json:"uuid,omitempty"`
	TimelineID  string      `json:"is_member_of_timeline,omitempty"`
	Type        string      `json:"type,omitempty"`
	Title       string      `json:"title,omitempty"`
	Year        int         `json:"year"`
	Date        string      `json:"date,omitempty"`
	Text        string      `json:"text,omitempty"`
	Layout      string      `json:"layout,omitempty"`
	Media       *MediaField `json:"media,omitempty"`
	Styles      *TextStyles `json:"styles,omitempty"`
	IsPublished bool        `json:"is_published"`
	Order       int         `json:"order"`
}

// Media type values accepted by the backend.
const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaAudio = "audio"
	MediaPDF   = "pdf"
	MediaRepo  = "repo"
)

// MediaField is the conditional media sub-object shared by grid and
// timeline items. Source is either an uploaded filename or a repository
// item identifier when MediaType is "repo".
type MediaField struct {
	Source        string `json:"media"`
	MediaType     string `json:"media_type"`
	Width         int    `json:"media_width,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	PDFOpenToPage int    `json:"pdf_open_to_page,omitempty"`
	IsEmbedded    bool   `json:"is_embedded"`
}

// User is the signed-in operator record returned by the login endpoint.
type User struct {
	UUID     string `json:"uuid,omitempty"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}
