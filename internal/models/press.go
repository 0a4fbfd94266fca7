package models

// PressType distinguishes the two press coverage variants.
type PressType string

const (
	PressArticle PressType = "article"
	PressVideo   PressType = "video"
)

// MainPressCategories are the fixed dropdown categories; anything else is a
// custom "Other" value.
var MainPressCategories = []string{
	"Flood Relief",
	"Religious Service",
	"Profile",
	"COVID Relief",
}

// PressItem is one piece of media coverage, either an external article or a
// YouTube video. Visibility is the isActive toggle.
type PressItem struct {
	ID            string    `json:"id,omitempty"`
	Type          PressType `json:"type"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PublishedDate string    `json:"publishedDate"` // YYYY-MM-DD or YYYY-MM
	Category      string    `json:"category"`
	Tags          []string  `json:"tags,omitempty"`
	IsActive      bool      `json:"isActive"`

	// Article fields.
	Slug  string `json:"slug,omitempty"`
	Link  string `json:"link,omitempty"`
	Image string `json:"image,omitempty"`

	// Video fields.
	YouTubeURL string `json:"youtubeUrl,omitempty"`
	YouTubeID  string `json:"youtubeId,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// PressItemUpdate is the allow-list of updatable press fields.
type PressItemUpdate struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	PublishedDate *string    `json:"publishedDate"`
	Category      *string    `json:"category"`
	Tags          *[]string  `json:"tags"`
	IsActive      *bool      `json:"isActive"`
	Slug          *string    `json:"slug"`
	Link          *string    `json:"link"`
	Image         *string    `json:"image"`
	YouTubeURL    *string    `json:"youtubeUrl"`
	YouTubeID     *string    `json:"youtubeId"`
}
