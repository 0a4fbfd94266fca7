// Package models defines the entity records persisted by the backend.
// Records are plain data; identifiers are assigned by the store, timestamp
// fields are RFC3339 strings, and the json tags double as the Firestore
// field names.
package models

// PublishStatus is the admin-controlled visibility flag for editorial
// content. Drafts never appear on public pages.
type PublishStatus string

const (
	Draft     PublishStatus = "draft"
	Published PublishStatus = "published"
)

// Blog is one post authored through the admin panel.
type Blog struct {
	ID            string        `json:"id,omitempty"`
	Slug          string        `json:"slug"`
	Title         string        `json:"title"`
	Excerpt       string        `json:"excerpt"`
	Content       string        `json:"content"` // HTML from the rich text editor
	Image         string        `json:"image"`
	Category      string        `json:"category"`
	Author        string        `json:"author"`
	PublishStatus PublishStatus `json:"publishStatus"`
	ReadTime      string        `json:"readTime,omitempty"` // e.g. "5 min read"
	CreatedAt     string        `json:"createdAt,omitempty"`
	UpdatedAt     string        `json:"updatedAt,omitempty"`
	PublishedAt   string        `json:"publishedAt,omitempty"` // set on first publish, never reset
}

// BlogUpdate is the allow-list of fields an update may touch. Nil means
// "leave unchanged".
type BlogUpdate struct {
	Slug          *string        `json:"slug"`
	Title         *string        `json:"title"`
	Excerpt       *string        `json:"excerpt"`
	Content       *string        `json:"content"`
	Image         *string        `json:"image"`
	Category      *string        `json:"category"`
	Author        *string        `json:"author"`
	PublishStatus *PublishStatus `json:"publishStatus"`
	ReadTime      *string        `json:"readTime"`
}
