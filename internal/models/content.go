package models

// CelebrityCard is one supporter card in the homepage carousel.
type CelebrityCard struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Profession string `json:"profession"`
	ImageURL   string `json:"imageUrl"`
	IsActive   bool   `json:"isActive"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// CelebrityCardUpdate is the allow-list of updatable celebrity fields.
type CelebrityCardUpdate struct {
	Name       *string `json:"name"`
	Profession *string `json:"profession"`
	ImageURL   *string `json:"imageUrl"`
	IsActive   *bool   `json:"isActive"`
}

// Testimonial is one quote in the testimonial carousel.
type Testimonial struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	ImageURL    string `json:"imageUrl"`
	Text        string `json:"text"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// TestimonialUpdate is the allow-list of updatable testimonial fields.
type TestimonialUpdate struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	ImageURL    *string `json:"imageUrl"`
	Text        *string `json:"text"`
	IsActive    *bool   `json:"isActive"`
}
