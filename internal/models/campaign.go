package models

// CampaignStatus describes where a campaign is in its lifecycle,
// independent of whether the page is publicly visible.
type CampaignStatus string

const (
	CampaignOngoing   CampaignStatus = "ongoing"
	CampaignCompleted CampaignStatus = "completed"
	CampaignSeasonal  CampaignStatus = "seasonal"
)

// ImpactStat is one headline figure on a campaign page.
type ImpactStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// HowItWorksStep is one step of a campaign's process explainer.
type HowItWorksStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GalleryImage is one image in a campaign gallery.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Campaign is one fundraising/relief campaign page.
type Campaign struct {
	ID               string           `json:"id,omitempty"`
	Slug             string           `json:"slug"`
	Title            string           `json:"title"`
	Subtitle         string           `json:"subtitle"`
	ShortDescription string           `json:"shortDescription"`
	FullDescription  string           `json:"fullDescription"`
	Image            string           `json:"image"`
	Category         string           `json:"category"`
	Status           CampaignStatus   `json:"status"`
	PublishStatus    PublishStatus    `json:"publishStatus"`
	ImpactStats      []ImpactStat     `json:"impactStats,omitempty"`
	HowItWorks       []HowItWorksStep `json:"howItWorks,omitempty"`
	Gallery          []GalleryImage   `json:"gallery,omitempty"`
	CreatedAt        string           `json:"createdAt,omitempty"`
	UpdatedAt        string           `json:"updatedAt,omitempty"`
	PublishedAt      string           `json:"publishedAt,omitempty"`
}

// CampaignUpdate is the allow-list of updatable campaign fields.
type CampaignUpdate struct {
	Slug             *string           `json:"slug"`
	Title            *string           `json:"title"`
	Subtitle         *string           `json:"subtitle"`
	ShortDescription *string           `json:"shortDescription"`
	FullDescription  *string           `json:"fullDescription"`
	Image            *string           `json:"image"`
	Category         *string           `json:"category"`
	Status           *CampaignStatus   `json:"status"`
	PublishStatus    *PublishStatus    `json:"publishStatus"`
	ImpactStats      *[]ImpactStat     `json:"impactStats"`
	HowItWorks       *[]HowItWorksStep `json:"howItWorks"`
	Gallery          *[]GalleryImage   `json:"gallery"`
}
