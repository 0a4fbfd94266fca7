package models

// LeadStatus tracks how far the team has taken a submitted lead.
type LeadStatus string

const (
	LeadNew      LeadStatus = "new"
	LeadRead     LeadStatus = "read"
	LeadResolved LeadStatus = "resolved"
)

// ContactSubmission is one contact form entry.
type ContactSubmission struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Timestamp string     `json:"timestamp,omitempty"`
	Status    LeadStatus `json:"status,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

// VolunteerSubmission is one volunteer application.
type VolunteerSubmission struct {
	ID             string     `json:"id,omitempty"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Mobile         string     `json:"mobile"`
	Gender         string     `json:"gender"`
	Address        string     `json:"address"`
	Opportunity    string     `json:"opportunity"`
	DurationMonths string     `json:"durationMonths"`
	DurationYears  string     `json:"durationYears"`
	StartDate      string     `json:"startDate"`
	About          string     `json:"about"`
	Timestamp      string     `json:"timestamp,omitempty"`
	Status         LeadStatus `json:"status,omitempty"`
	CreatedAt      string     `json:"createdAt,omitempty"`
	UpdatedAt      string     `json:"updatedAt,omitempty"`
}

// CSRSubmission is one corporate partnership enquiry.
type CSRSubmission struct {
	ID                  string     `json:"id,omitempty"`
	CompanyName         string     `json:"companyName"`
	ContactPerson       string     `json:"contactPerson"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	CompanySize         string     `json:"companySize"`
	Industry            string     `json:"industry"`
	PartnershipInterest []string   `json:"partnershipInterest,omitempty"`
	BudgetRange         string     `json:"budgetRange"`
	Message             string     `json:"message"`
	Timestamp           string     `json:"timestamp,omitempty"`
	Status              LeadStatus `json:"status,omitempty"`
	CreatedAt           string     `json:"createdAt,omitempty"`
	UpdatedAt           string     `json:"updatedAt,omitempty"`
}
