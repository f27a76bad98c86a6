package dto

// LeadRequest is the final contact form. Profile, answers and selection
// come from the session; only the contact slice travels in the request.
type LeadRequest struct {
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Company     string `json:"company,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Phone       string `json:"phone" validate:"required,min=6"`
	Message     string `json:"message,omitempty"`
}

// LeadHistoryEntry is one audit record of a past fan-out for a session.
type LeadHistoryEntry struct {
	LeadId         string `json:"leadId,omitempty"`
	ProfileType    string `json:"profileType"`
	TotalSent      int    `json:"totalSent"`
	TotalRequested int    `json:"totalRequested"`
	TimeSpentSec   int    `json:"timeSpentSec"`
	CreatedAt      string `json:"createdAt"`
}

// LeadHistoryResponse lists the audit records of a session, newest first.
type LeadHistoryResponse struct {
	Entries []LeadHistoryEntry `json:"entries"`
}

// LeadResponse is the aggregate fan-out outcome: success as soon as one
// per-supplier demande went through.
type LeadResponse struct {
	Success        bool   `json:"success"`
	LeadId         string `json:"leadId,omitempty"`
	RedirectUrl    string `json:"redirectUrl,omitempty"`
	TotalSent      int    `json:"totalSent"`
	TotalRequested int    `json:"totalRequested"`
	Message        string `json:"message,omitempty"`
}
