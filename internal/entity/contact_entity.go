package entity

// ContactData is the final contact form slice of the session.
type ContactData struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Company     string `json:"company,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Phone       string `json:"phone"`
	Message     string `json:"message,omitempty"`
}
