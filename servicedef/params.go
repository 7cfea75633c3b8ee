// Package servicedef contains the JSON request bodies sent to the backend.
package servicedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

const (
	UserTypeCustomer = "customer"
	UserTypeModel    = "model"
)

type RegisterParams struct {
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Password string              `json:"password"`
	Phone    string              `json:"phone,omitempty"`
	Age      ldvalue.OptionalInt `json:"age,omitempty"`
	UserType string              `json:"userType"`
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login returns the credentials for an account created with these parameters.
func (p RegisterParams) Login() LoginParams {
	return LoginParams{Email: p.Email, Password: p.Password}
}

type UpdateProfileParams struct {
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location,omitempty"`
	Rates       *ProfileRates `json:"rates,omitempty"`
}

type ProfileRates struct {
	Incall  string `json:"incall,omitempty"`
	Outcall string `json:"outcall,omitempty"`
}

// SendMessageParams uses raw JSON values for identifiers, since they are passed back to the
// backend exactly as it returned them.
type SendMessageParams struct {
	ReceiverID ldvalue.Value `json:"receiverId"`
	ProfileID  ldvalue.Value `json:"profileId"`
	Content    string        `json:"content"`
}

type CreateBookingParams struct {
	ModelID       ldvalue.Value    `json:"modelId"`
	ProfileID     ldvalue.Value    `json:"profileId"`
	Date          string           `json:"date"`
	Time          string           `json:"time"`
	Duration      int              `json:"duration"`
	ServiceType   string           `json:"serviceType"`
	Services      []string         `json:"services,omitempty"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
	Pricing       BookingPricing   `json:"pricing"`
	Location      *BookingLocation `json:"location,omitempty"`
	CustomerNotes string           `json:"customerNotes,omitempty"`
}

type BookingPricing struct {
	HourlyRate  int `json:"hourlyRate"`
	TotalAmount int `json:"totalAmount"`
}

type BookingLocation struct {
	City  string `json:"city"`
	Notes string `json:"notes,omitempty"`
}

type StatusCheckParams struct {
	ClientName string `json:"client_name"`
}
