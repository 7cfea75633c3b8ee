package apitests

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/vivastreet/backend-smoke-tests/servicedef"
)

const testPassword = "password123"

// Account is a user created during the run.
type Account struct {
	Registration servicedef.RegisterParams
	Token        string
	User         ldvalue.Value
}

// UserID returns the "_id" of the user object returned at registration, or Null.
func (a Account) UserID() ldvalue.Value {
	return a.User.GetByKey("_id")
}

// Session holds the values that one case produces and later cases consume. Each field is set
// by at most one case; a field left unset means that case did not succeed.
type Session struct {
	Customer  Account
	Model     Account
	ProfileID ldvalue.Value
	BookingID ldvalue.Value
	Started   time.Time
}

// NewSession prepares the accounts to be registered. Email addresses are unique to each run.
func NewSession(now time.Time) *Session {
	return &Session{
		Customer: Account{
			Registration: servicedef.RegisterParams{
				Name:     "María García",
				Email:    uniqueEmail("maria.garcia", now),
				Password: testPassword,
				Phone:    "+34 612 345 678",
				Age:      ldvalue.NewOptionalInt(28),
				UserType: servicedef.UserTypeCustomer,
			},
		},
		Model: Account{
			Registration: servicedef.RegisterParams{
				Name:     "Isabella Rodríguez",
				Email:    uniqueEmail("isabella.rodriguez", now),
				Password: testPassword,
				Phone:    "+34 687 654 321",
				Age:      ldvalue.NewOptionalInt(25),
				UserType: servicedef.UserTypeModel,
			},
		},
		Started: now,
	}
}

func uniqueEmail(localPart string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s.%d.%s@test.es", localPart, now.Unix(), suffix)
}

// valueText renders a scalar returned by the backend, such as an identifier, without JSON
// quoting.
func valueText(v ldvalue.Value) string {
	if v.Type() == ldvalue.StringType {
		return v.StringValue()
	}
	return v.JSONString()
}
