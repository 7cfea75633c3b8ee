package apitests

import (
	"net/http"
	"time"

	"github.com/vivastreet/backend-smoke-tests/client"
	"github.com/vivastreet/backend-smoke-tests/servicedef"
)

const bookingDateFormat = "2006-01-02T15:04:05.000000"

// DoCreateBookingTests books the registered model's profile for the day after the run started.
func DoCreateBookingTests(t *T) {
	session := t.Session()
	t.Run("Create Booking", func(t *T) {
		modelID := session.Model.UserID()
		if !truthy(session.ProfileID) || !truthy(modelID) {
			t.Failf(missingProfileOrModel)
		}
		params := servicedef.CreateBookingParams{
			ModelID:       modelID,
			ProfileID:     session.ProfileID,
			Date:          session.Started.Add(24 * time.Hour).Format(bookingDateFormat),
			Time:          "20:00",
			Duration:      2,
			ServiceType:   "incall",
			Services:      []string{"Experiencia de Novia"},
			CustomerPhone: session.Customer.Registration.Phone,
			Pricing: servicedef.BookingPricing{
				HourlyRate:  180,
				TotalAmount: 360,
			},
			Location: &servicedef.BookingLocation{
				City:  "Madrid",
				Notes: "Hotel céntrico",
			},
			CustomerNotes: "Primera vez, por favor ser discreta",
		}
		resp := t.Call(http.MethodPost, "/bookings",
			client.WithBody(params), client.WithToken(session.Customer.Token))
		body := requireStatus(t, resp, http.StatusCreated)
		booking := requireData(t, body, "booking")
		session.BookingID = field(booking, "_id")

		confirmation := "N/A"
		if code, ok := booking.TryGetByKey("confirmationCode"); ok {
			confirmation = valueText(code)
		}
		t.Pass("Booking created with confirmation: %s", confirmation)
	})
}

func DoListBookingsTests(t *T) {
	session := t.Session()
	doListBookings(t, "Get Customer Bookings", session.Customer, "customer")
	doListBookings(t, "Get Model Bookings", session.Model, "model")
}

func doListBookings(t *T, name string, account Account, role string) {
	t.Run(name, func(t *T) {
		resp := t.Call(http.MethodGet, "/bookings", client.WithToken(account.Token))
		body := requireStatus(t, resp, http.StatusOK)
		bookings := requireList(t, body, "bookings")
		t.Pass("Retrieved %d %s bookings", bookings.Count(), role)
	})
}

func DoBookingStatsTests(t *T) {
	session := t.Session()
	t.Run("Booking Stats", func(t *T) {
		resp := t.Call(http.MethodGet, "/bookings/stats/overview", client.WithToken(session.Model.Token))
		body := requireStatus(t, resp, http.StatusOK)
		if !truthy(field(body, "success")) || !hasField(body, "data", "stats") {
			t.Failf("Invalid response structure: %s", body.JSONString())
		}
		t.Pass("Stats retrieved: %s", field(body, "data", "stats").JSONString())
	})
}
