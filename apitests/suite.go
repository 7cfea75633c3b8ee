package apitests

import (
	"github.com/vivastreet/backend-smoke-tests/client"
	"github.com/vivastreet/backend-smoke-tests/framework"
)

type testCase struct {
	name     string
	category framework.Category
	action   func(*T)
}

// allCases is in dependency order: each case only reads session values written by the
// cases above it.
var allCases = []testCase{
	{"Health check", framework.CategoryHealth, DoHealthCheckTests},
	{"Customer registration", framework.CategoryAuth, DoCustomerRegistrationTests},
	{"Model registration", framework.CategoryAuth, DoModelRegistrationTests},
	{"Customer login", framework.CategoryAuth, DoCustomerLoginTests},
	{"Model login", framework.CategoryAuth, DoModelLoginTests},
	{"Get current user", framework.CategoryAccess, DoCurrentUserTests},
	{"List profiles", framework.CategoryProfile, DoListProfilesTests},
	{"Get single profile", framework.CategoryProfile, DoSingleProfileTests},
	{"Update profile", framework.CategoryProfile, DoUpdateProfileTests},
	{"Send message", framework.CategoryMessaging, DoSendMessageTests},
	{"Get conversations", framework.CategoryMessaging, DoConversationsTests},
	{"Get unread count", framework.CategoryMessaging, DoUnreadCountTests},
	{"Create booking", framework.CategoryBooking, DoCreateBookingTests},
	{"Get bookings", framework.CategoryBooking, DoListBookingsTests},
	{"Booking stats", framework.CategoryBooking, DoBookingStatsTests},
	{"Status checks", framework.CategoryInfra, DoStatusCheckTests},
	{"CORS headers", framework.CategoryInfra, DoCORSTests},
	{"Auth errors", framework.CategoryTokenAuth, DoAuthErrorTests},
}

// CaseNames returns the names of all top-level cases in the order they run.
func CaseNames() []string {
	ret := make([]string, 0, len(allCases))
	for _, tc := range allCases {
		ret = append(ret, tc.name)
	}
	return ret
}

// RunTestSuite runs every case against the backend behind apiClient, sharing session between
// them. A failing case never stops the run; later cases that need its output fail on their own.
func RunTestSuite(
	runner *framework.Runner,
	apiClient *client.Client,
	session *Session,
) (framework.Results, error) {
	return runner.Run(func(c *framework.Context) {
		t := &T{
			context: c,
			env: &environment{
				client:  apiClient,
				session: session,
			},
		}
		for _, tc := range allCases {
			t.runCase(tc)
		}
	})
}
