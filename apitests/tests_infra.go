package apitests

import (
	"net/http"

	"github.com/vivastreet/backend-smoke-tests/client"
	"github.com/vivastreet/backend-smoke-tests/servicedef"
)

// ServiceIdentifier is the message returned by the backend's root endpoint.
const ServiceIdentifier = "Vivastreet API - Node.js Backend"

var corsHeaders = []string{
	"Access-Control-Allow-Origin",
	"Access-Control-Allow-Methods",
	"Access-Control-Allow-Headers",
}

func DoHealthCheckTests(t *T) {
	t.Run("Health Check", func(t *T) {
		body := requireStatus(t, t.Call(http.MethodGet, ""), http.StatusOK)
		if field(body, "message").StringValue() != ServiceIdentifier {
			t.Failf("Unexpected response: %s", body.JSONString())
		}
		t.Pass("Backend is running and responding correctly")
	})
}

// DoStatusCheckTests exercises the legacy status endpoints.
func DoStatusCheckTests(t *T) {
	t.Run("Get Status Checks", func(t *T) {
		body := requireStatus(t, t.Call(http.MethodGet, "/status"), http.StatusOK)
		requireSuccess(t, body, "Invalid response")
		t.Pass("Status checks retrieved")
	})

	t.Run("Create Status Check", func(t *T) {
		params := servicedef.StatusCheckParams{ClientName: "test_client_vivastreet"}
		body := requireStatus(t, t.Call(http.MethodPost, "/status", client.WithBody(params)), http.StatusCreated)
		requireSuccess(t, body, "Invalid response")
		t.Pass("Status check created")
	})
}

func DoCORSTests(t *T) {
	t.Run("CORS Headers", func(t *T) {
		resp := t.Call(http.MethodGet, "")
		if resp == nil {
			t.Failf("No response to check headers")
		}
		for _, h := range corsHeaders {
			if resp.HasHeader(h) {
				t.Pass("CORS headers present")
				return
			}
		}
		t.Failf("CORS headers missing")
	})
}
