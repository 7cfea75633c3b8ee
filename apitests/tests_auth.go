package apitests

import (
	"net/http"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/vivastreet/backend-smoke-tests/client"
)

// InvalidToken is sent to check that the backend rejects tokens it did not issue.
const InvalidToken = "invalid-token"

func DoCustomerRegistrationTests(t *T) {
	doRegistration(t, "Customer Registration", &t.Session().Customer,
		"Customer registered successfully with Spanish messages")
}

func DoModelRegistrationTests(t *T) {
	doRegistration(t, "Model Registration", &t.Session().Model,
		"Model registered successfully with profile creation")
}

func DoCustomerLoginTests(t *T) {
	doLogin(t, "Customer Login", &t.Session().Customer,
		"Customer login successful with Spanish success message")
}

func DoModelLoginTests(t *T) {
	doLogin(t, "Model Login", &t.Session().Model, "Model login successful")
}

func DoCurrentUserTests(t *T) {
	doCurrentUser(t, "Get Current User (Customer)", t.Session().Customer, "Customer data retrieved successfully")
	doCurrentUser(t, "Get Current User (Model)", t.Session().Model, "Model data retrieved successfully")
}

func DoAuthErrorTests(t *T) {
	doAuthError(t, "No Token Error", "", http.StatusUnauthorized, "Proper 401 response for missing token")
	doAuthError(t, "Invalid Token Error", InvalidToken, http.StatusForbidden, "Proper 403 response for invalid token")
}

func doRegistration(t *T, name string, account *Account, details string) {
	t.Run(name, func(t *T) {
		resp := t.Call(http.MethodPost, "/auth/register", client.WithBody(account.Registration))
		body := requireStatus(t, resp, http.StatusCreated)
		token := requireData(t, body, "token")
		user := field(body, "data", "user")
		if user.Type() != ldvalue.ObjectType {
			t.Failf("Invalid response structure: %s", body.JSONString())
		}
		account.Token = token.StringValue()
		account.User = user
		t.Pass(details)
	})
}

// doLogin replaces the account's token, since the backend may issue a new one.
func doLogin(t *T, name string, account *Account, details string) {
	t.Run(name, func(t *T) {
		resp := t.Call(http.MethodPost, "/auth/login", client.WithBody(account.Registration.Login()))
		body := requireStatus(t, resp, http.StatusOK)
		account.Token = requireData(t, body, "token").StringValue()
		t.Pass(details)
	})
}

func doCurrentUser(t *T, name string, account Account, details string) {
	t.Run(name, func(t *T) {
		resp := t.Call(http.MethodGet, "/auth/me", client.WithToken(account.Token))
		body := requireStatus(t, resp, http.StatusOK)
		user := requireData(t, body, "user")
		if field(user, "email").StringValue() != account.Registration.Email {
			t.Failf("Wrong user data returned")
		}
		t.Pass(details)
	})
}

func doAuthError(t *T, name, token string, status int, details string) {
	t.Run(name, func(t *T) {
		resp := t.Call(http.MethodGet, "/auth/me", client.WithToken(token))
		if resp == nil {
			t.Failf("Expected %d, got: No response", status)
		}
		if resp.StatusCode != status {
			t.Failf("Expected %d, got: %d", status, resp.StatusCode)
		}
		body := resp.JSON()
		message := strings.ToLower(field(body, "message").StringValue())
		if truthy(field(body, "success")) || !strings.Contains(message, "token") {
			t.Failf("Unexpected error response: %s", body.JSONString())
		}
		t.Pass(details)
	})
}
