package apitests

import (
	"net/http"

	"github.com/vivastreet/backend-smoke-tests/client"
	"github.com/vivastreet/backend-smoke-tests/servicedef"
)

const messageContent = "Hola, me interesa conocer más sobre tus servicios. ¿Podrías darme más información?"

// missingProfileOrModel is reported by cases that address the registered model's profile.
const missingProfileOrModel = "Missing profile ID or model data"

func DoSendMessageTests(t *T) {
	session := t.Session()
	t.Run("Send Message", func(t *T) {
		modelID := session.Model.UserID()
		if !truthy(session.ProfileID) || !truthy(modelID) {
			t.Failf(missingProfileOrModel)
		}
		params := servicedef.SendMessageParams{
			ReceiverID: modelID,
			ProfileID:  session.ProfileID,
			Content:    messageContent,
		}
		resp := t.Call(http.MethodPost, "/messages",
			client.WithBody(params), client.WithToken(session.Customer.Token))
		body := requireStatus(t, resp, http.StatusCreated)
		requireData(t, body, "message")
		t.Pass("Message sent successfully with Spanish content")
	})
}

func DoConversationsTests(t *T) {
	session := t.Session()
	t.Run("Get Conversations", func(t *T) {
		resp := t.Call(http.MethodGet, "/messages/conversations", client.WithToken(session.Model.Token))
		body := requireStatus(t, resp, http.StatusOK)
		conversations := requireList(t, body, "conversations")
		t.Pass("Retrieved %d conversations", conversations.Count())
	})
}

func DoUnreadCountTests(t *T) {
	session := t.Session()
	t.Run("Get Unread Count", func(t *T) {
		resp := t.Call(http.MethodGet, "/messages/unread-count", client.WithToken(session.Model.Token))
		body := requireStatus(t, resp, http.StatusOK)
		if !truthy(field(body, "success")) || !hasField(body, "data", "unreadCount") {
			t.Failf("Invalid response structure: %s", body.JSONString())
		}
		t.Pass("Unread count: %s", field(body, "data", "unreadCount").JSONString())
	})
}
