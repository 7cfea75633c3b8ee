package apitests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

type fakeUser struct {
	ID       string
	Email    string
	Password string
	Token    string
}

// fakeBackend emulates the parts of the API the smoke tests touch. Its fields adjust how it
// misbehaves.
type fakeBackend struct {
	profiles       []interface{}
	omitCORS       bool
	omitUser       bool
	registerStatus int
	noTokenStatus  int
	tokenPrefix    string
	lock           sync.Mutex
	users          []*fakeUser
	authHeaders    map[string][]string
	requestedURIs  []string
	receivedBodies map[string]map[string]interface{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		profiles:       []interface{}{map[string]interface{}{"id": "p1", "name": "Sofía"}},
		tokenPrefix:    "token",
		authHeaders:    make(map[string][]string),
		receivedBodies: make(map[string]map[string]interface{}),
	}
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.lock.Lock()
	defer b.lock.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api")
	b.requestedURIs = append(b.requestedURIs, r.Method+" "+path+queryPart(r))
	b.authHeaders[path] = append(b.authHeaders[path], r.Header.Get("Authorization"))
	if !b.omitCORS {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	}

	var body map[string]interface{}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	if body != nil {
		b.receivedBodies[r.Method+" "+path] = body
	}
	user := b.userForRequest(r)

	switch r.Method + " " + path {
	case "GET ", "GET /":
		writeJSON(w, 200, map[string]interface{}{"message": ServiceIdentifier})
	case "POST /auth/register":
		if b.registerStatus != 0 {
			writeJSON(w, b.registerStatus, fail("El usuario ya existe"))
			return
		}
		u := &fakeUser{
			ID:       fmt.Sprintf("u%d", len(b.users)+1),
			Email:    fmt.Sprint(body["email"]),
			Password: fmt.Sprint(body["password"]),
		}
		u.Token = fmt.Sprintf("%s.%s-_=", b.tokenPrefix, u.ID)
		b.users = append(b.users, u)
		if b.omitUser {
			writeJSON(w, 201, ok(map[string]interface{}{"token": u.Token}))
			return
		}
		writeJSON(w, 201, ok(map[string]interface{}{"token": u.Token, "user": userJSON(u)}))
	case "POST /auth/login":
		for _, u := range b.users {
			if u.Email == body["email"] && u.Password == body["password"] {
				writeJSON(w, 200, ok(map[string]interface{}{"token": u.Token, "user": userJSON(u)}))
				return
			}
		}
		writeJSON(w, 401, fail("Credenciales inválidas"))
	case "GET /auth/me":
		if r.Header.Get("Authorization") == "" {
			status := 401
			if b.noTokenStatus != 0 {
				status = b.noTokenStatus
			}
			writeJSON(w, status, fail("Acceso denegado. No se proporcionó token"))
			return
		}
		if user == nil {
			writeJSON(w, 403, fail("Token inválido"))
			return
		}
		writeJSON(w, 200, ok(map[string]interface{}{"user": userJSON(user)}))
	case "GET /profiles":
		writeJSON(w, 200, ok(map[string]interface{}{"profiles": b.profiles}))
	case "GET /profiles/p1":
		writeJSON(w, 200, ok(map[string]interface{}{"profile": map[string]interface{}{"id": "p1", "views": 12}}))
	case "PUT /profiles/p1":
		if user == nil {
			writeJSON(w, 401, fail("Acceso denegado"))
			return
		}
		writeJSON(w, 200, ok(map[string]interface{}{"profile": map[string]interface{}{"id": "p1"}}))
	case "POST /messages":
		if user == nil {
			writeJSON(w, 401, fail("Acceso denegado"))
			return
		}
		writeJSON(w, 201, ok(map[string]interface{}{"message": map[string]interface{}{"_id": "m1"}}))
	case "GET /messages/conversations":
		writeJSON(w, 200, ok(map[string]interface{}{"conversations": []interface{}{}}))
	case "GET /messages/unread-count":
		writeJSON(w, 200, ok(map[string]interface{}{"unreadCount": 0}))
	case "POST /bookings":
		if user == nil {
			writeJSON(w, 401, fail("Acceso denegado"))
			return
		}
		writeJSON(w, 201, ok(map[string]interface{}{
			"booking": map[string]interface{}{"_id": "b1", "confirmationCode": "VIV-2024-0001"},
		}))
	case "GET /bookings":
		writeJSON(w, 200, ok(map[string]interface{}{"bookings": []interface{}{map[string]interface{}{"_id": "b1"}}}))
	case "GET /bookings/stats/overview":
		writeJSON(w, 200, ok(map[string]interface{}{"stats": map[string]interface{}{"total": 1}}))
	case "GET /status":
		writeJSON(w, 200, map[string]interface{}{"success": true, "data": []interface{}{}})
	case "POST /status":
		writeJSON(w, 201, ok(map[string]interface{}{"client_name": body["client_name"]}))
	default:
		writeJSON(w, 404, fail("Ruta no encontrada"))
	}
}

func (b *fakeBackend) userForRequest(r *http.Request) *fakeUser {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	for _, u := range b.users {
		if u.Token == token {
			return u
		}
	}
	return nil
}

func (b *fakeBackend) authHeadersFor(path string) []string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]string(nil), b.authHeaders[path]...)
}

// lastBody returns the most recent JSON body received for a method and path.
func (b *fakeBackend) lastBody(methodAndPath string) map[string]interface{} {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.receivedBodies[methodAndPath]
}

func (b *fakeBackend) requests() []string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]string(nil), b.requestedURIs...)
}

func queryPart(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return ""
	}
	return "?" + r.URL.RawQuery
}

func userJSON(u *fakeUser) map[string]interface{} {
	return map[string]interface{}{"_id": u.ID, "email": u.Email}
}

func ok(data interface{}) map[string]interface{} {
	return map[string]interface{}{"success": true, "data": data}
}

func fail(message string) map[string]interface{} {
	return map[string]interface{}{"success": false, "message": message}
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, _ := json.Marshal(value)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
