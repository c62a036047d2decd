package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tasknest/tasknest/internal/core/domain"
	"github.com/tasknest/tasknest/internal/core/ports"
	"github.com/tasknest/tasknest/internal/infrastructure/db/memory"
)

type noopRecorder struct{}

func (noopRecorder) Record(ports.ActivityInput) {}

type testEnv struct {
	router *httptest.Server
	users  *memory.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.NewUserRepository()
	e := NewRouter(Dependencies{
		Users:     users,
		Todos:     memory.NewTodoRepository(),
		Reminders: memory.NewReminderRepository(),
		Activity:  memory.NewActivityRepository(),
		Recorder:  noopRecorder{},
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		Logger:    zerolog.Nop(),
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return &testEnv{router: srv, users: users}
}

func (env *testEnv) do(t *testing.T, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()

	var payload *strings.Reader
	if body == "" {
		payload = strings.NewReader("")
	} else {
		payload = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, env.router.URL+path, payload)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func (env *testEnv) doList(t *testing.T, path, token string) (*http.Response, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, env.router.URL+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	var decoded []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func (env *testEnv) register(t *testing.T, email, password, name string) string {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q,"name":%q}`, email, password, name)
	resp, decoded := env.do(t, http.MethodPost, "/auth/register", "", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, resp.StatusCode)
	}
	token, _ := decoded["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in response", email)
	}
	return token
}

// promote flips a registered account to the admin role directly in the
// store; there is deliberately no API for role elevation.
func (env *testEnv) promote(t *testing.T, token string) {
	t.Helper()

	resp, me := env.do(t, http.MethodGet, "/auth/me", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.StatusCode)
	}
	env.users.Promote(me["id"].(string))
}

func TestEndToEnd_OwnershipScenario(t *testing.T) {
	env := newTestEnv(t)

	// Register Alice; registering the same email again conflicts.
	aliceToken := env.register(t, "alice@example.com", "secret123", "Alice")
	resp, _ := env.do(t, http.MethodPost, "/auth/register", "", `{"email":"alice@example.com","password":"otherpass","name":"Alice Again"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", resp.StatusCode)
	}

	// Wrong password produces 401.
	resp, _ = env.do(t, http.MethodPost, "/auth/login", "", `{"email":"alice@example.com","password":"wrong-password"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", resp.StatusCode)
	}

	// Alice creates a todo.
	resp, todo := env.do(t, http.MethodPost, "/todos", aliceToken, `{"text":"Buy milk"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create todo: expected 201, got %d", resp.StatusCode)
	}
	if todo["completed"] != false {
		t.Fatalf("new todo must start incomplete: %v", todo)
	}
	todoID := todo["id"].(string)

	// Alice toggles it.
	resp, toggled := env.do(t, http.MethodPatch, "/todos/"+todoID+"/toggle", aliceToken, "")
	if resp.StatusCode != http.StatusOK || toggled["completed"] != true {
		t.Fatalf("toggle: expected 200/completed, got %d %v", resp.StatusCode, toggled)
	}

	// Bob cannot see or delete Alice's todo.
	bobToken := env.register(t, "bob@example.com", "hunter22", "Bob")
	resp, bobTodos := env.doList(t, "/todos", bobToken)
	if resp.StatusCode != http.StatusOK || len(bobTodos) != 0 {
		t.Fatalf("bob's list: expected empty, got %d %v", resp.StatusCode, bobTodos)
	}
	resp, _ = env.do(t, http.MethodDelete, "/todos/"+todoID, bobToken, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("bob delete: expected 403, got %d", resp.StatusCode)
	}

	// An admin performs the same delete successfully.
	adminToken := env.register(t, "admin@example.com", "password", "Admin User")
	env.promote(t, adminToken)
	resp, _ = env.do(t, http.MethodDelete, "/todos/"+todoID, adminToken, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin delete: expected 200, got %d", resp.StatusCode)
	}

	// Alice's subsequent list excludes the deleted record.
	resp, aliceTodos := env.doList(t, "/todos", aliceToken)
	if resp.StatusCode != http.StatusOK || len(aliceTodos) != 0 {
		t.Fatalf("alice's list after delete: expected empty, got %d %v", resp.StatusCode, aliceTodos)
	}
}

func TestEndToEnd_AuthGuards(t *testing.T) {
	env := newTestEnv(t)

	// No token.
	req, _ := http.NewRequest(http.MethodGet, env.router.URL+"/todos", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", resp.StatusCode)
	}

	// Garbage token.
	resp2, _ := env.doList(t, "/todos", "garbage.token.here")
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", resp2.StatusCode)
	}

	// /auth/me round trip.
	token := env.register(t, "carol@example.com", "secret123", "Carol")
	resp3, me := env.do(t, http.MethodGet, "/auth/me", token, "")
	if resp3.StatusCode != http.StatusOK || me["email"] != "carol@example.com" {
		t.Fatalf("me: expected carol, got %d %v", resp3.StatusCode, me)
	}
	if _, leaked := me["password_hash"]; leaked {
		t.Fatalf("password hash leaked from /auth/me")
	}
}

func TestEndToEnd_ReminderGrouping(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "dora@example.com", "secret123", "Dora")

	today := time.Now().UTC().Format(time.RFC3339)
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(time.RFC3339)
	nextWeek := time.Now().UTC().AddDate(0, 0, 7).Format(time.RFC3339)

	for _, r := range []struct{ text, due string }{
		{"Team meeting", today},
		{"Client call", tomorrow},
		{"Quarterly review", nextWeek},
	} {
		body := fmt.Sprintf(`{"text":%q,"time":"10:00 AM","due_date":%q,"category":"Work"}`, r.text, r.due)
		resp, _ := env.do(t, http.MethodPost, "/reminders", token, body)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create reminder %q: expected 201, got %d", r.text, resp.StatusCode)
		}
	}

	resp, grouped := env.do(t, http.MethodGet, "/reminders/grouped", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("grouped: expected 200, got %d", resp.StatusCode)
	}
	for bucket, want := range map[string]string{"today": "Team meeting", "tomorrow": "Client call", "upcoming": "Quarterly review"} {
		entries, ok := grouped[bucket].([]any)
		if !ok || len(entries) != 1 {
			t.Fatalf("bucket %s: expected 1 entry, got %v", bucket, grouped[bucket])
		}
		entry := entries[0].(map[string]any)
		if entry["text"] != want {
			t.Fatalf("bucket %s: expected %q, got %v", bucket, want, entry["text"])
		}
	}
}

func TestEndToEnd_ActivityFeedAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	userToken := env.register(t, "eve@example.com", "secret123", "Eve")
	resp, _ := env.do(t, http.MethodGet, "/activity", userToken, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("user activity: expected 403, got %d", resp.StatusCode)
	}

	adminToken := env.register(t, "root@example.com", "secret123", "Root")
	env.promote(t, adminToken)
	resp2, _ := env.doList(t, "/activity", adminToken)
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("admin activity: expected 200, got %d", resp2.StatusCode)
	}
}

// Registration never honours a caller-supplied role.
func TestEndToEnd_NoSelfElevation(t *testing.T) {
	env := newTestEnv(t)

	body := `{"email":"mallory@example.com","password":"secret123","name":"Mallory","role":"admin"}`
	resp, decoded := env.do(t, http.MethodPost, "/auth/register", "", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}
	user := decoded["user"].(map[string]any)
	if user["role"] != domain.RoleUser {
		t.Fatalf("expected user role, got %v", user["role"])
	}
}
