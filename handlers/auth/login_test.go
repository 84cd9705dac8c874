package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/autoassign/api/utils/middleware"
	"github.com/autoassign/api/utils/session"
	"github.com/gofiber/fiber/v2"
)

// newTestApp wires the auth routes against an in-memory session store. The
// nil DB is fine for admin-credential flows, which never touch the database.
func newTestApp(sessions session.Store) *fiber.App {
	handler := NewAuthHandler(nil, sessions, time.Hour, AdminCredentials{
		Email:    "admin@univ.edu",
		Password: "Admin@123",
	})
	authMW := middleware.NewAuthMiddleware(sessions)

	app := fiber.New()
	app.Post("/api/login", handler.Login)
	app.Post("/api/logout", authMW.Required(), handler.Logout)
	app.Get("/api/me", authMW.Required(), handler.Me)
	return app
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()

	body := strings.NewReader(`{"email":"` + email + `","password":"` + password + `"}`)
	req := httptest.NewRequest("POST", "/api/login", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestAdminLoginSetsSessionCookie(t *testing.T) {
	sessions := session.NewMemoryStore(time.Hour)
	app := newTestApp(sessions)

	resp := login(t, app, "admin@univ.edu", "Admin@123")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	cookie := sessionCookie(resp)
	if cookie == nil {
		t.Fatal("no session cookie set")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie is not httpOnly")
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Role string `json:"role"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success || body.Data.Role != session.RoleAdmin {
		t.Errorf("unexpected login response: %+v", body)
	}
}

func TestLoginWrongPasswordGenericMessage(t *testing.T) {
	sessions := session.NewMemoryStore(time.Hour)
	app := newTestApp(sessions)

	resp := login(t, app, "admin@univ.edu", "wrong")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Error.Message != "Invalid email or password" {
		t.Errorf("unexpected error message: %q", body.Error.Message)
	}
}

func TestMeRequiresSession(t *testing.T) {
	sessions := session.NewMemoryStore(time.Hour)
	app := newTestApp(sessions)

	req := httptest.NewRequest("GET", "/api/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without cookie, got %d", resp.StatusCode)
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	sessions := session.NewMemoryStore(time.Hour)
	app := newTestApp(sessions)

	resp := login(t, app, "admin@univ.edu", "Admin@123")
	cookie := sessionCookie(resp)
	if cookie == nil {
		t.Fatal("no session cookie set")
	}

	// Session works before logout
	req := httptest.NewRequest("GET", "/api/me", nil)
	req.AddCookie(cookie)
	meResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	if meResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with session, got %d", meResp.StatusCode)
	}

	// Logout
	req = httptest.NewRequest("POST", "/api/logout", nil)
	req.AddCookie(cookie)
	logoutResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	if logoutResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on logout, got %d", logoutResp.StatusCode)
	}

	// Old cookie no longer works
	req = httptest.NewRequest("GET", "/api/me", nil)
	req.AddCookie(cookie)
	afterResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	if afterResp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", afterResp.StatusCode)
	}
}
