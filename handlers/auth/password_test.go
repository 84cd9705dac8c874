package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/autoassign/api/database"
	"github.com/autoassign/api/model"
	"github.com/autoassign/api/utils/auth"
	"github.com/autoassign/api/utils/middleware"
	"github.com/autoassign/api/utils/session"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// setupPasswordTest connects to the real database or skips, creates a
// throwaway student and returns an app with the change-password route plus
// a live session cookie for that student.
// Run with: RUN_INTEGRATION_TESTS=true go test ./handlers/auth/ -run ChangePassword
func setupPasswordTest(t *testing.T) (*fiber.App, *http.Cookie, *gorm.DB, string) {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run.")
	}

	store, err := database.StartGORM()
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		t.Fatal("Failed to get GORM DB instance")
	}

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	dept := model.Department{Code: "P" + suffix[len(suffix)-8:], Name: "Password Test Dept"}
	if err := db.Create(&dept).Error; err != nil {
		t.Fatalf("failed to create department: %v", err)
	}
	batch := model.Batch{Name: "PW-" + suffix, Semester: 1, Year: time.Now().Year(), DeptID: dept.ID}
	if err := db.Create(&batch).Error; err != nil {
		t.Fatalf("failed to create batch: %v", err)
	}

	hash, err := auth.HashPassword("Old@12")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	studentID := "PW" + suffix[len(suffix)-6:]
	student := model.Student{
		StudentID:    studentID,
		Name:         "Password Test Student",
		Email:        fmt.Sprintf("pw-%s@test.local", suffix),
		DOB:          time.Date(2003, time.May, 10, 0, 0, 0, 0, time.UTC),
		BatchID:      batch.ID,
		PasswordHash: hash,
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("failed to create student: %v", err)
	}

	sessions := session.NewMemoryStore(time.Hour)
	token := session.NewToken()
	err = sessions.Put(t.Context(), token, session.Data{
		ID:    studentID,
		Email: student.Email,
		Name:  student.Name,
		Role:  session.RoleStudent,
	})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	handler := NewAuthHandler(db, sessions, time.Hour, AdminCredentials{})
	authMW := middleware.NewAuthMiddleware(sessions)

	app := fiber.New()
	app.Post("/api/change-password", authMW.Required(), handler.ChangePassword)

	cookie := &http.Cookie{Name: session.CookieName, Value: token}
	return app, cookie, db, studentID
}

func changePassword(t *testing.T, app *fiber.App, cookie *http.Cookie, current, newPassword string) *http.Response {
	t.Helper()

	body := strings.NewReader(fmt.Sprintf(
		`{"current_password":%q,"new_password":%q}`, current, newPassword))
	req := httptest.NewRequest("POST", "/api/change-password", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("change-password request failed: %v", err)
	}
	return resp
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body.Error.Message
}

func TestChangePasswordWrongCurrentAlwaysUnauthorized(t *testing.T) {
	app, cookie, _, _ := setupPasswordTest(t)

	// Wrong current password with a policy-valid new password
	resp := changePassword(t, app, cookie, "Wrong@9", "New@123")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong current password, got %d", resp.StatusCode)
	}
	if msg := errorMessage(t, resp); msg != "Current password is incorrect" {
		t.Errorf("unexpected error message: %q", msg)
	}

	// Wrong current password with a policy-violating new password must
	// still fail on the current password, not on the policy.
	resp = changePassword(t, app, cookie, "Wrong@9", "abc")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 regardless of new-password validity, got %d", resp.StatusCode)
	}
	if msg := errorMessage(t, resp); msg != "Current password is incorrect" {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestChangePasswordPolicyRejections(t *testing.T) {
	app, cookie, _, _ := setupPasswordTest(t)

	rejected := []string{
		"Ab1!x",        // too short
		"Abcdefg1234!", // too long
		"abc@123",      // no uppercase
		"ABC@123",      // no lowercase
		"Abcdef@",      // no digit
		"Abcdef1",      // no special
	}
	for _, newPassword := range rejected {
		resp := changePassword(t, app, cookie, "Old@12", newPassword)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400 for new password %q, got %d", newPassword, resp.StatusCode)
		}
	}
}

func TestChangePasswordSuccess(t *testing.T) {
	app, cookie, db, studentID := setupPasswordTest(t)

	resp := changePassword(t, app, cookie, "Old@12", "New@123")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	// The stored hash now verifies against the new password only
	var student model.Student
	if err := db.First(&student, "student_id = ?", studentID).Error; err != nil {
		t.Fatalf("failed to reload student: %v", err)
	}
	if err := auth.VerifyPassword(student.PasswordHash, "New@123"); err != nil {
		t.Errorf("new password does not verify: %v", err)
	}
	if err := auth.VerifyPassword(student.PasswordHash, "Old@12"); err == nil {
		t.Error("old password still verifies after change")
	}
}
