package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/heroforce/heroforce/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "heroforce-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.Hour)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	var payload struct {
		Error string `json:"error"`
	}
	decodeJSONBody(t, response, &payload)
	return payload.Error
}

type authPayload struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Character string `json:"character"`
		Role      string `json:"role"`
	} `json:"user"`
}

func registerTestUser(t *testing.T, app *fiber.App, email string, role string) authPayload {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name":      "Bruce Wayne",
		"email":     email,
		"character": "Batman",
		"password":  "senha123",
		"role":      role,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected status 201, got %d", email, response.StatusCode)
	}

	var payload authPayload
	decodeJSONBody(t, response, &payload)
	if payload.AccessToken == "" || payload.User.ID == "" {
		t.Fatalf("register %s: incomplete auth payload %+v", email, payload)
	}
	return payload
}

func createTestProject(t *testing.T, app *fiber.App, token string, body fiber.Map) map[string]any {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/projects", token, body)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create project: expected status 201, got %d", response.StatusCode)
	}

	var project map[string]any
	decodeJSONBody(t, response, &project)
	if id, _ := project["id"].(string); id == "" {
		t.Fatalf("create project: missing id in %v", project)
	}
	return project
}

func projectFieldInt(t *testing.T, project map[string]any, field string) int {
	t.Helper()

	value, ok := project[field].(float64)
	if !ok {
		t.Fatalf("expected numeric field %q in %v", field, project)
	}
	return int(value)
}
