package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/heroforce/heroforce/internal/models"
)

func TestGuardedRoutesRejectMissingAuthorizationHeader(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/projects", "/projects/statistics", "/users", "/users/me"} {
		request := httptest.NewRequest(http.MethodGet, path, nil)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("GET %s failed: %v", path, err)
		}
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("GET %s: expected status 401, got %d", path, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestGuardedRoutesRejectGarbageToken(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodGet, "/projects", "not-a-valid-token", nil)
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestTokenOfDeletedUserIsRejected(t *testing.T) {
	app, _ := newTestApp(t)
	admin := registerTestUser(t, app, "admin@example.com", models.RoleAdmin)
	hero := registerTestUser(t, app, "hero@example.com", models.RoleHero)

	deleteResponse := performJSON(t, app, http.MethodDelete, "/users/"+hero.User.ID, admin.AccessToken, nil)
	if deleteResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 deleting hero, got %d", deleteResponse.StatusCode)
	}
	deleteResponse.Body.Close()

	// The hero's still-unexpired token must now fail validation.
	response := performJSON(t, app, http.MethodGet, "/users/me", hero.AccessToken, nil)
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for deleted subject, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestProjectMutationsRequireAdminRole(t *testing.T) {
	app, _ := newTestApp(t)
	admin := registerTestUser(t, app, "admin@example.com", models.RoleAdmin)
	hero := registerTestUser(t, app, "hero@example.com", models.RoleHero)

	project := createTestProject(t, app, admin.AccessToken, fiber.Map{
		"name":          "Missão Resgate",
		"description":   "Resgatar civis",
		"responsibleId": admin.User.ID,
	})
	projectID := project["id"].(string)

	createAttempt := performJSON(t, app, http.MethodPost, "/projects", hero.AccessToken, fiber.Map{
		"name":          "Missão Pirata",
		"description":   "Não deveria existir",
		"responsibleId": hero.User.ID,
	})
	if createAttempt.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 for hero create, got %d", createAttempt.StatusCode)
	}
	if message := readAPIError(t, createAttempt); message != "Acesso restrito a administradores" {
		t.Fatalf("expected admin-only message, got %q", message)
	}

	patchAttempt := performJSON(t, app, http.MethodPatch, "/projects/"+projectID, hero.AccessToken, fiber.Map{
		"completion": 99,
	})
	if patchAttempt.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 for hero patch, got %d", patchAttempt.StatusCode)
	}
	patchAttempt.Body.Close()

	deleteAttempt := performJSON(t, app, http.MethodDelete, "/projects/"+projectID, hero.AccessToken, nil)
	if deleteAttempt.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 for hero delete, got %d", deleteAttempt.StatusCode)
	}
	deleteAttempt.Body.Close()

	// Reads stay open to authenticated heroes.
	listResponse := performJSON(t, app, http.MethodGet, "/projects", hero.AccessToken, nil)
	if listResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for hero list, got %d", listResponse.StatusCode)
	}
	listResponse.Body.Close()
}
