package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/daystreak/internal/db"
	"github.com/terraincognita07/daystreak/internal/metrics"
	"github.com/terraincognita07/daystreak/internal/security"
	"gorm.io/gorm"
)

const (
	testSecretKey      = "0123456789abcdef0123456789abcdef"
	testProfileID      = "4f1b2f0e-6a77-4c7e-9c1d-1d8c0b0c6a10"
	testOtherProfileID = "9a0f5a3c-1111-4d2b-8a44-2b7f7f3c9e01"
)

var testNow = time.Date(2026, time.January, 6, 15, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "daystreak-api-test.db")
	database, err := db.OpenSQLite(databasePath, zerolog.Nop())
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

	handler, err := NewHandler(database, HandlerOptions{
		SecretKey: testSecretKey,
		Location:  time.UTC,
		Logger:    zerolog.Nop(),
		Now:       func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	registry := prometheus.NewRegistry()
	metrics.MustRegister(registry)

	app := NewApp(handler, AppOptions{CORSOrigins: []string{"*"}, Gatherer: registry})
	return app, database
}

func bearerFor(t *testing.T, profileID string) string {
	t.Helper()

	token, err := security.IssueToken([]byte(testSecretKey), profileID, time.Hour, testNow)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func sendJSON(t *testing.T, app *fiber.App, method string, path string, authorization string, body string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON[T any](t *testing.T, response *http.Response) T {
	t.Helper()
	defer response.Body.Close()

	var payload T
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	bytes, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(bytes, &payload); err != nil {
		t.Fatalf("decode response body %q: %v", string(bytes), err)
	}
	return payload["error"]
}

func assertStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, string(body))
	}
}

func createTestProfile(t *testing.T, app *fiber.App, profileID string, name string) {
	t.Helper()

	response := sendJSON(t, app, http.MethodPost, "/api/profile", bearerFor(t, profileID),
		`{"id":"`+profileID+`","name":"`+name+`"}`)
	defer response.Body.Close()
	assertStatus(t, response, fiber.StatusCreated)
}

func logTestExercise(t *testing.T, app *fiber.App, profileID string, timestamp string) {
	t.Helper()

	response := sendJSON(t, app, http.MethodPost, "/api/exercise", bearerFor(t, profileID),
		`{"timestamp":"`+timestamp+`"}`)
	defer response.Body.Close()
	assertStatus(t, response, fiber.StatusCreated)
}
