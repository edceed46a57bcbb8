package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cbet/sentinelles/auth"
	"github.com/cbet/sentinelles/cliparse"
	"github.com/cbet/sentinelles/db"
)

// Credentials accepted by TestVerifier and GetTestConfig.
const (
	TestLabUser     = "admin"
	TestLabPassword = "test-lab-password"
)

// SetupTestDB creates a fresh SQLite store with the full schema.
// The file lives in t.TempDir and is removed with it.
func SetupTestDB(t *testing.T) *db.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := db.Open(context.Background(), db.DriverSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := store.CreateSchema(context.Background()); err != nil {
		store.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  "file:test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		LabUsername:  TestLabUser,
		LabPassword:  TestLabPassword,
		LabRealm:     cliparse.DefaultLabRealm,
		StaticDir:    "public",
		MaxBodyBytes: cliparse.DefaultMaxBodyBytes,
	}
}

// TestVerifier returns the verifier matching GetTestConfig.
func TestVerifier() auth.Verifier {
	return auth.NewStaticVerifier(TestLabUser, TestLabPassword)
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates an HTTP test request with a url-encoded body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// WithLabAuth adds the test Basic credentials to the request
func WithLabAuth(req *http.Request) *http.Request {
	req.SetBasicAuth(TestLabUser, TestLabPassword)
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// Ptr returns a pointer to v, for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
