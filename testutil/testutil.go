// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"campusvote/auth"
	"campusvote/cliparse"
	"campusvote/db"
	"campusvote/store"
)

// SetupTestDB opens an in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// An in-memory sqlite database lives and dies with its connection;
	// a single connection keeps it visible across queries.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8080,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		JWTSecret:      "test-jwt-secret",
		MasterResetKey: "TEST-RESET-KEY",
		AdminUsername:  "admin",
		AdminPassword:  "admin123",
	}
}

// CreateTestVoter registers a voter with a bcrypt-hashed password and
// returns the voter ID.
func CreateTestVoter(t *testing.T, conn *sql.DB, username, regNumber, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	voterID, err := store.RegisterVoter(conn, "Test Voter", username, regNumber, hash)
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}
	return voterID
}

// CreateTestAdmin seeds an administrator account and returns nothing;
// the caller logs in with the given credentials.
func CreateTestAdmin(t *testing.T, conn *sql.DB, username, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	adminID, err := auth.GenerateID(16)
	if err != nil {
		t.Fatalf("Failed to generate test admin ID: %v", err)
	}
	_, err = conn.Exec(`
		INSERT INTO administrator (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, adminID, username, hash, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
}

// AddTestPosition registers a position name.
func AddTestPosition(t *testing.T, conn *sql.DB, name string) {
	t.Helper()

	if err := store.AddPosition(conn, name); err != nil {
		t.Fatalf("Failed to create test position: %v", err)
	}
}

// AddTestCandidate registers the position if needed and creates a
// candidate under it, returning the candidate ID.
func AddTestCandidate(t *testing.T, conn *sql.DB, name, position string) string {
	t.Helper()

	if err := store.AddPosition(conn, position); err != nil && err != store.ErrPositionExists {
		t.Fatalf("Failed to ensure test position: %v", err)
	}
	candidateID, err := store.AddCandidate(conn, name, position, "", "")
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}
	return candidateID
}

// SetTestWindow configures the voting window.
func SetTestWindow(t *testing.T, conn *sql.DB, start, end time.Time) {
	t.Helper()

	if err := store.SetWindow(conn, start, end); err != nil {
		t.Fatalf("Failed to set test window: %v", err)
	}
}

// MakeRequest creates an HTTP test request
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
