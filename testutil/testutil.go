// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/wavelength/auth"
	"github.com/danielhkuo/wavelength/cliparse"
	"github.com/danielhkuo/wavelength/models"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      8000,
		MongoURI:  "mongodb://localhost:27017",
		DBName:    "wavelength_test",
		JWTSecret: "test-signing-secret",
	}
}

// CreateTestUser inserts a user with a hashed password and returns it
func CreateTestUser(t *testing.T, users *MemoryUserStore, username, email, password string, isAdmin bool) models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user, err := users.Insert(context.Background(), models.User{
		Username: username,
		Email:    email,
		Password: hash,
		IsAdmin:  isAdmin,
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateTestPost inserts a post owned by the given user id
func CreateTestPost(t *testing.T, posts *MemoryPostStore, userID, description string) models.Post {
	t.Helper()

	post, err := posts.Insert(context.Background(), models.Post{
		UserID:      userID,
		Description: description,
	})
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	return post
}

// TokenFor issues a token for the given user with the test signing secret
func TokenFor(t *testing.T, cfg cliparse.Config, user models.User) string {
	t.Helper()

	token, err := auth.IssueToken(user.ID.Hex(), user.IsAdmin, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// AuthHeader builds the bearer header map for MakeRequest
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
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

// AssertErrorKind checks the kind field of an error envelope response
func AssertErrorKind(t *testing.T, w *httptest.ResponseRecorder, kind string) {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Kind != kind {
		t.Errorf("Expected error kind %q, got %q (message: %q)", kind, resp.Kind, resp.Message)
	}
}
