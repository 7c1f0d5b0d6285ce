// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/wavelength/models"
	"github.com/danielhkuo/wavelength/testutil"
)

func newTestRouter() *http.ServeMux {
	users := testutil.NewMemoryUserStore()
	posts := testutil.NewMemoryPostStore()
	return NewRouter(users, posts, testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "wavelength API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	mux := newTestRouter()

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/api/users"},
		{"PUT", "/api/users/64f1b2c3d4e5f60718293a4b"},
		{"DELETE", "/api/users/64f1b2c3d4e5f60718293a4b"},
		{"PUT", "/api/users/64f1b2c3d4e5f60718293a4b/follow"},
		{"PUT", "/api/users/64f1b2c3d4e5f60718293a4b/unfollow"},
		{"POST", "/api/posts"},
		{"GET", "/api/posts"},
		{"PUT", "/api/posts/64f1b2c3d4e5f60718293a4b"},
		{"DELETE", "/api/posts/64f1b2c3d4e5f60718293a4b"},
		{"PUT", "/api/posts/64f1b2c3d4e5f60718293a4b/like"},
		{"PUT", "/api/posts/64f1b2c3d4e5f60718293a4b/unlike"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401 without token, got %d", w.Code)
			}
			testutil.AssertErrorKind(t, w, models.KindAuthTokenInvalid)
		})
	}
}

func TestSignupThroughRouter(t *testing.T) {
	mux := newTestRouter()

	req := testutil.MakeRequest("POST", "/api/users/signup", models.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	}, nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d. Body: %s", w.Code, w.Body.String())
	}
}

func TestPublicGetUserRoute(t *testing.T) {
	users := testutil.NewMemoryUserStore()
	posts := testutil.NewMemoryPostStore()
	mux := NewRouter(users, posts, testutil.GetTestConfig())

	user := testutil.CreateTestUser(t, users, "alice", "alice@example.com", "secret1", false)

	// Profile reads need no token
	req := httptest.NewRequest("GET", "/api/users/"+user.ID.Hex(), nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 on public profile read, got %d", w.Code)
	}

	var got models.User
	testutil.AssertJSON(t, w, &got)
	if got.Username != "alice" {
		t.Errorf("Expected alice, got %q", got.Username)
	}
}
