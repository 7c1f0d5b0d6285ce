// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/wavelength/auth"
	"github.com/danielhkuo/wavelength/models"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	// Wrap with logging middleware
	wrappedHandler := WithLogging(testHandler)

	// Create test request and recorder
	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	// Execute
	wrappedHandler(w, req)

	// Verify handler was called
	if !handlerCalled {
		t.Error("Expected handler to be called")
	}

	// Verify response was written correctly
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestRequireAuth(t *testing.T) {
	const secret = "test-signing-secret"

	validToken, err := auth.IssueToken("64f1b2c3d4e5f60718293a4b", true, secret)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	foreignToken, err := auth.IssueToken("64f1b2c3d4e5f60718293a4b", false, "other-secret")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		wantClaims     bool
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"no scheme", validToken, http.StatusUnauthorized, false},
		{"wrong scheme", "Basic " + validToken, http.StatusUnauthorized, false},
		{"wrong secret", "Bearer " + foreignToken, http.StatusUnauthorized, false},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *auth.Claims
			handler := RequireAuth(secret, func(w http.ResponseWriter, r *http.Request) {
				gotClaims = ClaimsFrom(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.wantClaims {
				if gotClaims == nil {
					t.Fatal("Expected claims in request context")
				}
				if gotClaims.UserID != "64f1b2c3d4e5f60718293a4b" {
					t.Errorf("Expected user id from token, got %q", gotClaims.UserID)
				}
				if !gotClaims.IsAdmin {
					t.Error("Expected isAdmin flag to survive the round trip")
				}
			} else if gotClaims != nil {
				t.Error("Handler ran despite rejected token")
			}
		})
	}
}

func TestClaimsFrom_NoAuth(t *testing.T) {
	req := httptest.NewRequest("GET", "/public", nil)
	if claims := ClaimsFrom(req); claims != nil {
		t.Errorf("Expected nil claims on unauthenticated request, got %+v", claims)
	}
}

func TestParseJSONBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"alice"}`, false},
		{"unknown field rejected", `{"name":"alice","extra":1}`, true},
		{"malformed", `{"name":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			var v payload
			err := ParseJSONBody(req, &v)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseJSONBody() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, models.KindNotFound, "User not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"kind":"not_found"`) {
		t.Errorf("Expected kind field in body, got %s", body)
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/users", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
}
