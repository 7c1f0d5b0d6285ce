// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Authentication

Wrap protected handlers with RequireAuth:

	mux.HandleFunc("PUT /api/users/{id}",
		middleware.WithLogging(middleware.RequireAuth(secret, handler.Update)))

RequireAuth verifies the Authorization bearer token and stores its
claims in the request context; handlers read them back:

	claims := middleware.ClaimsFrom(r)

Missing, malformed, expired, and bad-signature tokens all get the same
401 auth_token_invalid response.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, kind, "message")

Parse JSON request bodies (unknown fields are rejected):

	var req models.SignupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logging.
*/
package middleware
