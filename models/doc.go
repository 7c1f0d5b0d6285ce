// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines entity, request, and response types for the API.

# Domain Types

  - User: account document with follower/following edges. The password
    field holds the bcrypt hash and never serializes to JSON.
  - Post: content document with a likes array of user ids.

Both carry bson tags for persistence and json tags for responses.

# Request Types

Types for parsing incoming JSON, with validation tags:

  - SignupRequest: username, email, password, optional pictures
  - LoginRequest: email, password
  - UpdateUserRequest: pointer fields; nil means "leave unchanged"
  - CreatePostRequest: description, optional image
  - UpdatePostRequest: pointer fields

# Validation

Validate checks a request against its tags and returns the first
violation as a client-readable message:

	if err := models.Validate(req); err != nil {
		// 400 validation_failed with err.Error()
	}

# Error Envelope

Every error response is the {kind, message} envelope:

	ErrorResponse{Kind: models.KindNotFound, Message: "User not found"}

Kind constants are stable strings clients can branch on
(validation_failed, conflict, not_found, ...).
*/
package models
