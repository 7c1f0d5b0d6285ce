// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidateSignupRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr string // empty means valid
	}{
		{
			name:    "valid",
			req:     SignupRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"},
			wantErr: "",
		},
		{
			name:    "missing username",
			req:     SignupRequest{Email: "alice@example.com", Password: "secret1"},
			wantErr: "username is required",
		},
		{
			name:    "short username",
			req:     SignupRequest{Username: "al", Email: "alice@example.com", Password: "secret1"},
			wantErr: "username must be at least 3",
		},
		{
			name:    "bad email",
			req:     SignupRequest{Username: "alice", Email: "not-an-email", Password: "secret1"},
			wantErr: "email must be a valid email address",
		},
		{
			name:    "short password",
			req:     SignupRequest{Username: "alice", Email: "alice@example.com", Password: "abc"},
			wantErr: "password must be at least 6",
		},
		{
			name:    "only first violation surfaces",
			req:     SignupRequest{Email: "not-an-email", Password: "abc"},
			wantErr: "username is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want error containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateUpdateUserRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateUserRequest
		wantErr bool
	}{
		{"all nil is valid", UpdateUserRequest{}, false},
		{"valid partial", UpdateUserRequest{Username: strPtr("newname")}, false},
		{"short username", UpdateUserRequest{Username: strPtr("ab")}, true},
		{"bad email", UpdateUserRequest{Email: strPtr("nope")}, true},
		{"short password", UpdateUserRequest{Password: strPtr("abc")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCreatePostRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     CreatePostRequest
		wantErr string
	}{
		{"valid", CreatePostRequest{Description: "hello world"}, ""},
		{"valid with image", CreatePostRequest{Description: "pic", Image: "uploads/cat.png"}, ""},
		{"missing description", CreatePostRequest{}, "description is required"},
		{"too long", CreatePostRequest{Description: strings.Repeat("a", 501)}, "description must be at most 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
