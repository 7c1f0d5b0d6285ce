package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error kind constants for the {kind, message} error envelope
const (
	KindValidationFailed   = "validation_failed"
	KindBadRequest         = "bad_request"
	KindInvalidCredentials = "invalid_credentials"
	KindAuthTokenInvalid   = "auth_token_invalid"
	KindUnauthorized       = "unauthorized"
	KindNotFound           = "not_found"
	KindConflict           = "conflict"
	KindStorageFailure     = "storage_failure"
)

// Domain types

// User is an account document. The password field holds the bcrypt hash
// and is never serialized into responses.
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"-" bson:"password"`
	ProfilePicture string             `json:"profilePicture" bson:"profilePicture"`
	CoverPicture   string             `json:"coverPicture" bson:"coverPicture"`
	Followers      []string           `json:"followers" bson:"followers"`
	Following      []string           `json:"following" bson:"following"`
	IsAdmin        bool               `json:"isAdmin" bson:"isAdmin"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Post is a content document owned by one user. UserID and the likes
// entries are hex object IDs stored as plain strings.
type Post struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image" bson:"image"`
	Likes       []string           `json:"likes" bson:"likes"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Request types

type SignupRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=30"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6,max=30"`
	ProfilePicture string `json:"profilePicture" validate:"omitempty,max=500"`
	CoverPicture   string `json:"coverPicture" validate:"omitempty,max=500"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Username       *string `json:"username" validate:"omitempty,min=3,max=30"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password" validate:"omitempty,min=6,max=30"`
	ProfilePicture *string `json:"profilePicture" validate:"omitempty,max=500"`
	CoverPicture   *string `json:"coverPicture" validate:"omitempty,max=500"`
}

type CreatePostRequest struct {
	Description string `json:"description" validate:"required,min=1,max=500"`
	Image       string `json:"image" validate:"omitempty,max=500"`
}

type UpdatePostRequest struct {
	Description *string `json:"description" validate:"omitempty,min=1,max=500"`
	Image       *string `json:"image" validate:"omitempty,max=500"`
}

// Response types

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope: kind is stable and machine-readable,
// message is for humans.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
