// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/wavelength/models"
)

var (
	// ErrNotFound means the id matched no document.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a unique-indexed field collided on insert or update.
	ErrDuplicate = errors.New("duplicate key")
	// ErrInvalidID means the id is not a valid hex object id.
	ErrInvalidID = errors.New("invalid id")
)

// UserStore persists account documents. All operations are single-document;
// concurrent field-merge updates are last-writer-wins.
type UserStore interface {
	Insert(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context, newestFirst bool) ([]models.User, error)
	// Update merges only the supplied fields into the document and returns
	// the updated state. Field names are document keys.
	Update(ctx context.Context, id string, fields map[string]interface{}) (models.User, error)
	Delete(ctx context.Context, id string) (models.User, error)
	AddFollower(ctx context.Context, id, followerID string) error
	RemoveFollower(ctx context.Context, id, followerID string) error
	AddFollowing(ctx context.Context, id, followedID string) error
	RemoveFollowing(ctx context.Context, id, followedID string) error
}

// PostStore persists post documents.
type PostStore interface {
	Insert(ctx context.Context, post models.Post) (models.Post, error)
	FindByID(ctx context.Context, id string) (models.Post, error)
	FindByUser(ctx context.Context, userID string) ([]models.Post, error)
	List(ctx context.Context, newestFirst bool) ([]models.Post, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (models.Post, error)
	Delete(ctx context.Context, id string) (models.Post, error)
	AddLike(ctx context.Context, id, userID string) error
	RemoveLike(ctx context.Context, id, userID string) error
}
