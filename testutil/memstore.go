// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/danielhkuo/wavelength/models"
	"github.com/danielhkuo/wavelength/store"
)

// MemoryUserStore is a map-backed store.UserStore with the same error
// kinds as the mongo implementation. Mongo has no embedded mode, so
// handler tests run against this instead of a live server.
type MemoryUserStore struct {
	mu    sync.Mutex
	order []string
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: map[string]models.User{}}
}

func copyUser(u models.User) models.User {
	u.Followers = slices.Clone(u.Followers)
	u.Following = slices.Clone(u.Following)
	return u
}

func validID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}

func (s *MemoryUserStore) Insert(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, store.ErrDuplicate
		}
	}

	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Followers == nil {
		user.Followers = []string{}
	}
	if user.Following == nil {
		user.Following = []string{}
	}

	id := user.ID.Hex()
	s.users[id] = copyUser(user)
	s.order = append(s.order, id)
	return user, nil
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	if err := validID(id); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return copyUser(user), nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		if s.users[id].Email == email {
			return copyUser(s.users[id]), nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *MemoryUserStore) List(ctx context.Context, newestFirst bool) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, copyUser(s.users[id]))
	}
	if newestFirst {
		slices.Reverse(users)
	}
	return users, nil
}

func (s *MemoryUserStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.User, error) {
	if err := validID(id); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}

	for key, value := range fields {
		str, _ := value.(string)
		switch key {
		case "username":
			user.Username = str
		case "email":
			for otherID, other := range s.users {
				if otherID != id && other.Email == str {
					return models.User{}, store.ErrDuplicate
				}
			}
			user.Email = str
		case "password":
			user.Password = str
		case "profilePicture":
			user.ProfilePicture = str
		case "coverPicture":
			user.CoverPicture = str
		}
	}
	user.UpdatedAt = time.Now().UTC()

	s.users[id] = copyUser(user)
	return user, nil
}

func (s *MemoryUserStore) Delete(ctx context.Context, id string) (models.User, error) {
	if err := validID(id); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	delete(s.users, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return user, nil
}

func (s *MemoryUserStore) AddFollower(ctx context.Context, id, followerID string) error {
	return s.mutate(id, func(u *models.User) { u.Followers = append(u.Followers, followerID) })
}

func (s *MemoryUserStore) RemoveFollower(ctx context.Context, id, followerID string) error {
	return s.mutate(id, func(u *models.User) {
		u.Followers = slices.DeleteFunc(u.Followers, func(v string) bool { return v == followerID })
	})
}

func (s *MemoryUserStore) AddFollowing(ctx context.Context, id, followedID string) error {
	return s.mutate(id, func(u *models.User) { u.Following = append(u.Following, followedID) })
}

func (s *MemoryUserStore) RemoveFollowing(ctx context.Context, id, followedID string) error {
	return s.mutate(id, func(u *models.User) {
		u.Following = slices.DeleteFunc(u.Following, func(v string) bool { return v == followedID })
	})
}

func (s *MemoryUserStore) mutate(id string, fn func(*models.User)) error {
	if err := validID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	fn(&user)
	user.UpdatedAt = time.Now().UTC()
	s.users[id] = copyUser(user)
	return nil
}

// MemoryPostStore is a map-backed store.PostStore.
type MemoryPostStore struct {
	mu    sync.Mutex
	order []string
	posts map[string]models.Post
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{posts: map[string]models.Post{}}
}

func copyPost(p models.Post) models.Post {
	p.Likes = slices.Clone(p.Likes)
	return p
}

func (s *MemoryPostStore) Insert(ctx context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Likes == nil {
		post.Likes = []string{}
	}

	id := post.ID.Hex()
	s.posts[id] = copyPost(post)
	s.order = append(s.order, id)
	return post, nil
}

func (s *MemoryPostStore) FindByID(ctx context.Context, id string) (models.Post, error) {
	if err := validID(id); err != nil {
		return models.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, store.ErrNotFound
	}
	return copyPost(post), nil
}

func (s *MemoryPostStore) FindByUser(ctx context.Context, userID string) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := []models.Post{}
	for _, id := range s.order {
		if s.posts[id].UserID == userID {
			posts = append(posts, copyPost(s.posts[id]))
		}
	}
	return posts, nil
}

func (s *MemoryPostStore) List(ctx context.Context, newestFirst bool) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.Post, 0, len(s.order))
	for _, id := range s.order {
		posts = append(posts, copyPost(s.posts[id]))
	}
	if newestFirst {
		slices.Reverse(posts)
	}
	return posts, nil
}

func (s *MemoryPostStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Post, error) {
	if err := validID(id); err != nil {
		return models.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, store.ErrNotFound
	}

	for key, value := range fields {
		str, _ := value.(string)
		switch key {
		case "description":
			post.Description = str
		case "image":
			post.Image = str
		}
	}
	post.UpdatedAt = time.Now().UTC()

	s.posts[id] = copyPost(post)
	return post, nil
}

func (s *MemoryPostStore) Delete(ctx context.Context, id string) (models.Post, error) {
	if err := validID(id); err != nil {
		return models.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, store.ErrNotFound
	}
	delete(s.posts, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return post, nil
}

func (s *MemoryPostStore) AddLike(ctx context.Context, id, userID string) error {
	return s.mutate(id, func(p *models.Post) { p.Likes = append(p.Likes, userID) })
}

func (s *MemoryPostStore) RemoveLike(ctx context.Context, id, userID string) error {
	return s.mutate(id, func(p *models.Post) {
		p.Likes = slices.DeleteFunc(p.Likes, func(v string) bool { return v == userID })
	})
}

func (s *MemoryPostStore) mutate(id string, fn func(*models.Post)) error {
	if err := validID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return store.ErrNotFound
	}
	fn(&post)
	post.UpdatedAt = time.Now().UTC()
	s.posts[id] = copyPost(post)
	return nil
}
