// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/wavelength/auth"
	"github.com/danielhkuo/wavelength/cliparse"
	"github.com/danielhkuo/wavelength/middleware"
	"github.com/danielhkuo/wavelength/models"
	"github.com/danielhkuo/wavelength/store"
)

type PostHandler struct {
	posts store.PostStore
	users store.UserStore
	cfg   cliparse.Config
}

func NewPostHandler(posts store.PostStore, users store.UserStore, cfg cliparse.Config) *PostHandler {
	return &PostHandler{posts: posts, users: users, cfg: cfg}
}

// Create handles POST /api/posts
// The owner is always the acting identity from the token, never the body.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}

	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidationFailed, err.Error())
		return
	}

	claims := middleware.ClaimsFrom(r)
	post := models.Post{
		UserID:      claims.UserID,
		Description: req.Description,
		Image:       req.Image,
	}

	created, err := h.posts.Insert(r.Context(), post)
	if err != nil {
		storeError(w, err, "Post")
		return
	}

	slog.Info("post created", "post_id", created.ID.Hex(), "user_id", claims.UserID)

	middleware.JSONResponse(w, http.StatusCreated, created)
}

// Get handles GET /api/posts/{id}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Post")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, post)
}

// Update handles PUT /api/posts/{id}
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claims := middleware.ClaimsFrom(r)

	post, err := h.posts.FindByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Post")
		return
	}

	if !auth.CanMutate(claims, post.UserID) {
		middleware.ErrorResponse(w, http.StatusForbidden, models.KindUnauthorized, "Not allowed to update this post")
		return
	}

	var req models.UpdatePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}

	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidationFailed, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	if len(fields) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "No fields to update")
		return
	}

	updated, err := h.posts.Update(r.Context(), id, fields)
	if err != nil {
		storeError(w, err, "Post")
		return
	}

	slog.Info("post updated", "post_id", id)

	middleware.JSONResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/posts/{id}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claims := middleware.ClaimsFrom(r)

	post, err := h.posts.FindByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Post")
		return
	}

	if !auth.CanMutate(claims, post.UserID) {
		middleware.ErrorResponse(w, http.StatusForbidden, models.KindUnauthorized, "Not allowed to delete this post")
		return
	}

	deleted, err := h.posts.Delete(r.Context(), id)
	if err != nil {
		storeError(w, err, "Post")
		return
	}

	slog.Info("post deleted", "post_id", id)

	middleware.JSONResponse(w, http.StatusOK, deleted)
}

// Like handles PUT /api/posts/{id}/like
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claims := middleware.ClaimsFrom(r)

	post, err := h.posts.FindByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Post")
		return
	}

	if slices.Contains(post.Likes, claims.UserID) {
		middleware.ErrorResponse(w, http.StatusConflict, models.KindConflict, "Already liked this post")
		return
	}

	if err := h.posts.AddLike(r.Context(), id, claims.UserID); err != nil {
		storeError(w, err, "Post")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Liked successfully"})
}

// Unlike handles PUT /api/posts/{id}/unlike
func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claims := middleware.ClaimsFrom(r)

	post, err := h.posts.FindByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Post")
		return
	}

	if !slices.Contains(post.Likes, claims.UserID) {
		middleware.ErrorResponse(w, http.StatusConflict, models.KindConflict, "Not liked this post")
		return
	}

	if err := h.posts.RemoveLike(r.Context(), id, claims.UserID); err != nil {
		storeError(w, err, "Post")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Unliked successfully"})
}

// Timeline handles GET /api/posts
// The feed is the acting user's own posts plus the posts of every account
// they follow. Per-account fetches run concurrently; any sub-fetch failing
// fails the whole request. No ordering guarantee, no deduplication.
func (h *PostHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r)

	user, err := h.users.FindByID(r.Context(), claims.UserID)
	if err != nil {
		storeError(w, err, "User")
		return
	}

	own, err := h.posts.FindByUser(r.Context(), user.ID.Hex())
	if err != nil {
		storeError(w, err, "Post")
		return
	}

	followed := make([][]models.Post, len(user.Following))
	g, ctx := errgroup.WithContext(r.Context())
	for i, friendID := range user.Following {
		g.Go(func() error {
			posts, err := h.posts.FindByUser(ctx, friendID)
			if err != nil {
				return err
			}
			followed[i] = posts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		storeError(w, err, "Post")
		return
	}

	timeline := own
	for _, posts := range followed {
		timeline = append(timeline, posts...)
	}

	middleware.JSONResponse(w, http.StatusOK, timeline)
}
