// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/danielhkuo/wavelength/auth"
	"github.com/danielhkuo/wavelength/cliparse"
	"github.com/danielhkuo/wavelength/middleware"
	"github.com/danielhkuo/wavelength/models"
	"github.com/danielhkuo/wavelength/store"
)

type UserHandler struct {
	users store.UserStore
	cfg   cliparse.Config
}

func NewUserHandler(users store.UserStore, cfg cliparse.Config) *UserHandler {
	return &UserHandler{users: users, cfg: cfg}
}

// Signup handles POST /api/users/signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}

	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidationFailed, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindStorageFailure, "Failed to create user")
		return
	}

	user := models.User{
		Username:       req.Username,
		Email:          strings.ToLower(req.Email),
		Password:       hash,
		ProfilePicture: req.ProfilePicture,
		CoverPicture:   req.CoverPicture,
	}

	// The unique email index is the existence check
	created, err := h.users.Insert(r.Context(), user)
	if err != nil {
		storeError(w, err, "User")
		return
	}

	slog.Info("user created", "user_id", created.ID.Hex(), "username", created.Username)

	middleware.JSONResponse(w, http.StatusCreated, created)
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}

	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidationFailed, err.Error())
		return
	}

	// Unknown email and wrong password produce the same response so the
	// login route cannot be used to probe which emails are registered.
	user, err := h.users.FindByEmail(r.Context(), strings.ToLower(req.Email))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.KindInvalidCredentials, "Email or password is not valid")
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.KindInvalidCredentials, "Email or password is not valid")
		return
	}

	token, err := auth.IssueToken(user.ID.Hex(), user.IsAdmin, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindStorageFailure, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", user.ID.Hex())

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		User:  user,
		Token: token,
	})
}

// List handles GET /api/users
// The "new" query flag sorts newest first.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	newestFirst := r.URL.Query().Has("new")

	users, err := h.users.List(r.Context(), newestFirst)
	if err != nil {
		storeError(w, err, "User")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}

// Get handles GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		storeError(w, err, "User")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// Update handles PUT /api/users/{id}
// Only the acting user or an admin may update an account; supplied fields
// are merged, everything else keeps its prior value.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claims := middleware.ClaimsFrom(r)

	if !auth.CanMutate(claims, id) {
		middleware.ErrorResponse(w, http.StatusForbidden, models.KindUnauthorized, "Not allowed to update this user")
		return
	}

	var req models.UpdateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}

	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidationFailed, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		fields["email"] = strings.ToLower(*req.Email)
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			slog.Error("failed to hash password", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindStorageFailure, "Failed to update user")
			return
		}
		fields["password"] = hash
	}
	if req.ProfilePicture != nil {
		fields["profilePicture"] = *req.ProfilePicture
	}
	if req.CoverPicture != nil {
		fields["coverPicture"] = *req.CoverPicture
	}

	if len(fields) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "No fields to update")
		return
	}

	updated, err := h.users.Update(r.Context(), id, fields)
	if err != nil {
		storeError(w, err, "User")
		return
	}

	slog.Info("user updated", "user_id", id)

	middleware.JSONResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/users/{id}
// Deleting an account does not cascade: its posts and its edges in other
// accounts' follower/following arrays remain.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claims := middleware.ClaimsFrom(r)

	if !auth.CanMutate(claims, id) {
		middleware.ErrorResponse(w, http.StatusForbidden, models.KindUnauthorized, "Not allowed to delete this user")
		return
	}

	deleted, err := h.users.Delete(r.Context(), id)
	if err != nil {
		storeError(w, err, "User")
		return
	}

	slog.Info("user deleted", "user_id", id)

	middleware.JSONResponse(w, http.StatusOK, deleted)
}

// Follow handles PUT /api/users/{id}/follow
// Appends the acting user to the target's followers, then the target to
// the acting user's following. Two single-document writes; a crash in
// between leaves a one-directional edge.
func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	targetID := r.PathValue("id")
	claims := middleware.ClaimsFrom(r)

	if targetID == claims.UserID {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Cannot follow yourself")
		return
	}

	target, err := h.users.FindByID(r.Context(), targetID)
	if err != nil {
		storeError(w, err, "User")
		return
	}

	if slices.Contains(target.Followers, claims.UserID) {
		middleware.ErrorResponse(w, http.StatusConflict, models.KindConflict, "Already following this user")
		return
	}

	if err := h.users.AddFollower(r.Context(), targetID, claims.UserID); err != nil {
		storeError(w, err, "User")
		return
	}
	if err := h.users.AddFollowing(r.Context(), claims.UserID, targetID); err != nil {
		storeError(w, err, "User")
		return
	}

	slog.Info("user followed", "user_id", claims.UserID, "target_id", targetID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Followed successfully"})
}

// Unfollow handles PUT /api/users/{id}/unfollow
func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	targetID := r.PathValue("id")
	claims := middleware.ClaimsFrom(r)

	if targetID == claims.UserID {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Cannot unfollow yourself")
		return
	}

	target, err := h.users.FindByID(r.Context(), targetID)
	if err != nil {
		storeError(w, err, "User")
		return
	}

	if !slices.Contains(target.Followers, claims.UserID) {
		middleware.ErrorResponse(w, http.StatusConflict, models.KindConflict, "Not following this user")
		return
	}

	if err := h.users.RemoveFollower(r.Context(), targetID, claims.UserID); err != nil {
		storeError(w, err, "User")
		return
	}
	if err := h.users.RemoveFollowing(r.Context(), claims.UserID, targetID); err != nil {
		storeError(w, err, "User")
		return
	}

	slog.Info("user unfollowed", "user_id", claims.UserID, "target_id", targetID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Unfollowed successfully"})
}
