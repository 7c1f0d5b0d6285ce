// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/wavelength/cliparse"
	"github.com/danielhkuo/wavelength/handlers"
	"github.com/danielhkuo/wavelength/middleware"
	"github.com/danielhkuo/wavelength/store"
)

func NewRouter(users store.UserStore, posts store.PostStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(users, cfg)
	postHandler := handlers.NewPostHandler(posts, users, cfg)

	logged := middleware.WithLogging
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Account lifecycle
	mux.HandleFunc("POST /api/users/signup", logged(userHandler.Signup))
	mux.HandleFunc("POST /api/users/login", logged(userHandler.Login))
	mux.HandleFunc("GET /api/users", authed(userHandler.List))
	mux.HandleFunc("GET /api/users/{id}", logged(userHandler.Get))
	mux.HandleFunc("PUT /api/users/{id}", authed(userHandler.Update))
	mux.HandleFunc("DELETE /api/users/{id}", authed(userHandler.Delete))

	// Social graph
	mux.HandleFunc("PUT /api/users/{id}/follow", authed(userHandler.Follow))
	mux.HandleFunc("PUT /api/users/{id}/unfollow", authed(userHandler.Unfollow))

	// Posts and timeline
	mux.HandleFunc("POST /api/posts", authed(postHandler.Create))
	mux.HandleFunc("GET /api/posts", authed(postHandler.Timeline))
	mux.HandleFunc("GET /api/posts/{id}", logged(postHandler.Get))
	mux.HandleFunc("PUT /api/posts/{id}", authed(postHandler.Update))
	mux.HandleFunc("DELETE /api/posts/{id}", authed(postHandler.Delete))
	mux.HandleFunc("PUT /api/posts/{id}/like", authed(postHandler.Like))
	mux.HandleFunc("PUT /api/posts/{id}/unlike", authed(postHandler.Unlike))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("wavelength API v1"))
	})

	return mux
}
