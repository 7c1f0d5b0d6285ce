// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Wavelength API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(users, posts, cfg)

# Endpoints

Health:

	GET /health

Accounts (signup/login public, profile read public, rest authenticated):

	POST   /api/users/signup - Create account
	POST   /api/users/login  - Exchange credentials for a token
	GET    /api/users        - List accounts (?new sorts newest first)
	GET    /api/users/{id}   - Public profile
	PUT    /api/users/{id}   - Partial update (owner or admin)
	DELETE /api/users/{id}   - Delete account (owner or admin)

Social graph (authenticated; acting identity from the token):

	PUT /api/users/{id}/follow   - Follow target
	PUT /api/users/{id}/unfollow - Unfollow target

Posts (post read public, rest authenticated):

	POST   /api/posts          - Create post (owner = acting identity)
	GET    /api/posts          - Timeline feed (own + followed accounts)
	GET    /api/posts/{id}     - Read post
	PUT    /api/posts/{id}     - Partial update (owner or admin)
	DELETE /api/posts/{id}     - Delete post (owner or admin)
	PUT    /api/posts/{id}/like   - Like
	PUT    /api/posts/{id}/unlike - Unlike

# Handler Initialization

The router creates handler instances with dependency injection:

	userHandler := handlers.NewUserHandler(users, cfg)
	postHandler := handlers.NewPostHandler(posts, users, cfg)

Handlers receive the store interfaces, never a concrete database handle.
*/
package router
