// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Wavelength API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - UserHandler: signup, login, profile CRUD, follow/unfollow
  - PostHandler: post CRUD, like/unlike, timeline

Handlers are created via constructor functions that accept store
interfaces and Config:

	userHandler := handlers.NewUserHandler(users, cfg)
	postHandler := handlers.NewPostHandler(posts, users, cfg)

# Request Flow

Every mutating route follows the same shape: parse body, validate,
load the target, apply the authorization policy, mutate, respond.
The acting identity always comes from the verified token claims
(middleware.ClaimsFrom), never from the request body.

# Authorization

Account and post mutations require the owner or an admin:

	if !auth.CanMutate(claims, post.UserID) {
		// 403 unauthorized
	}

Denials are distinct from 404s: the target is looked up first, so a
missing entity is reported as not_found rather than leaking through a
permission error.

# Social Graph

Follow/unfollow and like/unlike are membership toggles over arrays.
Repeating an operation that is already applied is a 409 conflict
(already_following, not_liked, ...) and does not mutate state.
Follow writes the target's followers array first, then the actor's
following array; the two writes are not atomic.

# Timeline

GET /api/posts computes the feed as the acting user's posts plus the
posts of every followed account. Per-account fetches run concurrently
via errgroup; one failing sub-fetch fails the request. Order across
sub-fetches is unspecified.

# Errors

Store failures map onto the {kind, message} envelope in one place
(storeError): invalid id → 400, missing → 404, duplicate → 409,
anything else → 500 with a fixed message and a server-side log line.
*/
package handlers
