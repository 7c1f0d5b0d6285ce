// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Wavelength API server.

Wavelength is a small social network backend: accounts, bearer-token
authentication, posts, likes, follows, and a timeline feed, persisted in
MongoDB.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	MONGO_URI=mongodb://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8000 -d "mongodb://..." -jwt-secret "..."

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - MONGO_URI (-d): MongoDB connection URI
  - JWT_SECRET (-jwt-secret): Token signing secret

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DB_NAME (-n): Database name (default: wavelength)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, posts)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Auth, CORS, logging, JSON helpers
  - models: Entity, request, and response types with validation tags
  - auth: Password hashing, token issue/verify, authorization policy
  - store: UserStore/PostStore interfaces and MongoDB implementations
  - db: Connection and index bootstrap
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
