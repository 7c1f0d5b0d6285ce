// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the MongoDB connection and index bootstrap.

# Connecting

Connect opens a client and verifies it with a ping:

	client, err := db.Connect(ctx, cfg.MongoURI)

# Indexes

EnsureIndexes creates the indexes the API relies on:

	err := db.EnsureIndexes(ctx, client.Database(cfg.DBName))

Safe to call on every startup; index creation is idempotent.

  - users.email (unique): enforces one account per email
  - users.createdAt: backs the ?new recency sort
  - posts.userId: backs the per-account timeline fetch (non-unique)
  - posts.createdAt: backs recency sorts

# Collections

Collection names are exported as UsersCollection and PostsCollection.
*/
package db
