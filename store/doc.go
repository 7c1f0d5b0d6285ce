// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists accounts and posts in MongoDB.

# Interfaces

UserStore and PostStore describe the operations the handlers need;
MongoUserStore and MongoPostStore implement them over collections:

	users := store.NewMongoUserStore(db.Collection("users"))
	posts := store.NewMongoPostStore(db.Collection("posts"))

Handlers depend on the interfaces so tests can substitute the in-memory
implementations in testutil.

# Operations

Every operation is single-document:

  - Insert assigns the object id and timestamps
  - Update merges only the supplied fields ($set) and returns the
    updated document
  - AddFollower/RemoveFollower and friends are $push/$pull membership
    mutations; the caller checks membership first

Concurrent updates to the same document are last-writer-wins at
field-merge granularity. Follow/unfollow spans two documents via two
independent writes (followers first); a crash in between leaves a
one-directional edge.

# Errors

Failures map to three kinds plus a catch-all:

  - ErrInvalidID: id is not a valid hex object id
  - ErrNotFound: id matched no document
  - ErrDuplicate: a unique-indexed field collided

Anything else wraps the driver error and surfaces as a storage failure.
*/
package store
