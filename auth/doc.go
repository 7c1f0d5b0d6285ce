// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing, bearer tokens, and the
authorization policy.

# Passwords

Passwords are stored only as salted bcrypt hashes (cost 10):

	hash, err := auth.HashPassword(plain)
	ok := auth.CheckPassword(plain, hash)

Hashing is non-deterministic per call; CheckPassword is the only way to
compare.

# Tokens

Tokens are HS256-signed JWTs carrying the acting identity:

	token, err := auth.IssueToken(userID, isAdmin, secret)
	claims, err := auth.VerifyToken(token, secret)

Claims embed {id, isAdmin} plus a 48-hour expiry. VerifyToken collapses
every failure (bad signature, expiry, garbage input) to ErrInvalidToken.

Tokens travel in the Authorization header:

	Authorization: Bearer <token>

ParseBearer strips the scheme; a header without it is malformed.

# Authorization Policy

Mutations of accounts and posts are allowed for the owner or an admin:

	if !auth.CanMutate(claims, ownerID) {
		// reject
	}
*/
package auth
