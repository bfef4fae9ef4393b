// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing, session tokens, and random ID
generation.

# Passwords

Credentials are stored as bcrypt hashes only:

	hash, err := auth.HashPassword(plaintext)
	err = auth.CheckPassword(hash, plaintext) // ErrInvalidCredentials on mismatch

# Session Tokens

Login handlers issue HS256 JWTs scoped to a role:

	token, err := auth.NewToken(secret, auth.Claims{
		Subject: voter.ID,
		Role:    auth.RoleVoter,
		...
	})

Middleware validates them with ParseToken, which rejects tokens whose
role does not match the required one.

# IDs

GenerateID returns a random hex string and is used for voter,
administrator, and candidate primary keys.
*/
package auth
