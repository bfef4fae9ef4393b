// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging wraps a handler and logs request start/completion with
method, path, and duration via slog.

# Sessions

RequireRole guards handlers behind a Bearer JWT for a specific role:

	mux.HandleFunc("POST /ballots",
		middleware.RequireRole(secret, auth.RoleVoter, h.SubmitBallot))

Handlers read the validated claims back with SessionClaims.

# JSON Helpers

JSONResponse, ErrorResponse, and ParseJSONBody keep handler bodies
uniform. CORS allows the browser frontends to reach the API.
*/
package middleware
