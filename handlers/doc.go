// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the election API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AccountsHandler: registration, login, password recovery
  - RegistryHandler: candidate and position management
  - VotingHandler: voting window, ballot submission, election reset
  - ResultsHandler: poll status, leaders, vote share

Handlers are created via constructor functions that accept *sql.DB and
Config:

	accounts := handlers.NewAccountsHandler(db, cfg)

# Sessions

Login handlers issue role-scoped JWTs. Administrative routes are
guarded with middleware.RequireRole(secret, auth.RoleAdmin, ...),
ballot submission with the voter role.

# Voting Flow

	POST /auth/voters/register -> RegisterVoter
	POST /auth/voters/login    -> LoginVoter (returns token)
	GET  /window               -> GetWindow (state + countdown)
	POST /ballots              -> SubmitBallot

SubmitBallot hands the whole selection map to the engine, which commits
it as one transaction and returns a receipt ID.

# Administration

	PUT    /admin/window           -> SetWindow
	POST   /admin/candidates       -> CreateCandidate
	PUT    /admin/candidates/{id}  -> UpdateCandidate
	DELETE /admin/candidates/{id}  -> DeleteCandidate
	POST   /admin/positions        -> CreatePosition
	DELETE /admin/positions/{name} -> DeletePosition
	POST   /admin/reset            -> ResetElection
	PUT    /admin/password         -> ChangePassword

# Results

	GET /results/status     -> Status
	GET /results/leaders    -> Leaders
	GET /results/vote-share -> VoteShare (?top=N)
*/
package handlers
