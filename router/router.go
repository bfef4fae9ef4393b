// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"campusvote/auth"
	"campusvote/cliparse"
	"campusvote/handlers"
	"campusvote/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accounts := handlers.NewAccountsHandler(db, cfg)
	registry := handlers.NewRegistryHandler(db, cfg)
	voting := handlers.NewVotingHandler(db, cfg)
	results := handlers.NewResultsHandler(db, cfg)

	secret := []byte(cfg.JWTSecret)
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireRole(secret, auth.RoleAdmin, h))
	}
	voter := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireRole(secret, auth.RoleVoter, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /auth/voters/register", middleware.WithLogging(accounts.RegisterVoter))
	mux.HandleFunc("POST /auth/voters/login", middleware.WithLogging(accounts.LoginVoter))
	mux.HandleFunc("POST /auth/admin/login", middleware.WithLogging(accounts.LoginAdmin))
	mux.HandleFunc("POST /auth/password/forgot", middleware.WithLogging(accounts.ForgotPassword))
	mux.HandleFunc("PUT /admin/password", admin(accounts.ChangePassword))

	// Candidate and position registry
	mux.HandleFunc("GET /candidates", middleware.WithLogging(registry.ListCandidates))
	mux.HandleFunc("GET /candidates/{id}", middleware.WithLogging(registry.GetCandidate))
	mux.HandleFunc("POST /admin/candidates", admin(registry.CreateCandidate))
	mux.HandleFunc("PUT /admin/candidates/{id}", admin(registry.UpdateCandidate))
	mux.HandleFunc("DELETE /admin/candidates/{id}", admin(registry.DeleteCandidate))
	mux.HandleFunc("GET /positions", middleware.WithLogging(registry.ListPositions))
	mux.HandleFunc("POST /admin/positions", admin(registry.CreatePosition))
	mux.HandleFunc("DELETE /admin/positions/{name}", admin(registry.DeletePosition))

	// Voting window and ballots
	mux.HandleFunc("GET /window", middleware.WithLogging(voting.GetWindow))
	mux.HandleFunc("PUT /admin/window", admin(voting.SetWindow))
	mux.HandleFunc("POST /ballots", voter(voting.SubmitBallot))
	mux.HandleFunc("POST /admin/reset", admin(voting.ResetElection))

	// Tally views (public)
	mux.HandleFunc("GET /results/status", middleware.WithLogging(results.Status))
	mux.HandleFunc("GET /results/leaders", middleware.WithLogging(results.Leaders))
	mux.HandleFunc("GET /results/vote-share", middleware.WithLogging(results.VoteShare))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("campusvote API v1"))
	})

	return mux
}
