// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the campusvote API server.

campusvote is an election administration and ballot-casting service:
administrators register candidates and positions, configure a voting
window, and voters cast at most one ballot covering their per-position
choices. The service tallies votes and reports standings.

# Starting the Server

The server requires environment variables or CLI flags for
configuration:

	JWT_SECRET=... MASTER_RESET_KEY=... go run main.go

Or with flags:

	go run main.go -p 8080 -d election.db -jwt-secret ... -reset-key ...

# Configuration

Required settings:

  - JWT_SECRET (-jwt-secret): secret for session token signing
  - MASTER_RESET_KEY (-reset-key): admin password recovery key

Optional settings:

  - PORT (-p): server port (default: 8080)
  - DATABASE_URL (-d): sqlite file path or postgres URL
    (default: election.db)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - ADMIN_USERNAME / ADMIN_PASSWORD: bootstrap administrator account

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, registry, voting, results)
  - router: route definitions using Go 1.22+ routing
  - middleware: sessions, CORS, logging, JSON helpers
  - models: request/response types
  - auth: password hashing and session tokens
  - store: identity, registry, and voting window persistence
  - engine: transactional ballot submission, reset, and tally views
  - db: schema creation and administrator bootstrap
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
