// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers using Go 1.22+ method
routing patterns.

Routes fall into three access tiers:

  - public: registration, login, password recovery, candidate and
    position listings, window status, tally views
  - voter session: ballot submission
  - admin session: registry management, window configuration, election
    reset, password change

Session tiers are enforced by middleware.RequireRole with the JWT
secret from configuration; every route is wrapped with request logging.
*/
package router
