// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags, environment
variables, and an optional .env file.

# Precedence

CLI flags win over environment variables; a .env file fills the
environment without overriding values already set.

# Settings

	-p / PORT                  server port (default 8080)
	-d / DATABASE_URL          sqlite file path or postgres URL
	-t / DATABASE_TYPE         "sqlite" (default) or "postgres"
	-jwt-secret / JWT_SECRET   session token secret (required)
	-reset-key / MASTER_RESET_KEY
	                           admin password recovery key (required)
	-admin-user / ADMIN_USERNAME
	                           bootstrap admin username (default "admin")
	-admin-password / ADMIN_PASSWORD
	                           bootstrap admin password (default "admin123")

The JWT secret and master reset key have no defaults on purpose: both
are deployment-specific and must never be compiled-in literals.
*/
package cliparse
