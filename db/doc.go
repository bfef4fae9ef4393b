// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema and seeds the bootstrap
administrator.

# Schema

Five tables back the election:

  - voter: identity plus the has_voted flag
  - administrator: admin credentials
  - candidate: name, position, media refs, vote counter
  - position: the distinct set of position names
  - voting_window: single-row table holding the active (start, end) pair

Unique constraints:

  - voter.username, voter.reg_number
  - administrator.username
  - position.name
  - voting_window.id is checked to 1 so only one window row can exist

# Usage

	if err := db.CreateSchema(conn); err != nil { ... }
	if err := db.Bootstrap(conn, cfg.AdminUsername, hash); err != nil { ... }

CreateSchema is idempotent (IF NOT EXISTS). Bootstrap inserts the
default administrator only when the administrator table is empty.
*/
package db
