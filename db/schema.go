// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    username TEXT NOT NULL UNIQUE,
    reg_number TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    has_voted BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_voter_username ON voter(username);
CREATE INDEX IF NOT EXISTS idx_voter_reg_number ON voter(reg_number);

-- Administrators
CREATE TABLE IF NOT EXISTS administrator (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    position TEXT NOT NULL,
    photo_ref TEXT,
    logo_ref TEXT,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_candidate_position ON candidate(position);

-- Positions
CREATE TABLE IF NOT EXISTS position (
    name TEXT PRIMARY KEY
);

-- Voting window: a single-row table. The CHECK keeps it a singleton;
-- SetWindow replaces the row wholesale.
CREATE TABLE IF NOT EXISTS voting_window (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    start_at TIMESTAMP NOT NULL,
    end_at TIMESTAMP NOT NULL
);
`
