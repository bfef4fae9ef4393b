// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"campusvote/auth"
)

// Bootstrap guarantees at least one administrator account exists. When
// the administrator table is empty it creates one with the configured
// username and password hash. The bootstrap credentials are meant to be
// changed right after the first login.
func Bootstrap(db *sql.DB, username, passwordHash string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM administrator`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count administrators: %w", err)
	}
	if count > 0 {
		return nil
	}

	adminID, err := auth.GenerateID(16)
	if err != nil {
		return fmt.Errorf("failed to generate administrator ID: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO administrator (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, adminID, username, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert bootstrap administrator: %w", err)
	}

	slog.Info("bootstrap administrator created", "username", username)
	return nil
}
