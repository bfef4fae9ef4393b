// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"strings"
)

// Querier is satisfied by both *sql.DB and *sql.Tx, so the same store
// functions serve plain reads and transactional writes.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("username or registration number already registered")
	ErrPositionExists    = errors.New("position already exists")
	ErrUnknownPosition   = errors.New("position is not registered")
	ErrPositionInUse     = errors.New("position has registered candidates")
	ErrInvalidRange      = errors.New("window end must be after start")
	ErrNoWindow          = errors.New("voting window not configured")
)

// isUniqueViolation matches the driver-specific phrasing of a UNIQUE
// constraint failure for both sqlite and postgres.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
