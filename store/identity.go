// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"campusvote/auth"
	"campusvote/models"
)

// RegisterVoter creates a voter row and returns its ID. passwordHash
// must already be a bcrypt hash. Fails with ErrDuplicateIdentity when
// the username or registration number is taken.
func RegisterVoter(q Querier, name, username, regNumber, passwordHash string) (string, error) {
	voterID, err := auth.GenerateID(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate voter ID: %w", err)
	}

	_, err = q.Exec(`
		INSERT INTO voter (id, name, username, reg_number, password_hash, has_voted, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
	`, voterID, name, username, regNumber, passwordHash, time.Now().UTC())

	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicateIdentity
		}
		return "", fmt.Errorf("failed to insert voter: %w", err)
	}

	return voterID, nil
}

// VoterByUsername returns the voter with the given username, or
// ErrNotFound.
func VoterByUsername(q Querier, username string) (*models.Voter, error) {
	var v models.Voter
	err := q.QueryRow(`
		SELECT id, name, username, reg_number, password_hash, has_voted, created_at
		FROM voter
		WHERE username = $1
	`, username).Scan(&v.ID, &v.Name, &v.Username, &v.RegNumber, &v.Password, &v.HasVoted, &v.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query voter: %w", err)
	}
	return &v, nil
}

// HasVoted reports whether the voter with the given registration number
// has already cast a ballot. An unknown registration number reads as
// false rather than an error.
func HasVoted(q Querier, regNumber string) (bool, error) {
	var voted bool
	err := q.QueryRow(`
		SELECT has_voted FROM voter WHERE reg_number = $1
	`, regNumber).Scan(&voted)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query voted flag: %w", err)
	}
	return voted, nil
}

// MarkVoted sets the has_voted flag. Idempotent: marking an already
// marked voter is not an error.
func MarkVoted(q Querier, regNumber string) error {
	res, err := q.Exec(`
		UPDATE voter SET has_voted = TRUE WHERE reg_number = $1
	`, regNumber)
	if err != nil {
		return fmt.Errorf("failed to mark voter: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearVotedFlags returns every voter to the not-voted state. Paired
// with Registry.ResetAllVotes by the reset orchestration.
func ClearVotedFlags(q Querier) error {
	if _, err := q.Exec(`UPDATE voter SET has_voted = FALSE`); err != nil {
		return fmt.Errorf("failed to clear voted flags: %w", err)
	}
	return nil
}

// ResetVoterPassword replaces a voter's password hash. The (username,
// registration number) pair must match an existing voter.
func ResetVoterPassword(q Querier, username, regNumber, newHash string) error {
	res, err := q.Exec(`
		UPDATE voter SET password_hash = $1 WHERE username = $2 AND reg_number = $3
	`, newHash, username, regNumber)
	if err != nil {
		return fmt.Errorf("failed to reset voter password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// AdminByUsername returns the administrator with the given username, or
// ErrNotFound.
func AdminByUsername(q Querier, username string) (*models.Administrator, error) {
	var a models.Administrator
	err := q.QueryRow(`
		SELECT id, username, password_hash, created_at
		FROM administrator
		WHERE username = $1
	`, username).Scan(&a.ID, &a.Username, &a.Password, &a.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query administrator: %w", err)
	}
	return &a, nil
}

// UpdateAdminPassword replaces an administrator's password hash.
func UpdateAdminPassword(q Querier, username, newHash string) error {
	res, err := q.Exec(`
		UPDATE administrator SET password_hash = $1 WHERE username = $2
	`, newHash, username)
	if err != nil {
		return fmt.Errorf("failed to update administrator password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
