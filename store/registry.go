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

// AddCandidate creates a candidate with a zero vote count and returns
// its ID. The position must already be registered. Media refs are
// opaque path-like strings; the store never checks they resolve to
// real files.
func AddCandidate(q Querier, name, position, photoRef, logoRef string) (string, error) {
	known, err := positionExists(q, position)
	if err != nil {
		return "", err
	}
	if !known {
		return "", ErrUnknownPosition
	}

	candidateID, err := auth.GenerateID(12)
	if err != nil {
		return "", fmt.Errorf("failed to generate candidate ID: %w", err)
	}

	_, err = q.Exec(`
		INSERT INTO candidate (id, name, position, photo_ref, logo_ref, votes, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6)
	`, candidateID, name, position, photoRef, logoRef, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert candidate: %w", err)
	}

	return candidateID, nil
}

// UpdateCandidate replaces all mutable fields of a candidate. The vote
// count is untouched.
func UpdateCandidate(q Querier, id, name, position, photoRef, logoRef string) error {
	known, err := positionExists(q, position)
	if err != nil {
		return err
	}
	if !known {
		return ErrUnknownPosition
	}

	res, err := q.Exec(`
		UPDATE candidate
		SET name = $1, position = $2, photo_ref = $3, logo_ref = $4
		WHERE id = $5
	`, name, position, photoRef, logoRef, id)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCandidate removes the row. Votes already cast for the candidate
// are discarded with it.
func DeleteCandidate(q Querier, id string) error {
	res, err := q.Exec(`DELETE FROM candidate WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Candidates returns all candidates in registration order, optionally
// filtered to one position.
func Candidates(q Querier, position string) ([]models.Candidate, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if position != "" {
		rows, err = q.Query(`
			SELECT id, name, position, photo_ref, logo_ref, votes, created_at
			FROM candidate
			WHERE position = $1
			ORDER BY created_at ASC, id ASC
		`, position)
	} else {
		rows, err = q.Query(`
			SELECT id, name, position, photo_ref, logo_ref, votes, created_at
			FROM candidate
			ORDER BY created_at ASC, id ASC
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

// CandidateByID returns a single candidate or ErrNotFound.
func CandidateByID(q Querier, id string) (*models.Candidate, error) {
	var (
		c        models.Candidate
		photoRef sql.NullString
		logoRef  sql.NullString
	)
	err := q.QueryRow(`
		SELECT id, name, position, photo_ref, logo_ref, votes, created_at
		FROM candidate
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Position, &photoRef, &logoRef, &c.Votes, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate: %w", err)
	}
	c.PhotoRef = photoRef.String
	c.LogoRef = logoRef.String
	return &c, nil
}

// AddPosition registers a position name. Fails with ErrPositionExists
// on duplicates.
func AddPosition(q Querier, name string) error {
	_, err := q.Exec(`INSERT INTO position (name) VALUES ($1)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPositionExists
		}
		return fmt.Errorf("failed to insert position: %w", err)
	}
	return nil
}

// DeletePosition removes a position name. A position that still has
// registered candidates cannot be deleted; reassign or delete the
// candidates first.
func DeletePosition(q Querier, name string) error {
	var count int
	err := q.QueryRow(`SELECT COUNT(*) FROM candidate WHERE position = $1`, name).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count candidates for position: %w", err)
	}
	if count > 0 {
		return ErrPositionInUse
	}

	res, err := q.Exec(`DELETE FROM position WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Positions returns all distinct position names in lexicographic order.
func Positions(q Querier) ([]string, error) {
	rows, err := q.Query(`SELECT name FROM position ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	positions := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, name)
	}
	return positions, rows.Err()
}

// IncrementVote adds exactly one vote to the candidate's counter.
func IncrementVote(q Querier, candidateID string) error {
	res, err := q.Exec(`
		UPDATE candidate SET votes = votes + 1 WHERE id = $1
	`, candidateID)
	if err != nil {
		return fmt.Errorf("failed to increment vote: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetAllVotes zeroes every candidate's vote counter. The caller pairs
// this with ClearVotedFlags inside one transaction.
func ResetAllVotes(q Querier) error {
	if _, err := q.Exec(`UPDATE candidate SET votes = 0`); err != nil {
		return fmt.Errorf("failed to reset votes: %w", err)
	}
	return nil
}

func positionExists(q Querier, name string) (bool, error) {
	var exists bool
	err := q.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM position WHERE name = $1)
	`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check position: %w", err)
	}
	return exists, nil
}

func scanCandidate(rows *sql.Rows) (*models.Candidate, error) {
	var (
		c        models.Candidate
		photoRef sql.NullString
		logoRef  sql.NullString
	)
	if err := rows.Scan(&c.ID, &c.Name, &c.Position, &photoRef, &logoRef, &c.Votes, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan candidate: %w", err)
	}
	c.PhotoRef = photoRef.String
	c.LogoRef = logoRef.String
	return &c, nil
}
