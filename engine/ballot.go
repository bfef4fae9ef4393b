// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"campusvote/store"
)

var (
	ErrAlreadyVoted = errors.New("voter has already cast a ballot")
	ErrNoSelection  = errors.New("ballot has no selections")
)

// ClosedError reports why voting is not currently permitted.
type ClosedError struct {
	State store.WindowState
}

func (e *ClosedError) Error() string {
	switch e.State {
	case store.WindowNotYetOpen:
		return "voting has not started yet"
	case store.WindowClosed:
		return "voting period is over"
	default:
		return "voting period not set"
	}
}

// InvalidCandidateError reports a selection whose candidate does not
// exist or is registered under a different position than the one it
// was chosen for.
type InvalidCandidateError struct {
	Position    string
	CandidateID string
}

func (e *InvalidCandidateError) Error() string {
	return fmt.Sprintf("invalid candidate %s for position %q", e.CandidateID, e.Position)
}

// SubmitBallot validates and commits a voter's full set of per-position
// choices as one transaction, returning a receipt ID on success.
//
// Preconditions are checked in a fixed order, first failure wins:
// voting window, has-voted flag, non-empty selections, candidate
// validity. On success every chosen candidate gains exactly one vote
// and the voter's has-voted flag flips; on any failure the transaction
// rolls back and nothing is recorded.
//
// The caller supplies now, which keeps window gating testable with an
// injected clock.
func SubmitBallot(dbc *sql.DB, now time.Time, regNumber string, selections map[string]string) (string, error) {
	tx, err := dbc.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	state, _, err := store.VotingState(tx, now)
	if err != nil {
		return "", err
	}
	if state != store.WindowOpen {
		return "", &ClosedError{State: state}
	}

	voted, err := store.HasVoted(tx, regNumber)
	if err != nil {
		return "", err
	}
	if voted {
		return "", ErrAlreadyVoted
	}

	if len(selections) == 0 {
		return "", ErrNoSelection
	}

	// Stable apply order keeps failures deterministic.
	positions := make([]string, 0, len(selections))
	for position := range selections {
		positions = append(positions, position)
	}
	sort.Strings(positions)

	for _, position := range positions {
		candidateID := selections[position]

		candidate, err := store.CandidateByID(tx, candidateID)
		if errors.Is(err, store.ErrNotFound) {
			return "", &InvalidCandidateError{Position: position, CandidateID: candidateID}
		}
		if err != nil {
			return "", err
		}
		if candidate.Position != position {
			return "", &InvalidCandidateError{Position: position, CandidateID: candidateID}
		}

		if err := store.IncrementVote(tx, candidateID); err != nil {
			return "", err
		}
	}

	if err := store.MarkVoted(tx, regNumber); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit ballot: %w", err)
	}

	return uuid.NewString(), nil
}

// ResetElection zeroes every candidate's vote counter and clears every
// voter's has-voted flag in one transaction.
func ResetElection(dbc *sql.DB) error {
	tx, err := dbc.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := store.ResetAllVotes(tx); err != nil {
		return err
	}
	if err := store.ClearVotedFlags(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}
