// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campusvote/models"
)

// WindowState classifies an instant against the configured window.
type WindowState string

const (
	WindowOpen       WindowState = "open"
	WindowNotYetOpen WindowState = "not_yet_open"
	WindowClosed     WindowState = "closed"
	WindowUnset      WindowState = "unset"
)

// SetWindow replaces the single voting window wholesale. Setting a new
// window discards the previous one; no history is kept.
func SetWindow(q Querier, start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidRange
	}

	if _, err := q.Exec(`DELETE FROM voting_window`); err != nil {
		return fmt.Errorf("failed to clear voting window: %w", err)
	}
	_, err := q.Exec(`
		INSERT INTO voting_window (id, start_at, end_at) VALUES (1, $1, $2)
	`, start.UTC(), end.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert voting window: %w", err)
	}
	return nil
}

// GetWindow returns the configured window or ErrNoWindow.
func GetWindow(q Querier) (*models.Window, error) {
	var w models.Window
	err := q.QueryRow(`
		SELECT start_at, end_at FROM voting_window WHERE id = 1
	`).Scan(&w.Start, &w.End)

	if err == sql.ErrNoRows {
		return nil, ErrNoWindow
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query voting window: %w", err)
	}
	return &w, nil
}

// StateAt classifies the supplied instant against a window. Pure: the
// caller injects both the window and the clock, so it can be polled for
// countdown display without side effects. Both window bounds are
// inclusive.
func StateAt(w *models.Window, now time.Time) WindowState {
	switch {
	case w == nil:
		return WindowUnset
	case now.Before(w.Start):
		return WindowNotYetOpen
	case now.After(w.End):
		return WindowClosed
	default:
		return WindowOpen
	}
}

// VotingState loads the configured window and classifies now against
// it. A missing window reads as WindowUnset, not as an error.
func VotingState(q Querier, now time.Time) (WindowState, *models.Window, error) {
	w, err := GetWindow(q)
	if errors.Is(err, ErrNoWindow) {
		return WindowUnset, nil, nil
	}
	if err != nil {
		return WindowUnset, nil, err
	}
	return StateAt(w, now), w, nil
}
