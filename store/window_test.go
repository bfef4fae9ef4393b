// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"testing"
	"time"

	"campusvote/models"
	"campusvote/store"
	"campusvote/testutil"
)

func TestSetWindowInvalidRange(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
	}{
		{"end before start", start.Add(-time.Hour)},
		{"end equals start", start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.SetWindow(conn, start, tt.end); !errors.Is(err, store.ErrInvalidRange) {
				t.Errorf("Expected ErrInvalidRange, got %v", err)
			}
		})
	}
}

func TestSetWindowReplacesSingleton(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if _, err := store.GetWindow(conn); !errors.Is(err, store.ErrNoWindow) {
		t.Fatalf("Expected ErrNoWindow before configuration, got %v", err)
	}

	first := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	if err := store.SetWindow(conn, first, first.Add(8*time.Hour)); err != nil {
		t.Fatalf("SetWindow failed: %v", err)
	}

	second := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	if err := store.SetWindow(conn, second, second.Add(8*time.Hour)); err != nil {
		t.Fatalf("Second SetWindow failed: %v", err)
	}

	window, err := store.GetWindow(conn)
	if err != nil {
		t.Fatalf("GetWindow failed: %v", err)
	}
	if !window.Start.Equal(second) {
		t.Errorf("Expected the second window to replace the first, got start %v", window.Start)
	}

	// Only one row may ever exist
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM voting_window`).Scan(&count); err != nil {
		t.Fatalf("Failed to count window rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly one window row, got %d", count)
	}
}

func TestStateAtTransitions(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 17, 0, 0, 0, time.UTC)
	window := &models.Window{Start: start, End: end}

	tests := []struct {
		name string
		now  time.Time
		want store.WindowState
	}{
		{"before start", start.Add(-time.Minute), store.WindowNotYetOpen},
		{"at start", start, store.WindowOpen},
		{"mid window", start.Add(time.Hour), store.WindowOpen},
		{"at end", end, store.WindowOpen},
		{"after end", end.Add(time.Minute), store.WindowClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.StateAt(window, tt.now); got != tt.want {
				t.Errorf("StateAt(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}

	if got := store.StateAt(nil, start); got != store.WindowUnset {
		t.Errorf("StateAt(nil) = %v, want unset", got)
	}
}

// The state never moves backwards as the clock advances.
func TestStateMonotonic(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 17, 0, 0, 0, time.UTC)
	window := &models.Window{Start: start, End: end}

	rank := map[store.WindowState]int{
		store.WindowNotYetOpen: 0,
		store.WindowOpen:       1,
		store.WindowClosed:     2,
	}

	prev := -1
	for now := start.Add(-2 * time.Hour); now.Before(end.Add(2 * time.Hour)); now = now.Add(10 * time.Minute) {
		state := store.StateAt(window, now)
		if rank[state] < prev {
			t.Fatalf("State regressed to %v at %v", state, now)
		}
		prev = rank[state]
	}
}

func TestVotingStateUnset(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	state, window, err := store.VotingState(conn, time.Now())
	if err != nil {
		t.Fatalf("VotingState failed: %v", err)
	}
	if state != store.WindowUnset || window != nil {
		t.Errorf("Expected unset state without a window, got %v", state)
	}
}
