// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine_test

import (
	"math"
	"testing"

	"campusvote/engine"
	"campusvote/store"
	"campusvote/testutil"
)

func TestPollStatusOrdering(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	grace := testutil.AddTestCandidate(t, conn, "Grace Akello", "President")
	okello := testutil.AddTestCandidate(t, conn, "David Okello", "President")
	mary := testutil.AddTestCandidate(t, conn, "Mary Nansubuga", "Treasurer")

	votes := map[string]int{grace: 1, okello: 3, mary: 2}
	for id, n := range votes {
		for i := 0; i < n; i++ {
			if err := store.IncrementVote(conn, id); err != nil {
				t.Fatalf("IncrementVote failed: %v", err)
			}
		}
	}

	status, err := engine.PollStatus(conn)
	if err != nil {
		t.Fatalf("PollStatus failed: %v", err)
	}
	if len(status) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(status))
	}

	// Positions ascending, then votes descending within a position
	wantOrder := []string{"David Okello", "Grace Akello", "Mary Nansubuga"}
	for i, want := range wantOrder {
		if status[i].Candidate != want {
			t.Errorf("Row %d: expected %s, got %s", i, want, status[i].Candidate)
		}
	}
	if status[0].Votes != 3 || status[1].Votes != 1 || status[2].Votes != 2 {
		t.Errorf("Unexpected vote counts: %+v", status)
	}
}

func TestLeadersByPosition(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestCandidate(t, conn, "Grace Akello", "President")
	okello := testutil.AddTestCandidate(t, conn, "David Okello", "President")
	testutil.AddTestCandidate(t, conn, "Mary Nansubuga", "Treasurer")

	for i := 0; i < 2; i++ {
		if err := store.IncrementVote(conn, okello); err != nil {
			t.Fatalf("IncrementVote failed: %v", err)
		}
	}

	leaders, err := engine.LeadersByPosition(conn)
	if err != nil {
		t.Fatalf("LeadersByPosition failed: %v", err)
	}
	if len(leaders) != 2 {
		t.Fatalf("Expected 2 leaders, got %d", len(leaders))
	}
	if leaders[0].Position != "President" || leaders[0].Candidate != "David Okello" {
		t.Errorf("Expected David Okello leading President, got %+v", leaders[0])
	}
	// A zero-vote position still reports its (tied) leader
	if leaders[1].Position != "Treasurer" || leaders[1].Votes != 0 {
		t.Errorf("Expected zero-vote Treasurer leader, got %+v", leaders[1])
	}
}

// A tie goes to the first-registered candidate, not the alphabetically
// first name.
func TestLeadersTieBreak(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestCandidate(t, conn, "Zadock Wamala", "President")
	testutil.AddTestCandidate(t, conn, "Alice Atim", "President")

	leaders, err := engine.LeadersByPosition(conn)
	if err != nil {
		t.Fatalf("LeadersByPosition failed: %v", err)
	}
	if len(leaders) != 1 {
		t.Fatalf("Expected 1 leader, got %d", len(leaders))
	}
	if leaders[0].Candidate != "Zadock Wamala" {
		t.Errorf("Expected the first-registered candidate to win the tie, got %s", leaders[0].Candidate)
	}
}

func TestVoteShareNoVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestCandidate(t, conn, "Grace Akello", "President")

	report, err := engine.VoteShare(conn, 0)
	if err != nil {
		t.Fatalf("VoteShare failed: %v", err)
	}
	if !report.NoVotesYet {
		t.Error("Expected the explicit no-votes state")
	}
	if report.TotalVotes != 0 || len(report.Entries) != 0 {
		t.Errorf("Expected an empty report, got %+v", report)
	}
}

func TestVoteShare(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	grace := testutil.AddTestCandidate(t, conn, "Grace Akello", "President")
	okello := testutil.AddTestCandidate(t, conn, "David Okello", "President")

	votes := []string{grace, grace, grace, okello}
	for _, id := range votes {
		if err := store.IncrementVote(conn, id); err != nil {
			t.Fatalf("IncrementVote failed: %v", err)
		}
	}

	report, err := engine.VoteShare(conn, 0)
	if err != nil {
		t.Fatalf("VoteShare failed: %v", err)
	}
	if report.NoVotesYet {
		t.Error("Expected votes to be reported")
	}
	if report.TotalVotes != 4 {
		t.Errorf("Expected 4 total votes, got %d", report.TotalVotes)
	}
	if len(report.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(report.Entries))
	}
	if report.Entries[0].Name != "Grace Akello" {
		t.Errorf("Expected Grace Akello first, got %s", report.Entries[0].Name)
	}
	if math.Abs(report.Entries[0].Share-0.75) > 1e-9 {
		t.Errorf("Expected share 0.75, got %f", report.Entries[0].Share)
	}
	if math.Abs(report.Entries[1].Share-0.25) > 1e-9 {
		t.Errorf("Expected share 0.25, got %f", report.Entries[1].Share)
	}
}

func TestVoteShareTopN(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	first := testutil.AddTestCandidate(t, conn, "Grace Akello", "President")
	testutil.AddTestCandidate(t, conn, "David Okello", "President")
	testutil.AddTestCandidate(t, conn, "Mary Nansubuga", "Treasurer")

	if err := store.IncrementVote(conn, first); err != nil {
		t.Fatalf("IncrementVote failed: %v", err)
	}

	report, err := engine.VoteShare(conn, 2)
	if err != nil {
		t.Fatalf("VoteShare failed: %v", err)
	}
	if len(report.Entries) != 2 {
		t.Errorf("Expected the report truncated to 2 entries, got %d", len(report.Entries))
	}
	// Total counts every vote, not just those of the listed entries
	if report.TotalVotes != 1 {
		t.Errorf("Expected total of 1, got %d", report.TotalVotes)
	}
}
