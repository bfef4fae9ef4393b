// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"

	"campusvote/models"
	"campusvote/store"
)

// DefaultTopN bounds the vote share report when the caller does not
// ask for a specific count.
const DefaultTopN = 8

// PollStatus returns (position, candidate, votes) rows ordered by
// position ascending, then votes descending, ties broken by
// registration order. The first row seen for a position is that
// position's leader.
func PollStatus(q store.Querier) ([]models.PollStatusRow, error) {
	rows, err := q.Query(`
		SELECT position, name, votes
		FROM candidate
		ORDER BY position ASC, votes DESC, created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query poll status: %w", err)
	}
	defer rows.Close()

	status := []models.PollStatusRow{}
	for rows.Next() {
		var row models.PollStatusRow
		if err := rows.Scan(&row.Position, &row.Candidate, &row.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan poll status row: %w", err)
		}
		status = append(status, row)
	}
	return status, rows.Err()
}

// LeadersByPosition returns the highest-vote candidate per position,
// positions in lexicographic order. Ties go to the first-registered
// candidate, never by name.
func LeadersByPosition(q store.Querier) ([]models.PositionLeader, error) {
	status, err := PollStatus(q)
	if err != nil {
		return nil, err
	}

	leaders := []models.PositionLeader{}
	seen := map[string]bool{}
	for _, row := range status {
		if seen[row.Position] {
			continue
		}
		seen[row.Position] = true
		leaders = append(leaders, models.PositionLeader{
			Position:  row.Position,
			Candidate: row.Candidate,
			Votes:     row.Votes,
		})
	}
	return leaders, nil
}

// VoteShare returns the top-N candidates overall by vote count, each
// with its fraction of the total. With no votes cast yet it reports an
// explicit no-votes state instead of dividing by zero.
func VoteShare(q store.Querier, topN int) (*models.VoteShareResponse, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	var total int
	err := q.QueryRow(`SELECT COALESCE(SUM(votes), 0) FROM candidate`).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("failed to sum votes: %w", err)
	}

	report := &models.VoteShareResponse{
		TotalVotes: total,
		Entries:    []models.VoteShareEntry{},
	}
	if total == 0 {
		report.NoVotesYet = true
		return report, nil
	}

	rows, err := q.Query(`
		SELECT id, name, position, votes
		FROM candidate
		ORDER BY votes DESC, created_at ASC, id ASC
		LIMIT $1
	`, topN)
	if err != nil {
		return nil, fmt.Errorf("failed to query vote share: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.VoteShareEntry
		if err := rows.Scan(&entry.CandidateID, &entry.Name, &entry.Position, &entry.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan vote share row: %w", err)
		}
		entry.Share = float64(entry.Votes) / float64(total)
		report.Entries = append(report.Entries, entry)
	}
	return report, rows.Err()
}
