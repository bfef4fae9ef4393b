// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine orchestrates ballot submission, election reset, and the
tally views.

# Ballot Submission

SubmitBallot is the only write path for votes. It runs entirely inside
one database transaction:

	receipt, err := engine.SubmitBallot(db, time.Now(), regNumber, selections)

selections maps position name to candidate ID, at most one choice per
position. Precondition order is fixed: window open, voter has not voted,
selections non-empty, each candidate exists under the selected position.
Failures surface as ErrAlreadyVoted, ErrNoSelection, *ClosedError
(carrying the window state), or *InvalidCandidateError.

A voter moves NotVoted -> Voted exactly once per election cycle;
ResetElection returns everyone to NotVoted and zeroes all counters, also
transactionally.

# Tally Views

Read-only derivations over the candidate table:

  - PollStatus: (position, candidate, votes) in reporting order
  - LeadersByPosition: first status row per position
  - VoteShare: top-N candidates with fraction of total votes
*/
package engine
