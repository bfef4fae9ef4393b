// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterVoterRequest: name, username, reg_number, password
  - LoginRequest: username, password
  - ForgotPasswordRequest: role, username, reg_number or reset_key, new_password
  - CandidateRequest: name, position, photo_ref, logo_ref
  - SetWindowRequest: start, end
  - SubmitBallotRequest: selections (map of position -> candidate_id)

# Response Types

Types for JSON responses:

  - RegisterVoterResponse: voter_id, message
  - TokenResponse: token
  - AddCandidateResponse: candidate_id
  - WindowStatusResponse: state, start, end, countdown
  - SubmitBallotResponse: receipt_id, message
  - VoteShareResponse: total_votes, no_votes_yet, entries
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Voter: registered voter with has_voted flag
  - Administrator: admin account
  - Candidate: candidate with position, media refs, and vote count
  - Window: the single configured voting interval
*/
package models
