package models

import "time"

// Request types

type RegisterVoterRequest struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	RegNumber string `json:"reg_number"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ForgotPasswordRequest covers both recovery paths: voters prove
// identity with their registration number, administrators with the
// deployment's master reset key.
type ForgotPasswordRequest struct {
	Role        string `json:"role"` // "voter" or "admin"
	Username    string `json:"username"`
	RegNumber   string `json:"reg_number,omitempty"`
	ResetKey    string `json:"reset_key,omitempty"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

type CandidateRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	PhotoRef string `json:"photo_ref,omitempty"`
	LogoRef  string `json:"logo_ref,omitempty"`
}

type AddPositionRequest struct {
	Name string `json:"name"`
}

type SetWindowRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// position -> candidate_id
type SubmitBallotRequest struct {
	Selections map[string]string `json:"selections"`
}

// Response types

type RegisterVoterResponse struct {
	VoterID string `json:"voter_id"`
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AddCandidateResponse struct {
	CandidateID string `json:"candidate_id"`
}

type WindowStatusResponse struct {
	State     string     `json:"state"`
	Start     *time.Time `json:"start,omitempty"`
	End       *time.Time `json:"end,omitempty"`
	Countdown string     `json:"countdown,omitempty"`
}

type SubmitBallotResponse struct {
	ReceiptID string `json:"receipt_id"`
	Message   string `json:"message"`
}

type PollStatusRow struct {
	Position  string `json:"position"`
	Candidate string `json:"candidate"`
	Votes     int    `json:"votes"`
}

type PositionLeader struct {
	Position  string `json:"position"`
	Candidate string `json:"candidate"`
	Votes     int    `json:"votes"`
}

type VoteShareEntry struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Votes       int     `json:"votes"`
	Share       float64 `json:"share"` // fraction of total votes, 0..1
}

type VoteShareResponse struct {
	TotalVotes int              `json:"total_votes"`
	NoVotesYet bool             `json:"no_votes_yet"`
	Entries    []VoteShareEntry `json:"entries"`
}

// Domain types

type Voter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	RegNumber string    `json:"reg_number"`
	Password  string    `json:"-"` // bcrypt hash, never exposed
	HasVoted  bool      `json:"has_voted"`
	CreatedAt time.Time `json:"created_at"`
}

type Administrator struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never exposed
	CreatedAt time.Time `json:"created_at"`
}

type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	PhotoRef  string    `json:"photo_ref,omitempty"`
	LogoRef   string    `json:"logo_ref,omitempty"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// Window is the single configured voting interval. End is always
// strictly after Start.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
