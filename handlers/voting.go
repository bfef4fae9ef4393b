// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"campusvote/cliparse"
	"campusvote/engine"
	"campusvote/middleware"
	"campusvote/models"
	"campusvote/store"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time // injectable clock for window gating
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg, now: time.Now}
}

// SetWindow handles PUT /admin/window
// Replaces the single voting window wholesale.
func (h *VotingHandler) SetWindow(w http.ResponseWriter, r *http.Request) {
	var req models.SetWindowRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Start.IsZero() || req.End.IsZero() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "start and end are required")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	err = store.SetWindow(tx, req.Start, req.End)
	if errors.Is(err, store.ErrInvalidRange) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "end must be after start")
		return
	}
	if err != nil {
		slog.Error("failed to set voting window", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set voting window")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit voting window", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set voting window")
		return
	}

	slog.Info("voting window set", "start", req.Start, "end", req.End)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Voting window set successfully",
	})
}

// GetWindow handles GET /window
// A pure read, so clients can poll it for countdown displays.
func (h *VotingHandler) GetWindow(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	state, window, err := store.VotingState(h.db, now)
	if err != nil {
		slog.Error("failed to query voting window", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.WindowStatusResponse{State: string(state)}
	if window != nil {
		resp.Start = &window.Start
		resp.End = &window.End
	}
	switch state {
	case store.WindowOpen:
		resp.Countdown = "closes " + humanize.RelTime(window.End, now, "ago", "from now")
	case store.WindowNotYetOpen:
		resp.Countdown = "opens " + humanize.RelTime(window.Start, now, "ago", "from now")
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// SubmitBallot handles POST /ballots (voter session)
func (h *VotingHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.SessionClaims(r)
	if !ok || claims.RegNumber == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Voter session required")
		return
	}

	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	receiptID, err := engine.SubmitBallot(h.db, h.now(), claims.RegNumber, req.Selections)
	if err != nil {
		var closed *engine.ClosedError
		var invalid *engine.InvalidCandidateError
		switch {
		case errors.As(err, &closed):
			middleware.ErrorResponse(w, http.StatusConflict, closed.Error())
		case errors.Is(err, engine.ErrAlreadyVoted):
			middleware.ErrorResponse(w, http.StatusConflict, "Voter has already cast a ballot")
		case errors.Is(err, engine.ErrNoSelection):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Please select at least one candidate")
		case errors.As(err, &invalid):
			middleware.ErrorResponse(w, http.StatusBadRequest, invalid.Error())
		default:
			slog.Error("failed to submit ballot", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit ballot")
		}
		return
	}

	slog.Info("ballot submitted", "receipt_id", receiptID, "selections", len(req.Selections))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitBallotResponse{
		ReceiptID: receiptID,
		Message:   "Ballot submitted successfully",
	})
}

// ResetElection handles POST /admin/reset
// Zeroes all vote counts and clears all has-voted flags.
func (h *VotingHandler) ResetElection(w http.ResponseWriter, r *http.Request) {
	if err := engine.ResetElection(h.db); err != nil {
		slog.Error("failed to reset election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset election")
		return
	}

	slog.Info("election reset")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "All votes and voter flags reset",
	})
}
