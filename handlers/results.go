// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"campusvote/cliparse"
	"campusvote/engine"
	"campusvote/middleware"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// Status handles GET /results/status
// Rows come back ordered by position, then votes descending; the first
// row per position is that position's leader.
func (h *ResultsHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := engine.PollStatus(h.db)
	if err != nil {
		slog.Error("failed to query poll status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// Leaders handles GET /results/leaders
func (h *ResultsHandler) Leaders(w http.ResponseWriter, r *http.Request) {
	leaders, err := engine.LeadersByPosition(h.db)
	if err != nil {
		slog.Error("failed to query leaders", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, leaders)
}

// VoteShare handles GET /results/vote-share?top=N
func (h *ResultsHandler) VoteShare(w http.ResponseWriter, r *http.Request) {
	topN := 0
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		n, err := strconv.Atoi(topStr)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "top must be a positive integer")
			return
		}
		topN = n
	}

	report, err := engine.VoteShare(h.db, topN)
	if err != nil {
		slog.Error("failed to compute vote share", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}
