// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"campusvote/cliparse"
	"campusvote/middleware"
	"campusvote/models"
	"campusvote/store"
)

type RegistryHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRegistryHandler(db *sql.DB, cfg cliparse.Config) *RegistryHandler {
	return &RegistryHandler{db: db, cfg: cfg}
}

// CreateCandidate handles POST /admin/candidates
func (h *RegistryHandler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.CandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name and position are required")
		return
	}

	candidateID, err := store.AddCandidate(h.db, req.Name, req.Position, req.PhotoRef, req.LogoRef)
	if errors.Is(err, store.ErrUnknownPosition) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Position is not registered")
		return
	}
	if err != nil {
		slog.Error("failed to add candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add candidate")
		return
	}

	slog.Info("candidate added", "candidate_id", candidateID, "position", req.Position)

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{
		CandidateID: candidateID,
	})
}

// UpdateCandidate handles PUT /admin/candidates/{id}
// Full replace of the mutable fields; the vote count is untouched.
func (h *RegistryHandler) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID := r.PathValue("id")
	if candidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	var req models.CandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name and position are required")
		return
	}

	err := store.UpdateCandidate(h.db, candidateID, req.Name, req.Position, req.PhotoRef, req.LogoRef)
	if errors.Is(err, store.ErrUnknownPosition) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Position is not registered")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		slog.Error("failed to update candidate", "error", err, "candidate_id", candidateID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update candidate")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Candidate updated successfully",
	})
}

// DeleteCandidate handles DELETE /admin/candidates/{id}
// Votes already cast for the candidate are discarded with the row.
func (h *RegistryHandler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID := r.PathValue("id")
	if candidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	err := store.DeleteCandidate(h.db, candidateID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete candidate", "error", err, "candidate_id", candidateID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete candidate")
		return
	}

	slog.Info("candidate deleted", "candidate_id", candidateID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Candidate deleted successfully",
	})
}

// ListCandidates handles GET /candidates with an optional ?position=
// filter
func (h *RegistryHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	position := r.URL.Query().Get("position")

	candidates, err := store.Candidates(h.db, position)
	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// GetCandidate handles GET /candidates/{id}
func (h *RegistryHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID := r.PathValue("id")
	if candidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	candidate, err := store.CandidateByID(h.db, candidateID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		slog.Error("failed to query candidate", "error", err, "candidate_id", candidateID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// CreatePosition handles POST /admin/positions
func (h *RegistryHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req models.AddPositionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	err := store.AddPosition(h.db, req.Name)
	if errors.Is(err, store.ErrPositionExists) {
		middleware.ErrorResponse(w, http.StatusConflict, "Position already exists")
		return
	}
	if err != nil {
		slog.Error("failed to add position", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add position")
		return
	}

	slog.Info("position added", "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Position added successfully",
	})
}

// DeletePosition handles DELETE /admin/positions/{name}
func (h *RegistryHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position name is required")
		return
	}

	err := store.DeletePosition(h.db, name)
	if errors.Is(err, store.ErrPositionInUse) {
		middleware.ErrorResponse(w, http.StatusConflict, "Position still has registered candidates")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Position not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete position", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete position")
		return
	}

	slog.Info("position deleted", "name", name)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Position deleted successfully",
	})
}

// ListPositions handles GET /positions
func (h *RegistryHandler) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := store.Positions(h.db)
	if err != nil {
		slog.Error("failed to query positions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, positions)
}
