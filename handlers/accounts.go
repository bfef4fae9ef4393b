// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/subtle"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"campusvote/auth"
	"campusvote/cliparse"
	"campusvote/middleware"
	"campusvote/models"
	"campusvote/store"
)

type AccountsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAccountsHandler(db *sql.DB, cfg cliparse.Config) *AccountsHandler {
	return &AccountsHandler{db: db, cfg: cfg}
}

// RegisterVoter handles POST /auth/voters/register
func (h *AccountsHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Username == "" || req.RegNumber == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name, username and reg_number are required")
		return
	}
	if len(req.Password) < 6 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register voter")
		return
	}

	voterID, err := store.RegisterVoter(h.db, req.Name, req.Username, req.RegNumber, hash)
	if errors.Is(err, store.ErrDuplicateIdentity) {
		middleware.ErrorResponse(w, http.StatusConflict, "Username or registration number already registered")
		return
	}
	if err != nil {
		slog.Error("failed to register voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register voter")
		return
	}

	slog.Info("voter registered", "voter_id", voterID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		VoterID: voterID,
		Message: "Voter registered successfully",
	})
}

// LoginVoter handles POST /auth/voters/login
func (h *AccountsHandler) LoginVoter(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voter, err := store.VoterByUsername(h.db, req.Username)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		slog.Error("failed to query voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(voter.Password, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := auth.NewToken([]byte(h.cfg.JWTSecret), auth.Claims{
		Subject:   voter.ID,
		Role:      auth.RoleVoter,
		Username:  voter.Username,
		RegNumber: voter.RegNumber,
	})
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	slog.Info("voter logged in", "voter_id", voter.ID)

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{Token: token})
}

// LoginAdmin handles POST /auth/admin/login
func (h *AccountsHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	admin, err := store.AdminByUsername(h.db, req.Username)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		slog.Error("failed to query administrator", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(admin.Password, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := auth.NewToken([]byte(h.cfg.JWTSecret), auth.Claims{
		Subject:  admin.ID,
		Role:     auth.RoleAdmin,
		Username: admin.Username,
	})
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	slog.Info("administrator logged in", "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{Token: token})
}

// ForgotPassword handles POST /auth/password/forgot
//
// Voters prove identity with username + registration number.
// Administrators must supply the deployment's master reset key.
func (h *AccountsHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if len(req.NewPassword) < 6 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "new_password must be at least 6 characters")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	switch req.Role {
	case "voter":
		if req.RegNumber == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "reg_number is required")
			return
		}
		err = store.ResetVoterPassword(h.db, req.Username, req.RegNumber, hash)
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "No voter matches that username and registration number")
			return
		}

	case "admin":
		if subtle.ConstantTimeCompare([]byte(req.ResetKey), []byte(h.cfg.MasterResetKey)) != 1 {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "The reset key is incorrect")
			return
		}
		err = store.UpdateAdminPassword(h.db, req.Username, hash)
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "No administrator with that username")
			return
		}

	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "role must be voter or admin")
		return
	}

	if err != nil {
		slog.Error("failed to reset password", "error", err, "role", req.Role)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	slog.Info("password reset", "role", req.Role, "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Password reset successfully",
	})
}

// ChangePassword handles PUT /admin/password (admin session)
func (h *AccountsHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.SessionClaims(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Session required")
		return
	}

	var req models.ChangePasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.NewPassword) < 6 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "new_password must be at least 6 characters")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	if err := store.UpdateAdminPassword(h.db, claims.Username, hash); err != nil {
		slog.Error("failed to change administrator password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	slog.Info("administrator password changed", "username", claims.Username)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Password changed successfully",
	})
}
