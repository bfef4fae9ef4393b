// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campusvote/models"
	"campusvote/store"
	"campusvote/testutil"
)

func TestCreateCandidateHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestPosition(t, conn, "President")
	h := NewRegistryHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/admin/candidates", models.CandidateRequest{
		Name:     "Grace Akello",
		Position: "President",
	}, nil)
	w := httptest.NewRecorder()
	h.CreateCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.AddCandidateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.CandidateID == "" {
		t.Error("Expected a candidate ID in the response")
	}
}

func TestCreateCandidateHandlerUnknownPosition(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewRegistryHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/admin/candidates", models.CandidateRequest{
		Name:     "Grace Akello",
		Position: "President",
	}, nil)
	w := httptest.NewRecorder()
	h.CreateCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestUpdateCandidateHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	candidateID := testutil.AddTestCandidate(t, conn, "Grace Akello", "President")
	h := NewRegistryHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("PUT", "/admin/candidates/"+candidateID, models.CandidateRequest{
		Name:     "Grace A. Akello",
		Position: "President",
	}, nil)
	req.SetPathValue("id", candidateID)
	w := httptest.NewRecorder()
	h.UpdateCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	candidate, err := store.CandidateByID(conn, candidateID)
	if err != nil {
		t.Fatalf("CandidateByID failed: %v", err)
	}
	if candidate.Name != "Grace A. Akello" {
		t.Errorf("Expected the name updated, got %s", candidate.Name)
	}
}

func TestUpdateCandidateHandlerNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestPosition(t, conn, "President")
	h := NewRegistryHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("PUT", "/admin/candidates/missing-id", models.CandidateRequest{
		Name:     "Nobody",
		Position: "President",
	}, nil)
	req.SetPathValue("id", "missing-id")
	w := httptest.NewRecorder()
	h.UpdateCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeleteCandidateHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	candidateID := testutil.AddTestCandidate(t, conn, "Grace Akello", "President")
	h := NewRegistryHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("DELETE", "/admin/candidates/"+candidateID, nil, nil)
	req.SetPathValue("id", candidateID)
	w := httptest.NewRecorder()
	h.DeleteCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("DELETE", "/admin/candidates/"+candidateID, nil, nil)
	req.SetPathValue("id", candidateID)
	w = httptest.NewRecorder()
	h.DeleteCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListCandidatesHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestCandidate(t, conn, "Grace Akello", "President")
	testutil.AddTestCandidate(t, conn, "Mary Nansubuga", "Treasurer")
	h := NewRegistryHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/candidates?position=Treasurer", nil, nil)
	w := httptest.NewRecorder()
	h.ListCandidates(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var candidates []models.Candidate
	testutil.AssertJSON(t, w, &candidates)
	if len(candidates) != 1 || candidates[0].Name != "Mary Nansubuga" {
		t.Errorf("Expected only the treasurer candidate, got %+v", candidates)
	}
}

func TestGetCandidateHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	candidateID := testutil.AddTestCandidate(t, conn, "Grace Akello", "President")
	h := NewRegistryHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/candidates/"+candidateID, nil, nil)
	req.SetPathValue("id", candidateID)
	w := httptest.NewRecorder()
	h.GetCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var candidate models.Candidate
	testutil.AssertJSON(t, w, &candidate)
	if candidate.ID != candidateID {
		t.Errorf("Expected candidate %s, got %s", candidateID, candidate.ID)
	}
}

func TestPositionHandlers(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewRegistryHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/admin/positions", models.AddPositionRequest{Name: "President"}, nil)
	w := httptest.NewRecorder()
	h.CreatePosition(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Duplicate
	req = testutil.MakeRequest("POST", "/admin/positions", models.AddPositionRequest{Name: "President"}, nil)
	w = httptest.NewRecorder()
	h.CreatePosition(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	req = testutil.MakeRequest("GET", "/positions", nil, nil)
	w = httptest.NewRecorder()
	h.ListPositions(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var positions []string
	testutil.AssertJSON(t, w, &positions)
	if len(positions) != 1 || positions[0] != "President" {
		t.Errorf("Expected [President], got %v", positions)
	}
}

func TestDeletePositionHandlerInUse(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	candidateID := testutil.AddTestCandidate(t, conn, "Grace Akello", "President")
	h := NewRegistryHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("DELETE", "/admin/positions/President", nil, nil)
	req.SetPathValue("name", "President")
	w := httptest.NewRecorder()
	h.DeletePosition(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	if err := store.DeleteCandidate(conn, candidateID); err != nil {
		t.Fatalf("DeleteCandidate failed: %v", err)
	}

	req = testutil.MakeRequest("DELETE", "/admin/positions/President", nil, nil)
	req.SetPathValue("name", "President")
	w = httptest.NewRecorder()
	h.DeletePosition(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}
