package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fincalc/domain"
	"fincalc/repository"
	"fincalc/service"
)

func newGrowthHandler() *GrowthHandler {
	history := repository.NewGrowthHistoryMemory()
	svc := service.NewGrowthService(history, repository.NewMemoryCache())
	return NewGrowthHandler(svc)
}

func TestCalculateGrowthHandler_OK(t *testing.T) {

	handler := newGrowthHandler()

	body := []byte(`{
		"Principal": 1000,
		"AnnualRate": 0.05,
		"Years": 10,
		"Compounding": 12
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/growth/calculate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.CalculateGrowth(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.GrowthResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.FinalAmount != 1647.01 {
		t.Errorf("expected final amount 1647.01, got %.2f", result.FinalAmount)
	}
}

func TestCalculateGrowthHandler_ContinuousCompounding(t *testing.T) {

	handler := newGrowthHandler()

	body := []byte(`{
		"Principal": 1000,
		"AnnualRate": 0.05,
		"Years": 10,
		"Compounding": "continuous"
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/growth/calculate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.CalculateGrowth(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result domain.GrowthResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.FinalAmount != 1648.72 {
		t.Errorf("expected final amount 1648.72, got %.2f", result.FinalAmount)
	}
}

func TestCalculateGrowthHandler_MethodNotAllowed(t *testing.T) {

	handler := newGrowthHandler()

	req := httptest.NewRequest(http.MethodGet, "/growth/calculate", nil)
	w := httptest.NewRecorder()

	handler.CalculateGrowth(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateGrowthHandler_BadRequest(t *testing.T) {

	handler := newGrowthHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/growth/calculate",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.CalculateGrowth(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateGrowthHandler_ValidationError(t *testing.T) {

	handler := newGrowthHandler()

	body := []byte(`{
		"Principal": -100,
		"AnnualRate": 0.05,
		"Years": 10,
		"Compounding": 12
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/growth/calculate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.CalculateGrowth(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateContributionsHandler_OK(t *testing.T) {

	handler := newGrowthHandler()

	body := []byte(`{
		"Principal": 1000,
		"AnnualRate": 0.05,
		"Years": 10,
		"Compounding": 12,
		"ContributionAmount": 100,
		"ContributionFrequency": 12
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/growth/contributions",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.CalculateContributions(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result domain.GrowthResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.TotalContributions != 12000 {
		t.Errorf("expected total contributions 12000, got %.2f", result.TotalContributions)
	}
}
