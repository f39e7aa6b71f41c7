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

func newLoanHandler() *LoanHandler {
	history := repository.NewLoanHistoryMemory()
	svc := service.NewLoanService(history, repository.NewMemoryCache())
	return NewLoanHandler(svc)
}

func TestCalculatePaymentHandler_OK(t *testing.T) {

	handler := newLoanHandler()

	body := []byte(`{
		"Principal": 25000,
		"AnnualRate": 0.065,
		"TermYears": 5,
		"PaymentsPerYear": 12
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/payment",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.CalculatePayment(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var quote domain.PaymentQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if quote.PeriodicPayment != 489.15 {
		t.Errorf("expected payment 489.15, got %.2f", quote.PeriodicPayment)
	}
}

func TestCalculatePaymentHandler_MethodNotAllowed(t *testing.T) {

	handler := newLoanHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/payment", nil)
	w := httptest.NewRecorder()

	handler.CalculatePayment(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculatePaymentHandler_BadRequest(t *testing.T) {

	handler := newLoanHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/payment",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.CalculatePayment(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateAmortizationHandler_OK(t *testing.T) {

	handler := newLoanHandler()

	body := []byte(`{
		"Principal": 25000,
		"AnnualRate": 0.065,
		"TermYears": 5,
		"PaymentsPerYear": 12,
		"ExtraPayment": 50
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/amortization",
		bytes.NewBuffer(body),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.CalculateAmortization(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result domain.AmortizationResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.PaymentCount != len(result.Schedule) {
		t.Errorf("payment count %d does not match schedule length %d",
			result.PaymentCount, len(result.Schedule))
	}
	if result.Comparison == nil {
		t.Errorf("expected a payoff comparison when extra payment is set")
	}
}

func TestCalculateAmortizationHandler_UnsupportedMediaType(t *testing.T) {

	handler := newLoanHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/amortization",
		bytes.NewBuffer([]byte(`{}`)),
	)
	req.Header.Set("Content-Type", "text/plain")

	w := httptest.NewRecorder()
	handler.CalculateAmortization(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestCalculateAmortizationHandler_ValidationError(t *testing.T) {

	handler := newLoanHandler()

	body := []byte(`{
		"Principal": 25000,
		"AnnualRate": 0.065,
		"TermYears": 0,
		"PaymentsPerYear": 12
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/amortization",
		bytes.NewBuffer(body),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.CalculateAmortization(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
