package service

import (
	"encoding/json"
	"errors"
	"log"
	"math"

	"fincalc/domain"
	"fincalc/repository"
)

type LoanService struct {
	history repository.LoanHistory
	cache   repository.CacheRepository
}

// NewLoanService creates a LoanService backed by the given history and
// cache repositories.
func NewLoanService(
	history repository.LoanHistory,
	cache repository.CacheRepository,
) *LoanService {
	return &LoanService{history: history, cache: cache}
}

// CalculatePayment computes the fixed periodic payment that fully
// amortizes the loan, plus its scheduled lifetime totals. A
// non-positive principal yields a zero quote rather than an error.
func (s *LoanService) CalculatePayment(
	input domain.LoanInput,
) (domain.PaymentQuote, error) {

	payment, err := periodicPayment(
		input.Principal, input.AnnualRate, input.TermYears, input.PaymentsPerYear,
	)
	if err != nil {
		return domain.PaymentQuote{}, err
	}

	key := cacheKey("quote", input)
	if key != "" {
		if cached, ok := s.cache.Get(key); ok {
			var quote domain.PaymentQuote
			if err := json.Unmarshal([]byte(cached), &quote); err == nil {
				return quote, nil
			}
		}
	}

	var quote domain.PaymentQuote
	if payment > 0 {
		numPayments := input.TermYears * float64(input.PaymentsPerYear)
		total := payment * numPayments
		quote = domain.PaymentQuote{
			PeriodicPayment: roundTo2Decimals(payment),
			TotalPayment:    roundTo2Decimals(total),
			TotalInterest:   roundTo2Decimals(total - input.Principal),
		}
	}

	if key != "" {
		if data, err := json.Marshal(quote); err == nil {
			if err := s.cache.Set(key, string(data)); err != nil {
				log.Printf("Warning: failed to cache payment quote: %v", err)
			}
		}
	}

	if err := s.history.SaveQuote(input, quote); err != nil {
		log.Printf("Warning: failed to save payment quote: %v", err)
	}

	return quote, nil
}

// CalculateAmortization produces the payment-by-payment ledger for the
// loan, applying any extra payment each period. When an extra payment
// is present, the result also carries a comparison against the
// standard schedule.
func (s *LoanService) CalculateAmortization(
	input domain.LoanInput,
) (domain.AmortizationResult, error) {

	if !isFinite(input.ExtraPayment) {
		return domain.AmortizationResult{}, errors.New("extra payment must be a finite number")
	}
	if input.ExtraPayment < 0 {
		return domain.AmortizationResult{}, errors.New("extra payment cannot be negative")
	}

	key := cacheKey("loan", input)
	if key != "" {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.AmortizationResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	result, err := amortize(input, input.ExtraPayment)
	if err != nil {
		return domain.AmortizationResult{}, err
	}

	if input.ExtraPayment > 0 && input.Principal > 0 {
		standard, err := amortize(input, 0)
		if err == nil {
			result.Comparison = &domain.PayoffComparison{
				Standard:  summarize(standard),
				WithExtra: summarize(result),
				InterestSaved: roundTo2Decimals(
					math.Max(0, standard.TotalInterestPaid-result.TotalInterestPaid),
				),
				PaymentsSaved: standard.PaymentCount - result.PaymentCount,
			}
		}
	}

	if key != "" {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(data)); err != nil {
				log.Printf("Warning: failed to cache amortization result: %v", err)
			}
		}
	}

	if err := s.history.SaveLoan(input, result); err != nil {
		log.Printf("Warning: failed to save loan calculation: %v", err)
	}

	return result, nil
}

// periodicPayment solves the fixed-payment annuity formula. Principal
// checks come first: no loan means no payment, whatever the other
// parameters say.
func periodicPayment(
	principal, annualRate, years float64,
	paymentsPerYear int,
) (float64, error) {

	if !isFinite(principal) || !isFinite(annualRate) || !isFinite(years) {
		return 0, errors.New("inputs must be finite numbers")
	}
	if principal <= 0 {
		return 0, nil
	}
	if annualRate < 0 {
		return 0, errors.New("annual rate cannot be negative")
	}
	if years <= 0 {
		return 0, errors.New("loan term must be positive")
	}
	if paymentsPerYear <= 0 {
		return 0, errors.New("payments per year must be positive")
	}

	numPayments := years * float64(paymentsPerYear)
	if annualRate == 0 {
		return principal / numPayments, nil
	}

	periodicRate := annualRate / float64(paymentsPerYear)
	return principal * periodicRate / (1 - math.Pow(1+periodicRate, -numPayments)), nil
}

func amortize(input domain.LoanInput, extra float64) (domain.AmortizationResult, error) {
	if input.Principal <= 0 {
		return domain.AmortizationResult{
			Schedule:  []domain.AmortizationRow{},
			Converged: true,
		}, nil
	}

	regular, err := periodicPayment(
		input.Principal, input.AnnualRate, input.TermYears, input.PaymentsPerYear,
	)
	if err != nil {
		return domain.AmortizationResult{}, err
	}
	if regular == 0 {
		// Zero-rate guard: fall back to straight-line division.
		regular = input.Principal / (input.TermYears * float64(input.PaymentsPerYear))
	}

	periodicRate := input.AnnualRate / float64(input.PaymentsPerYear)
	maxPayments := int(math.Ceil(
		safetyCapFactor * input.TermYears * float64(input.PaymentsPerYear),
	))

	result := buildSchedule(input.Principal, periodicRate, regular+extra, maxPayments)
	result.RegularPayment = roundTo2Decimals(regular)
	return result, nil
}

// buildSchedule simulates fixed payments period by period until the
// balance reaches zero or maxPayments is hit.
func buildSchedule(
	principal, periodicRate, payment float64,
	maxPayments int,
) domain.AmortizationResult {

	schedule := make([]domain.AmortizationRow, 0, maxPayments/safetyCapFactor+1)
	balance := principal
	totalInterest := 0.0
	totalPaid := 0.0

	for len(schedule) < maxPayments && balance > BalanceEpsilon {
		interest := balance * periodicRate
		paid := payment
		principalPaid := paid - interest

		// The last payment covers only what is left.
		if principalPaid > balance {
			principalPaid = balance
			paid = principalPaid + interest
		}

		balance -= principalPaid
		if balance < 0 {
			principalPaid += balance
			balance = 0
		}

		// When the closed-form payment undershoots by float residue the
		// balance lands just above zero instead of on it; fold the
		// sub-epsilon remainder into this payment so the schedule ends
		// at exactly zero.
		if balance > 0 && balance <= BalanceEpsilon {
			principalPaid += balance
			paid += balance
			balance = 0
		}

		schedule = append(schedule, domain.AmortizationRow{
			PaymentIndex:     len(schedule) + 1,
			StartingBalance:  balance + principalPaid,
			Payment:          paid,
			PrincipalPortion: principalPaid,
			InterestPortion:  interest,
			EndingBalance:    balance,
		})

		totalInterest += interest
		totalPaid += paid
	}

	return domain.AmortizationResult{
		Schedule:          schedule,
		TotalPaid:         roundTo2Decimals(totalPaid),
		TotalInterestPaid: roundTo2Decimals(totalInterest),
		PaymentCount:      len(schedule),
		Converged:         balance <= BalanceEpsilon,
	}
}

func summarize(r domain.AmortizationResult) domain.ScheduleSummary {
	return domain.ScheduleSummary{
		TotalPaid:         r.TotalPaid,
		TotalInterestPaid: r.TotalInterestPaid,
		PaymentCount:      r.PaymentCount,
	}
}
