package repository

import (
	"sync"

	"fincalc/domain"
)

type growthEntry struct {
	Input  domain.ContributionInput
	Result domain.GrowthResult
}

// GrowthHistoryMemory is an in-memory implementation of GrowthHistory.
// Entries live only for the process lifetime.
type GrowthHistoryMemory struct {
	mu      sync.Mutex
	entries []growthEntry
}

func NewGrowthHistoryMemory() *GrowthHistoryMemory {
	return &GrowthHistoryMemory{}
}

func (r *GrowthHistoryMemory) SaveGrowth(
	input domain.ContributionInput,
	result domain.GrowthResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, growthEntry{Input: input, Result: result})
	return nil
}

// Len reports how many projections have been recorded.
func (r *GrowthHistoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

type loanEntry struct {
	Input  domain.LoanInput
	Result domain.AmortizationResult
}

type quoteEntry struct {
	Input domain.LoanInput
	Quote domain.PaymentQuote
}

// LoanHistoryMemory is an in-memory implementation of LoanHistory.
type LoanHistoryMemory struct {
	mu      sync.Mutex
	entries []loanEntry
	quotes  []quoteEntry
}

func NewLoanHistoryMemory() *LoanHistoryMemory {
	return &LoanHistoryMemory{}
}

func (r *LoanHistoryMemory) SaveQuote(
	input domain.LoanInput,
	quote domain.PaymentQuote,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes = append(r.quotes, quoteEntry{Input: input, Quote: quote})
	return nil
}

// QuoteLen reports how many payment quotes have been recorded.
func (r *LoanHistoryMemory) QuoteLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.quotes)
}

func (r *LoanHistoryMemory) SaveLoan(
	input domain.LoanInput,
	result domain.AmortizationResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, loanEntry{Input: input, Result: result})
	return nil
}

func (r *LoanHistoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
