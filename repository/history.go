package repository

import "fincalc/domain"

// GrowthHistory records completed growth projections.
type GrowthHistory interface {
	SaveGrowth(input domain.ContributionInput, result domain.GrowthResult) error
}

// LoanHistory records completed loan calculations.
type LoanHistory interface {
	SaveQuote(input domain.LoanInput, quote domain.PaymentQuote) error
	SaveLoan(input domain.LoanInput, result domain.AmortizationResult) error
}
