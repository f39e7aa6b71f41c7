package domain

type LoanInput struct {
	Principal       float64
	AnnualRate      float64 // decimal fraction
	TermYears       float64
	PaymentsPerYear int
	ExtraPayment    float64 // extra amount paid each period, 0 for none
}

// PaymentQuote is the closed-form answer to "what does this loan cost":
// the fixed periodic payment plus its lifetime totals.
type PaymentQuote struct {
	PeriodicPayment float64
	TotalPayment    float64
	TotalInterest   float64
}

type AmortizationRow struct {
	PaymentIndex     int
	StartingBalance  float64
	Payment          float64
	PrincipalPortion float64
	InterestPortion  float64
	EndingBalance    float64
}

// ScheduleSummary condenses a schedule to its totals, used when
// comparing payoff scenarios.
type ScheduleSummary struct {
	TotalPaid         float64
	TotalInterestPaid float64
	PaymentCount      int
}

// PayoffComparison contrasts the standard schedule against the schedule
// with extra payments applied.
type PayoffComparison struct {
	Standard      ScheduleSummary
	WithExtra     ScheduleSummary
	InterestSaved float64
	PaymentsSaved int
}

// AmortizationResult is the full payment-by-payment ledger for a loan.
// Converged is false when the safety cap was reached before the balance
// hit zero (a payment too small to cover interest); the schedule is
// then truncated and the summary totals cover only the simulated rows.
type AmortizationResult struct {
	Schedule          []AmortizationRow
	RegularPayment    float64
	TotalPaid         float64
	TotalInterestPaid float64
	PaymentCount      int
	Converged         bool
	Comparison        *PayoffComparison `json:",omitempty"`
}
