package service

const (
	// BalanceEpsilon is the remaining balance below which a loan is
	// considered paid off.
	BalanceEpsilon = 0.01

	// overflowLogLimit approximates ln(MaxFloat64); when the estimated
	// log-magnitude of a growth result exceeds it, the computation is
	// short-circuited to the overflow sentinel instead of producing Inf.
	overflowLogLimit = 700.0

	// safetyCapFactor bounds the amortization loop at this multiple of
	// the scheduled payment count, guarding non-convergent inputs.
	safetyCapFactor = 2
)
