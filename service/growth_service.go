package service

import (
	"encoding/json"
	"errors"
	"log"
	"math"

	"fincalc/domain"
	"fincalc/repository"
)

type GrowthService struct {
	history repository.GrowthHistory
	cache   repository.CacheRepository
}

// NewGrowthService creates a GrowthService backed by the given history
// and cache repositories.
func NewGrowthService(
	history repository.GrowthHistory,
	cache repository.CacheRepository,
) *GrowthService {
	return &GrowthService{history: history, cache: cache}
}

// CalculateGrowth projects the future value of a lump sum under
// discrete or continuous compounding.
func (s *GrowthService) CalculateGrowth(
	input domain.GrowthInput,
) (domain.GrowthResult, error) {
	return s.CalculateGrowthWithContributions(domain.ContributionInput{
		GrowthInput: input,
	})
}

// CalculateGrowthWithContributions projects the future value of a lump
// sum plus a stream of regular contributions. The contribution
// frequency may differ from the compounding frequency; the annual
// contribution total is then spread evenly across compounding periods.
func (s *GrowthService) CalculateGrowthWithContributions(
	input domain.ContributionInput,
) (domain.GrowthResult, error) {

	if err := validateGrowthInput(input); err != nil {
		return domain.GrowthResult{}, err
	}

	key := cacheKey("growth", input)
	if key != "" {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.GrowthResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	result := projectGrowth(input)

	if key != "" {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(data)); err != nil {
				log.Printf("Warning: failed to cache growth result: %v", err)
			}
		}
	}

	// Recording history is not critical; a failure must not lose the result.
	if err := s.history.SaveGrowth(input, result); err != nil {
		log.Printf("Warning: failed to save growth calculation: %v", err)
	}

	return result, nil
}

func validateGrowthInput(input domain.ContributionInput) error {
	for _, v := range []float64{
		input.Principal, input.AnnualRate, input.Years, input.ContributionAmount,
	} {
		if !isFinite(v) {
			return errors.New("inputs must be finite numbers")
		}
	}
	if input.Principal < 0 {
		return errors.New("principal cannot be negative")
	}
	if input.AnnualRate < 0 {
		return errors.New("interest rate cannot be negative")
	}
	if input.Years < 0 {
		return errors.New("time period cannot be negative")
	}
	if !input.Compounding.IsContinuous() && input.Compounding <= 0 {
		return errors.New("compounding times per year must be positive")
	}
	if input.ContributionAmount < 0 {
		return errors.New("contribution amount cannot be negative")
	}
	if input.ContributionFrequency < 0 {
		return errors.New("contribution frequency cannot be negative")
	}
	return nil
}

func projectGrowth(input domain.ContributionInput) domain.GrowthResult {
	principalFV, overflow := principalFutureValue(input.GrowthInput)
	if overflow {
		return domain.GrowthResult{Overflow: true}
	}

	annuityFV, totalContributions, overflow := contributionFutureValue(input)
	if overflow {
		return domain.GrowthResult{Overflow: true}
	}

	finalAmount := principalFV + annuityFV
	if math.IsInf(finalAmount, 0) {
		return domain.GrowthResult{Overflow: true}
	}

	// Clamp tiny negative interest caused by float precision to zero.
	totalInterest := math.Max(0, finalAmount-input.Principal-totalContributions)

	return domain.GrowthResult{
		FinalAmount:        roundTo2Decimals(finalAmount),
		TotalInterest:      roundTo2Decimals(totalInterest),
		TotalContributions: roundTo2Decimals(totalContributions),
	}
}

// principalFutureValue grows the lump sum alone. The boolean is true
// when the log-magnitude estimate says the result would not fit in a
// float64.
func principalFutureValue(in domain.GrowthInput) (float64, bool) {
	if in.Principal == 0 {
		return 0, false
	}
	if in.AnnualRate == 0 {
		return in.Principal, false
	}

	if in.Compounding.IsContinuous() {
		rt := in.AnnualRate * in.Years
		if math.Log(in.Principal)+rt > overflowLogLimit {
			return 0, true
		}
		return in.Principal * math.Exp(rt), false
	}

	n := float64(in.Compounding)
	base := 1 + in.AnnualRate/n
	exponent := n * in.Years
	if math.Log(in.Principal)+exponent*math.Log(base) > overflowLogLimit {
		return 0, true
	}
	return in.Principal * math.Pow(base, exponent), false
}

// contributionFutureValue computes the annuity term and the nominal
// total contributed. Total contributions always come from the user's
// stated frequency, not the per-compounding-period equivalent.
func contributionFutureValue(
	input domain.ContributionInput,
) (fv, totalContributions float64, overflow bool) {

	if input.ContributionAmount == 0 || input.ContributionFrequency == 0 || input.Years == 0 {
		return 0, 0, false
	}

	annual := input.ContributionAmount * float64(input.ContributionFrequency)
	totalContributions = annual * input.Years

	if input.Compounding.IsContinuous() {
		if input.AnnualRate == 0 {
			return annual * input.Years, totalContributions, false
		}
		rt := input.AnnualRate * input.Years
		if math.Log(annual)+rt-math.Log(input.AnnualRate) > overflowLogLimit {
			return 0, 0, true
		}
		return annual * (math.Exp(rt) - 1) / input.AnnualRate, totalContributions, false
	}

	// Contribution periods are folded into compounding periods: the
	// annual contribution is treated as arriving in equal portions at
	// each compounding date. This is an approximation of the actual
	// contribution timing.
	n := float64(input.Compounding)
	perPeriod := annual / n
	periodicRate := input.AnnualRate / n
	numPeriods := n * input.Years

	if periodicRate == 0 {
		return perPeriod * numPeriods, totalContributions, false
	}
	if math.Log(perPeriod)+numPeriods*math.Log(1+periodicRate)-math.Log(periodicRate) > overflowLogLimit {
		return 0, 0, true
	}
	fv = perPeriod * (math.Pow(1+periodicRate, numPeriods) - 1) / periodicRate
	if math.IsInf(fv, 0) {
		return 0, 0, true
	}
	// With less than one full compounding period the annuity factor
	// undershoots the money actually deposited; contributions never
	// shrink while the rate is non-negative.
	if fv < totalContributions {
		fv = totalContributions
	}
	return fv, totalContributions, false
}
