package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Continuous selects continuous compounding instead of a discrete
// number of compounding periods per year.
const Continuous Compounding = -1

// Compounding is how often interest is credited. A positive value is a
// discrete number of periods per year (1, 2, 4, 12, 26, 52, 365...);
// Continuous means interest compounds continuously.
type Compounding int

func (c Compounding) IsContinuous() bool {
	return c == Continuous
}

// UnmarshalJSON accepts either a positive integer or the string
// "continuous", matching the frequency selector the form exposes.
func (c *Compounding) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if strings.EqualFold(s, "continuous") {
			*c = Continuous
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid compounding frequency: %q", s)
		}
		*c = Compounding(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("compounding must be an integer or \"continuous\"")
	}
	*c = Compounding(n)
	return nil
}

func (c Compounding) MarshalJSON() ([]byte, error) {
	if c.IsContinuous() {
		return json.Marshal("continuous")
	}
	return json.Marshal(int(c))
}

type GrowthInput struct {
	Principal   float64
	AnnualRate  float64 // decimal fraction, e.g. 0.05 for 5%
	Years       float64
	Compounding Compounding
}

type ContributionInput struct {
	GrowthInput
	ContributionAmount    float64
	ContributionFrequency int // contributions per year; may differ from compounding
}

// GrowthResult is the projected value of an investment. Overflow marks
// results too large to represent; the numeric fields are meaningless
// when it is set.
type GrowthResult struct {
	FinalAmount        float64
	TotalInterest      float64
	TotalContributions float64
	Overflow           bool `json:",omitempty"`
}
