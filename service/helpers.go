package service

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// roundTo2Decimals rounds a monetary value to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// isFinite reports whether v is a usable numeric input (not NaN or Inf).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// cacheKey derives a stable cache key from the canonical JSON encoding
// of the input. An empty key disables caching for that request.
func cacheKey(prefix string, input any) string {
	data, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%016x", prefix, xxhash.Sum64(data))
}
