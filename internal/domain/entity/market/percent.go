package market

import (
	"math"
	"strconv"
	"strings"
)

// NormalizePercent converts a provider-supplied percentage-like value into a
// decimal percent. A trailing % is stripped, then the remainder is parsed as
// a decimal number; when the magnitude exceeds 100 the value was pre-scaled
// by the provider (raw -624 means -6.24%) and is divided by 100. Anything
// unparsable yields NaN, which fails every threshold comparison downstream.
func NormalizePercent(raw string) float64 {
	s := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	if math.Abs(v) > 100 {
		return v / 100
	}
	return v
}
