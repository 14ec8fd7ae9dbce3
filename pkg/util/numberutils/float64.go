package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError parses the trimmed string as a finite float64.
func ToFloat64WithError(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrRange
	}
	return value, nil
}

// IsFloat64InRange checks if the given number is within the specified range (inclusive).
func IsFloat64InRange(num, min, max float64) bool {
	return num >= min && num <= max
}

// RoundHalfUp rounds to the nearest integer with halves going towards positive infinity,
// so -2.5 becomes -2 and 2.5 becomes 3.
func RoundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

// RoundToDecimals rounds value to the given number of decimal places, halves away from zero.
func RoundToDecimals(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

// Average returns the arithmetic mean of values, or 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
