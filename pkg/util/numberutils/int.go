package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return i
	}
	return defaultVal
}

// ToInt64WithDefault converts the given string to an int64.
// If the string cannot be converted, it returns the provided default value.
func ToInt64WithDefault(s string, defaultVal int64) int64 {
	if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return i
	}
	return defaultVal
}

// IsIntInRange checks if the given number is within the specified range (inclusive).
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}
