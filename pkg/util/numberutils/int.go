package numberutils

import (
	"math"
	"strconv"
)

// ToIntWithDefault converts the given string to an integer.
// If the string is empty, it returns the provided default value.
// Any other string that cannot be converted is reported as an error.
func ToIntWithDefault(s string, defaultVal int) (int, error) {
	if s == "" {
		return defaultVal, nil
	}
	return ToIntWithError(s)
}

// ToIntWithError converts the given string to an integer and returns any error that occurred during conversion.
func ToIntWithError(str string) (int, error) {
	return strconv.Atoi(str)
}

// MinInt returns the minimum value from a list of integers.
func MinInt(nums ...int) int {
	minVal := math.MaxInt
	for _, num := range nums {
		if num < minVal {
			minVal = num
		}
	}
	return minVal
}
