package util

import "math"

// CalculateAverage returns the arithmetic mean of values. ok is false for an
// empty slice.
func CalculateAverage(values []int) (average float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum int
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values)), true
}

func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b int) int {
	return a / GCD(a, b) * b
}

// LCMBounded folds LCM over values and stops as soon as the running result
// would exceed limit (limit <= 0 disables the bound) or overflow int. When
// exceeded is true the returned value is the next product, saturated at
// math.MaxInt.
func LCMBounded(values []int, limit int) (result int, exceeded bool) {
	result = 1
	for _, v := range values {
		step := v / GCD(result, v)
		if result > math.MaxInt/step {
			return math.MaxInt, true
		}
		if limit > 0 && result*step > limit {
			return result * step, true
		}
		result *= step
	}
	return result, false
}
