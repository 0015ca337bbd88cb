package utils

import (
	"math"
)

// Fl is the numeric type used for all geometry.
type Fl = float32

func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func MaxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

func MinF(x, y Fl) Fl {
	if x < y {
		return x
	}
	return y
}

func MaxF(x, y Fl) Fl {
	if x > y {
		return x
	}
	return y
}

func Maxs(values ...Fl) Fl {
	max := values[0]
	for _, w := range values {
		if w > max {
			max = w
		}
	}
	return max
}

func Mins(values ...Fl) Fl {
	min := values[0]
	for _, w := range values {
		if w < min {
			min = w
		}
	}
	return min
}

func Floor(x Fl) Fl {
	return Fl(math.Floor(float64(x)))
}

func Round(x Fl) Fl {
	return Fl(math.Round(float64(x)))
}

func Abs(x Fl) Fl {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp bounds x to [min, max]. It assumes min <= max.
func Clamp(x, min, max Fl) Fl {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// IsDegenerate reports whether x is NaN or infinite.
func IsDegenerate(x Fl) bool {
	f := float64(x)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
