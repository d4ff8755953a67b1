package mathutil

import "math"

// IntAbs returns |x|.
func IntAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IntSign returns -1, 0, or 1.
func IntSign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// IntClamp limits x to [lo, hi].
func IntClamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// FloorToInt floors v toward negative infinity, unlike int(v) which truncates.
func FloorToInt(v float64) int {
	return int(math.Floor(v))
}
