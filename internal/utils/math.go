package utils

import "math"

// Floor2 truncates a value to two decimal places. It never rounds up, so
// ages derived from block deltas can only understate, not overstate.
func Floor2(v float64) float64 {
	return math.Floor(v*100) / 100
}
