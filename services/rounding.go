package services

import "math"

// Rounding is half-to-even throughout, scaling first for decimal places,
// which matches how numpy rounds Series values.

func roundRooms(x float64) float64 {
	return math.RoundToEven(x)
}

func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}

// ceilDiv10 returns ceil(n/10) for non-negative n.
func ceilDiv10(n int64) int64 {
	return (n + 9) / 10
}
