// Package core provides fundamental types and utilities shared by the simulation
// and the platform layer. It has no external dependencies so the game logic stays
// pure and testable.
package core

import "math"

// Near reports whether two centers are closer than the given half extents on both
// axes. This is the center-distance form of an AABB overlap test; the comparison
// is strict so touching boxes do not collide.
func Near(ax, ay, bx, by, halfW, halfH float64) bool {
	return math.Abs(ax-bx) < halfW && math.Abs(ay-by) < halfH
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp moves a toward b by factor t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// RoundPx rounds to the nearest integer with halves going toward +Inf, so -2.5
// becomes -2 and 2.5 becomes 3.
func RoundPx(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
