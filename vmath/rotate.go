package vmath

import "math"

// RotatePoint rotates (x, y) around (cx, cy) by the given angle in radians,
// positive clockwise in a y-down coordinate system
func RotatePoint(x, y, cx, cy, radians float64) (float64, float64) {
	sin, cos := math.Sincos(radians)
	dx := x - cx
	dy := y - cy
	return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
}

// Degrees converts degrees to radians
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}
