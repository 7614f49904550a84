package vmath

import "math"

// CellFloor returns the grid cell index containing coordinate v for the
// given cell size
func CellFloor(v, cellSize float64) int {
	return int(math.Floor(v / cellSize))
}

// CellCeil returns the first cell index at or past coordinate v
func CellCeil(v, cellSize float64) int {
	return int(math.Ceil(v / cellSize))
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round rounds to nearest integer, halves away from zero
func Round(v float64) int {
	return int(math.Round(v))
}

// MagnitudeSq returns the squared length of vector (x, y)
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}
