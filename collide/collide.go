// Package collide implements the narrow-phase collision primitives: the
// strict AABB test and the pixel-mask overlap test.
package collide

import "github.com/starforge/stellar/vmath"

// Rectangles reports whether two rectangles overlap. Edge contact is not a
// collision.
func Rectangles(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return vmath.RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2)
}

// Masks reports whether two masks overlap when placed at (x1, y1) and
// (x2, y2). Positions are rounded to whole pixels. The walk is restricted to
// the bounding-box intersection and returns on the first pixel solid in
// both masks. Nil or zero-area masks never collide.
func Masks(x1, y1 float64, m1 Mask, x2, y2 float64, m2 Mask) bool {
	w1, h1 := m1.Width(), m1.Height()
	w2, h2 := m2.Width(), m2.Height()
	if w1 == 0 || h1 == 0 || w2 == 0 || h2 == 0 {
		return false
	}

	ix1 := vmath.Round(x1)
	iy1 := vmath.Round(y1)
	ix2 := vmath.Round(x2)
	iy2 := vmath.Round(y2)

	if !Rectangles(float64(ix1), float64(iy1), float64(w1), float64(h1),
		float64(ix2), float64(iy2), float64(w2), float64(h2)) {
		return false
	}

	xlo, xhi := vmath.OverlapSpan(ix1, ix1+w1, ix2, ix2+w2)
	ylo, yhi := vmath.OverlapSpan(iy1, iy1+h1, iy2, iy2+h2)

	for i := xlo; i < xhi; i++ {
		for j := ylo; j < yhi; j++ {
			if m1[i-ix1][j-iy1] && m2[i-ix2][j-iy2] {
				return true
			}
		}
	}
	return false
}
