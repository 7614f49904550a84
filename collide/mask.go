package collide

import "github.com/starforge/stellar/vmath"

// Mask is a column-major boolean occupancy grid: mask[x][y] is true where
// the pixel at column x, row y counts for collision. A nil or zero-area mask
// collides with nothing.
type Mask [][]bool

// NewMask returns an empty (all false) w x h mask. Non-positive dimensions
// yield a nil mask.
func NewMask(w, h int) Mask {
	if w <= 0 || h <= 0 {
		return nil
	}
	m := make(Mask, w)
	for x := range m {
		m[x] = make([]bool, h)
	}
	return m
}

// NewRectangleMask returns a fully solid w x h mask
func NewRectangleMask(w, h int) Mask {
	m := NewMask(w, h)
	for x := range m {
		for y := range m[x] {
			m[x][y] = true
		}
	}
	return m
}

// NewEllipseMask returns a w x h mask solid inside the inscribed ellipse of
// the box
func NewEllipseMask(w, h int) Mask {
	m := NewMask(w, h)
	for x := range m {
		for y := range m[x] {
			m[x][y] = vmath.InscribedEllipseContains(float64(x), float64(y), float64(w), float64(h))
		}
	}
	return m
}

// MaskFromOpacity samples a w x h mask from an opacity predicate. Used to
// derive precise masks from transformed sprite frames.
func MaskFromOpacity(w, h int, opaque func(x, y int) bool) Mask {
	m := NewMask(w, h)
	for x := range m {
		for y := range m[x] {
			m[x][y] = opaque(x, y)
		}
	}
	return m
}

// Width returns the mask width in pixels
func (m Mask) Width() int {
	return len(m)
}

// Height returns the mask height in pixels
func (m Mask) Height() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Solid reports whether pixel (x, y) is occupied. Out-of-bounds queries are
// false.
func (m Mask) Solid(x, y int) bool {
	if x < 0 || x >= len(m) {
		return false
	}
	if y < 0 || y >= len(m[x]) {
		return false
	}
	return m[x][y]
}
