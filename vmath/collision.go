package vmath

// RectsOverlap reports whether two axis-aligned rectangles overlap.
// Comparisons are strict, so rectangles that merely share an edge do not
// overlap.
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}

// OverlapSpan returns the half-open intersection [lo, hi) of two 1-D spans.
// hi <= lo means the spans are disjoint.
func OverlapSpan(a1, a2, b1, b2 int) (lo, hi int) {
	lo = a1
	if b1 > lo {
		lo = b1
	}
	hi = a2
	if b2 < hi {
		hi = b2
	}
	return lo, hi
}
