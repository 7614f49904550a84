package vmath

// Ellipse containment for inscribed-ellipse masks and shape queries

// InscribedEllipseContains reports whether point (px, py), measured from the
// top-left of a w x h box, lies inside the ellipse inscribed in that box:
// ((px-a)/a)^2 + ((py-b)/b)^2 <= 1 with a = w/2, b = h/2.
// Degenerate boxes contain nothing.
func InscribedEllipseContains(px, py, w, h float64) bool {
	a := w / 2
	b := h / 2
	if a <= 0 || b <= 0 {
		return false
	}
	dx := (px - a) / a
	dy := (py - b) / b
	return dx*dx+dy*dy <= 1
}

// EllipseContains reports whether the point offset (dx, dy) from an ellipse
// center lies inside the ellipse with radii (rx, ry)
func EllipseContains(dx, dy, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	nx := dx / rx
	ny := dy / ry
	return nx*nx+ny*ny <= 1
}
