package core

// Shape selects the narrow-phase collision test for an entity. Exactly one
// shape is active at a time.
type Shape uint8

const (
	// ShapeRectangle tests the full bounding box. Two rectangle entities
	// never build masks; the test stays a pure AABB comparison.
	ShapeRectangle Shape = iota
	// ShapeEllipse tests the ellipse inscribed in the bounding box.
	ShapeEllipse
	// ShapePrecise tests the non-transparent pixels of the current
	// transformed sprite frame. Without a sprite the entity degrades to
	// "collides with nothing" in shaped tests.
	ShapePrecise
)

func (s Shape) String() string {
	switch s {
	case ShapeRectangle:
		return "rectangle"
	case ShapeEllipse:
		return "ellipse"
	case ShapePrecise:
		return "precise"
	}
	return "unknown"
}
