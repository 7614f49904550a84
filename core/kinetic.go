package core

// Kinetic holds an entity's motion state. Coordinates are top-left origin,
// y-down, in room units (pixels).
type Kinetic struct {
	// X and Y are the entity position
	X, Y float64
	// VelX and VelY are velocity in units per second
	VelX, VelY float64
	// AccelX and AccelY are acceleration in units per second squared
	AccelX, AccelY float64
}
