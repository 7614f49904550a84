package event

import "github.com/starforge/stellar/core"

// QueueSize is the collision event ring capacity. Must be a power of two.
const QueueSize = 1024

const bufferMask = QueueSize - 1

// Collision records one side of a detected pair for the frame it occurred
// in. XDir/YDir are from Self's point of view: +1 means Self approached from
// the left/top (the contact is on Self's right/bottom), -1 the opposite,
// 0 on both axes means a continuing overlap.
type Collision struct {
	Self  core.Entity
	Other core.Entity
	XDir  int
	YDir  int
	Frame int64
}
