package engine

import (
	"github.com/starforge/stellar/collide"
	"github.com/starforge/stellar/core"
	"github.com/starforge/stellar/sprite"
)

// entityData is the arena-resident state of one entity
type entityData struct {
	kin          core.Kinetic
	prevX, prevY float64
	z            float64
	kind         core.Kind
	shape        core.Shape

	// Bounding box relative to position
	bboxX, bboxY float64
	bboxW, bboxH float64

	tangible bool
	checks   bool

	// Visual state, mask-relevant only
	spr            *sprite.Sprite
	frame          int
	xscale, yscale float64
	rotation       float64

	// Cached mask for the current visual state; invalidated on any
	// sprite/frame/scale/rotation/shape/bbox change
	mask      collide.Mask
	maskValid bool
}

// EntityProto is the spawn template for an entity. Zero scale values
// default to 1.
type EntityProto struct {
	X, Y           float64
	VelX, VelY     float64
	AccelX, AccelY float64
	Z              float64

	Kind  core.Kind
	Shape core.Shape

	BBoxX, BBoxY float64
	BBoxW, BBoxH float64

	Tangible         bool
	ChecksCollisions bool

	Sprite         *sprite.Sprite
	Frame          int
	XScale, YScale float64
	Rotation       float64
}

func (d *entityData) bboxLeft() float64 { return d.kin.X + d.bboxX }
func (d *entityData) bboxTop() float64  { return d.kin.Y + d.bboxY }

// prevEdges returns last frame's bounding box edges, used for directional
// collision resolution
func (d *entityData) prevEdges() (left, top, right, bottom float64) {
	left = d.prevX + d.bboxX
	top = d.prevY + d.bboxY
	return left, top, left + d.bboxW, top + d.bboxH
}

func (d *entityData) invalidateMask() {
	d.mask = nil
	d.maskValid = false
}
