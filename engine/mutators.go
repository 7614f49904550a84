package engine

import (
	"github.com/starforge/stellar/core"
	"github.com/starforge/stellar/sprite"
)

// Mutators resolve the handle, apply the change, and keep derived state
// (bucket membership, cached mask) consistent immediately. All return false
// for stale handles. The previous position is never touched here; it only
// moves forward in Step.

// SetPosition moves the entity and reconciles its bucket membership
func (r *Room) SetPosition(e core.Entity, x, y float64) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	d.kin.X, d.kin.Y = x, y
	if d.tangible {
		r.reindex(e, d)
	}
	return true
}

// SetVelocity sets velocity in units per second
func (r *Room) SetVelocity(e core.Entity, vx, vy float64) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	d.kin.VelX, d.kin.VelY = vx, vy
	return true
}

// SetAcceleration sets acceleration in units per second squared
func (r *Room) SetAcceleration(e core.Entity, ax, ay float64) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	d.kin.AccelX, d.kin.AccelY = ax, ay
	return true
}

// SetBBox changes the bounding box relative to position. Negative
// dimensions are clamped to zero.
func (r *Room) SetBBox(e core.Entity, bx, by, w, h float64) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	d.bboxX, d.bboxY, d.bboxW, d.bboxH = bx, by, w, h
	d.invalidateMask()
	if d.tangible {
		r.reindex(e, d)
	}
	return true
}

// SetShape switches the narrow-phase collision mode
func (r *Room) SetShape(e core.Entity, s core.Shape) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	d.shape = s
	d.invalidateMask()
	return true
}

// SetSprite replaces the entity's sprite reference
func (r *Room) SetSprite(e core.Entity, s *sprite.Sprite) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	d.spr = s
	d.invalidateMask()
	return true
}

// SetFrame selects the sprite frame index
func (r *Room) SetFrame(e core.Entity, frame int) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	d.frame = frame
	d.invalidateMask()
	return true
}

// SetScale sets the visual scale; negative values flip
func (r *Room) SetScale(e core.Entity, xscale, yscale float64) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	d.xscale, d.yscale = xscale, yscale
	d.invalidateMask()
	return true
}

// SetRotation sets the visual rotation in degrees, clockwise
func (r *Room) SetRotation(e core.Entity, degrees float64) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	d.rotation = degrees
	d.invalidateMask()
	return true
}

// SetTangible toggles broad-phase participation. Intangible entities are
// evicted from all buckets immediately.
func (r *Room) SetTangible(e core.Entity, tangible bool) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	d.tangible = tangible
	r.reindex(e, d)
	return true
}

// SetChecksCollisions toggles whether the entity runs narrow-phase
// detection and receives events; it can still be a target of others'
// detection while off.
func (r *Room) SetChecksCollisions(e core.Entity, checks bool) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	d.checks = checks
	return true
}

// SetKind retags the entity and updates the kind index
func (r *Room) SetKind(e core.Entity, k core.Kind) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	r.kindRemove(d.kind, e)
	d.kind = k
	r.kindAdd(k, e)
	return true
}

// Position returns the entity position
func (r *Room) Position(e core.Entity) (x, y float64, ok bool) {
	d := r.ents.get(e)
	if d == nil {
		return 0, 0, false
	}
	return d.kin.X, d.kin.Y, true
}

// Velocity returns the entity velocity
func (r *Room) Velocity(e core.Entity) (vx, vy float64, ok bool) {
	d := r.ents.get(e)
	if d == nil {
		return 0, 0, false
	}
	return d.kin.VelX, d.kin.VelY, true
}

// BBox returns the bounding box relative to position
func (r *Room) BBox(e core.Entity) (bx, by, w, h float64, ok bool) {
	d := r.ents.get(e)
	if d == nil {
		return 0, 0, 0, 0, false
	}
	return d.bboxX, d.bboxY, d.bboxW, d.bboxH, true
}

// Kind returns the entity's kind tag
func (r *Room) Kind(e core.Entity) (core.Kind, bool) {
	d := r.ents.get(e)
	if d == nil {
		return core.KindNone, false
	}
	return d.kind, true
}

// Shape returns the entity's collision shape mode
func (r *Room) Shape(e core.Entity) (core.Shape, bool) {
	d := r.ents.get(e)
	if d == nil {
		return core.ShapeRectangle, false
	}
	return d.shape, true
}
