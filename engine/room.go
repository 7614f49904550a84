// Package engine implements the room: an entity arena, a grid of collision
// areas, and the per-frame lifecycle that keeps them consistent while
// detecting and dispatching collisions.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/starforge/stellar/collide"
	"github.com/starforge/stellar/config"
	"github.com/starforge/stellar/core"
	"github.com/starforge/stellar/event"
	"github.com/starforge/stellar/physics"
	"github.com/starforge/stellar/status"
	"github.com/starforge/stellar/vmath"
)

// ErrInvalidEntity is returned when a spawn template fails validation
var ErrInvalidEntity = errors.New("invalid entity")

// Room is a bounded 2-D area owning its entities and their spatial
// bookkeeping. All mutation happens on the caller's goroutine; a frame is a
// single Step call with no suspension points.
type Room struct {
	cfg   config.RoomConfig
	index *SpatialIndex

	ents      arena
	kinds     map[core.Kind]map[core.Entity]struct{}
	listeners map[core.Kind]CollisionListener
	masks     maskCache

	events *event.Queue
	stats  *status.Registry

	frame     int64
	seenPairs map[pairKey]struct{}
}

// NewRoom creates a room from a validated configuration
func NewRoom(cfg config.RoomConfig) (*Room, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Room{
		cfg:       cfg,
		index:     NewSpatialIndex(cfg.Width, cfg.Height, cfg.CellSize),
		kinds:     make(map[core.Kind]map[core.Entity]struct{}),
		listeners: make(map[core.Kind]CollisionListener),
		masks:     newMaskCache(),
		events:    event.NewQueue(),
		stats:     status.NewRegistry(),
		seenPairs: make(map[pairKey]struct{}),
	}, nil
}

// Width returns the room width
func (r *Room) Width() float64 { return r.cfg.Width }

// Height returns the room height
func (r *Room) Height() float64 { return r.cfg.Height }

// Index returns the room's spatial index
func (r *Room) Index() *SpatialIndex { return r.index }

// Events returns the collision event queue
func (r *Room) Events() *event.Queue { return r.events }

// Stats returns the room's counters
func (r *Room) Stats() *status.Registry { return r.stats }

// Frame returns the number of completed steps
func (r *Room) Frame() int64 { return r.frame }

// Count returns the number of live entities
func (r *Room) Count() int { return r.ents.count }

// Spawn creates an entity from a template, registering it with the spatial
// index if tangible. The previous position starts equal to the initial
// position, so a fresh entity can only report a continuing collision.
func (r *Room) Spawn(p EntityProto) (core.Entity, error) {
	if p.BBoxW < 0 || p.BBoxH < 0 {
		return core.NilEntity, fmt.Errorf("%w: bbox %vx%v must be non-negative", ErrInvalidEntity, p.BBoxW, p.BBoxH)
	}

	e := r.ents.alloc()
	d := r.ents.get(e)
	d.kin = core.Kinetic{
		X: p.X, Y: p.Y,
		VelX: p.VelX, VelY: p.VelY,
		AccelX: p.AccelX, AccelY: p.AccelY,
	}
	d.prevX, d.prevY = p.X, p.Y
	d.z = p.Z
	d.kind = p.Kind
	d.shape = p.Shape
	d.bboxX, d.bboxY = p.BBoxX, p.BBoxY
	d.bboxW, d.bboxH = p.BBoxW, p.BBoxH
	d.tangible = p.Tangible
	d.checks = p.ChecksCollisions
	d.spr = p.Sprite
	d.frame = p.Frame
	d.xscale, d.yscale = p.XScale, p.YScale
	if d.xscale == 0 {
		d.xscale = 1
	}
	if d.yscale == 0 {
		d.yscale = 1
	}
	d.rotation = p.Rotation

	r.kindAdd(p.Kind, e)
	if d.tangible {
		r.reindex(e, d)
	}
	return e, nil
}

// Destroy removes an entity, eagerly clearing its bucket membership and
// kind index entry. Pending collision pairings involving it are cancelled
// by the liveness check at dispatch. Returns false for stale handles.
func (r *Room) Destroy(e core.Entity) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	r.index.Remove(e)
	r.kindRemove(d.kind, e)
	return r.ents.release(e)
}

// Alive reports whether the handle still resolves
func (r *Room) Alive(e core.Entity) bool {
	return r.ents.get(e) != nil
}

// Step advances the room one frame: integrate kinetics, reconcile the
// spatial index, detect and dispatch collisions, then snapshot previous
// positions. Previous positions change only here, after the whole frame's
// collisions have been resolved.
func (r *Room) Step(dt float64) {
	start := time.Now()
	r.frame++

	r.ents.each(func(_ core.Entity, d *entityData) {
		physics.Integrate(&d.kin, dt)
	})

	r.ents.each(func(e core.Entity, d *entityData) {
		r.reindex(e, d)
	})

	r.detectCollisions()

	r.ents.each(func(_ core.Entity, d *entityData) {
		d.prevX, d.prevY = d.kin.X, d.kin.Y
	})

	r.stats.FramesStepped.Add(1)
	r.stats.LastStepMicros.Store(time.Since(start).Microseconds())
}

// Reindex recomputes the entity's bucket membership on demand, outside the
// normal frame step
func (r *Room) Reindex(e core.Entity) bool {
	d := r.ents.get(e)
	if d == nil {
		return false
	}
	r.reindex(e, d)
	return true
}

func (r *Room) reindex(e core.Entity, d *entityData) {
	if !d.tangible {
		r.index.Remove(e)
		return
	}
	span := r.index.Span(d.bboxLeft(), d.bboxTop(), d.bboxW, d.bboxH)
	moves := r.index.Update(e, span)
	r.stats.CellMoves.Add(int64(moves))
}

// maskOf returns the entity's collision mask for its current shape and
// visual state, lazily rebuilt after invalidation. A precise entity with no
// sprite has a nil mask and collides with nothing in shaped tests.
func (r *Room) maskOf(d *entityData) collide.Mask {
	if d.maskValid {
		return d.mask
	}
	w := vmath.Round(d.bboxW)
	h := vmath.Round(d.bboxH)

	var m collide.Mask
	switch d.shape {
	case core.ShapePrecise:
		if d.spr != nil {
			m = d.spr.Mask(d.frame, d.xscale, d.yscale, d.rotation, w, h)
		}
	case core.ShapeEllipse:
		m = r.masks.ellipse(w, h)
	default:
		m = r.masks.rectangle(w, h)
	}

	d.mask = m
	d.maskValid = true
	return m
}

func (r *Room) kindAdd(k core.Kind, e core.Entity) {
	set := r.kinds[k]
	if set == nil {
		set = make(map[core.Entity]struct{})
		r.kinds[k] = set
	}
	set[e] = struct{}{}
}

func (r *Room) kindRemove(k core.Kind, e core.Entity) {
	if set := r.kinds[k]; set != nil {
		delete(set, e)
		if len(set) == 0 {
			delete(r.kinds, k)
		}
	}
}

// EntitiesOfKind returns the live entities tagged with the given kind
func (r *Room) EntitiesOfKind(k core.Kind) []core.Entity {
	set := r.kinds[k]
	if len(set) == 0 {
		return nil
	}
	out := make([]core.Entity, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	return out
}
