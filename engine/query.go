package engine

import (
	"github.com/starforge/stellar/collide"
	"github.com/starforge/stellar/core"
	"github.com/starforge/stellar/vmath"
)

// Filter narrows query results. A nil Filter matches everything.
type Filter interface {
	match(r *Room, e core.Entity, d *entityData) bool
}

type entityFilter core.Entity

func (f entityFilter) match(_ *Room, e core.Entity, _ *entityData) bool {
	return e == core.Entity(f)
}

// WithEntity matches a single entity
func WithEntity(e core.Entity) Filter {
	return entityFilter(e)
}

type setFilter map[core.Entity]struct{}

func (f setFilter) match(_ *Room, e core.Entity, _ *entityData) bool {
	_, ok := f[e]
	return ok
}

// WithEntities matches any of the given entities
func WithEntities(es ...core.Entity) Filter {
	set := make(setFilter, len(es))
	for _, e := range es {
		set[e] = struct{}{}
	}
	return set
}

type kindFilter core.Kind

func (f kindFilter) match(_ *Room, _ core.Entity, d *entityData) bool {
	return d.kind == core.Kind(f)
}

// WithKind matches entities tagged with the given kind
func WithKind(k core.Kind) Filter {
	return kindFilter(k)
}

type queryOpts struct {
	x, y       float64
	hasX, hasY bool
}

// QueryOption adjusts an ad hoc collision query
type QueryOption func(*queryOpts)

// AtX pretends the queried entity is at horizontal position x
func AtX(x float64) QueryOption {
	return func(o *queryOpts) {
		o.x, o.hasX = x, true
	}
}

// AtY pretends the queried entity is at vertical position y
func AtY(y float64) QueryOption {
	return func(o *queryOpts) {
		o.y, o.hasY = y, true
	}
}

// Collisions returns the entities currently overlapping e, optionally at a
// hypothetical position. Side-effect free: no events fire, no state moves.
// A stale handle or intangible entity yields nil.
func (r *Room) Collisions(e core.Entity, f Filter, opts ...QueryOption) []core.Entity {
	d := r.ents.get(e)
	if d == nil || !d.tangible {
		return nil
	}

	var o queryOpts
	for _, opt := range opts {
		opt(&o)
	}
	offX, offY := 0.0, 0.0
	if o.hasX {
		offX = o.x - d.kin.X
	}
	if o.hasY {
		offY = o.y - d.kin.Y
	}

	span := r.index.Span(d.bboxLeft()+offX, d.bboxTop()+offY, d.bboxW, d.bboxH)
	var out []core.Entity
	for _, other := range r.index.EntitiesIn(span) {
		if other == e {
			continue
		}
		od := r.ents.get(other)
		if od == nil || !od.tangible {
			continue
		}
		if f != nil && !f.match(r, other, od) {
			continue
		}
		if r.overlap(d, od, offX, offY) {
			out = append(out, other)
		}
	}
	return out
}

// QueryRectangle returns the entities colliding with a free rectangle.
// Rectangle-mode targets get the pure AABB test; shaped targets are tested
// against a solid rectangle mask.
func (r *Room) QueryRectangle(x, y, w, h float64, f Filter) []core.Entity {
	return r.queryShape(x, y, w, h, f, nil)
}

// QueryEllipse returns the entities colliding with the ellipse inscribed in
// the given box
func (r *Room) QueryEllipse(x, y, w, h float64, f Filter) []core.Entity {
	if w <= 0 || h <= 0 {
		return nil
	}
	m := r.masks.ellipse(vmath.Round(w), vmath.Round(h))
	return r.queryShape(x, y, w, h, f, m)
}

// QueryCircle returns the entities colliding with a circle centered at
// (x, y)
func (r *Room) QueryCircle(x, y, radius float64, f Filter) []core.Entity {
	d := radius * 2
	return r.QueryEllipse(x-radius, y-radius, d, d, f)
}

// queryShape gathers candidates from the buckets the box spans and tests
// each against the query mask (nil = plain rectangle)
func (r *Room) queryShape(x, y, w, h float64, f Filter, m collide.Mask) []core.Entity {
	if w <= 0 || h <= 0 {
		return nil
	}

	span := r.index.Span(x, y, w, h)
	var out []core.Entity
	for _, other := range r.index.EntitiesIn(span) {
		od := r.ents.get(other)
		if od == nil || !od.tangible {
			continue
		}
		if f != nil && !f.match(r, other, od) {
			continue
		}

		var hit bool
		if m == nil && od.shape == core.ShapeRectangle {
			hit = collide.Rectangles(x, y, w, h, od.bboxLeft(), od.bboxTop(), od.bboxW, od.bboxH)
		} else {
			qm := m
			if qm == nil {
				qm = r.masks.rectangle(vmath.Round(w), vmath.Round(h))
			}
			hit = collide.Masks(x, y, qm, od.bboxLeft(), od.bboxTop(), r.maskOf(od))
		}
		if hit {
			out = append(out, other)
		}
	}
	return out
}
