package engine

import (
	"github.com/starforge/stellar/collide"
	"github.com/starforge/stellar/core"
	"github.com/starforge/stellar/event"
)

// pairKey identifies an unordered entity pair; a <= b always
type pairKey struct {
	a, b core.Entity
}

func makePair(a, b core.Entity) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// detectCollisions runs the per-frame pass: for every tangible entity that
// checks collisions, test its same-bucket neighbors, resolve the collision
// direction from previous-frame edges, and notify both sides. Each
// unordered pair is processed at most once per frame.
func (r *Room) detectCollisions() {
	clear(r.seenPairs)

	r.ents.each(func(e core.Entity, d *entityData) {
		if !d.tangible || !d.checks {
			return
		}
		for _, other := range r.index.NeighborsOf(e) {
			// A handler may have destroyed the checking entity
			if r.ents.get(e) == nil {
				return
			}
			key := makePair(e, other)
			if _, done := r.seenPairs[key]; done {
				continue
			}
			r.seenPairs[key] = struct{}{}

			od := r.ents.get(other)
			if od == nil || !od.tangible {
				continue
			}

			r.stats.PairsTested.Add(1)
			if !r.overlap(d, od, 0, 0) {
				continue
			}
			r.stats.Collisions.Add(1)

			xdir, ydir := relativeDirections(d, od)
			r.notify(e, other, xdir, ydir)
			r.notify(other, e, -xdir, -ydir)
		}
	})
}

// overlap is the narrow phase. Two rectangle entities use the pure AABB
// test; any shaped participant switches both sides to masks. A missing
// mask degrades to no collision. offX/offY shift the first entity for
// hypothetical-position queries.
func (r *Room) overlap(d, od *entityData, offX, offY float64) bool {
	if d.shape == core.ShapeRectangle && od.shape == core.ShapeRectangle {
		return collide.Rectangles(
			d.bboxLeft()+offX, d.bboxTop()+offY, d.bboxW, d.bboxH,
			od.bboxLeft(), od.bboxTop(), od.bboxW, od.bboxH)
	}
	return collide.Masks(
		d.bboxLeft()+offX, d.bboxTop()+offY, r.maskOf(d),
		od.bboxLeft(), od.bboxTop(), r.maskOf(od))
}

// relativeDirections derives the collision direction from previous-frame
// bounding boxes, per axis: +1 when d approached from the left/top (the
// contact is on d's right/bottom), -1 the opposite, 0 when the previous
// boxes already overlapped on that axis.
func relativeDirections(d, od *entityData) (xdir, ydir int) {
	sl, st, sr, sb := d.prevEdges()
	ol, ot, oright, ob := od.prevEdges()

	switch {
	case sr <= ol:
		xdir = 1
	case sl >= oright:
		xdir = -1
	}
	switch {
	case sb <= ot:
		ydir = 1
	case st >= ob:
		ydir = -1
	}
	return xdir, ydir
}

// notify delivers one side of a detected pair: a queue event plus the
// listener registered for the entity's kind. Nothing fires if either side
// was destroyed by an earlier handler this frame.
func (r *Room) notify(self, other core.Entity, xdir, ydir int) {
	sd := r.ents.get(self)
	if sd == nil || r.ents.get(other) == nil {
		return
	}

	r.events.Push(event.Collision{
		Self:  self,
		Other: other,
		XDir:  xdir,
		YDir:  ydir,
		Frame: r.frame,
	})

	if l := r.listeners[sd.kind]; l != nil {
		l.OnCollision(r, self, other, xdir, ydir)
	}
}
