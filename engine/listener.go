package engine

import "github.com/starforge/stellar/core"

// CollisionListener receives collision notifications for entities of a
// registered kind. xdir/ydir are from self's point of view: +1 means self
// approached from the left/top (contact on its right/bottom), -1 the
// opposite, both 0 means a continuing overlap from last frame.
type CollisionListener interface {
	OnCollision(r *Room, self, other core.Entity, xdir, ydir int)
}

// CollisionFunc adapts a plain function to CollisionListener
type CollisionFunc func(r *Room, self, other core.Entity, xdir, ydir int)

func (f CollisionFunc) OnCollision(r *Room, self, other core.Entity, xdir, ydir int) {
	f(r, self, other, xdir, ydir)
}

// Listen registers the listener for a kind, replacing any previous one.
// A nil listener unregisters.
func (r *Room) Listen(kind core.Kind, l CollisionListener) {
	if l == nil {
		delete(r.listeners, kind)
		return
	}
	r.listeners[kind] = l
}

// DirectionalHandler fans a collision out to per-side callbacks. Each unset
// directional slot falls back to Any independently, so with no directional
// handlers a corner hit reports Any once per axis; a continuing collision
// (both directions zero) reports Any exactly once.
type DirectionalHandler struct {
	Left   func(r *Room, self, other core.Entity)
	Right  func(r *Room, self, other core.Entity)
	Top    func(r *Room, self, other core.Entity)
	Bottom func(r *Room, self, other core.Entity)
	Any    func(r *Room, self, other core.Entity)
}

func (h DirectionalHandler) OnCollision(r *Room, self, other core.Entity, xdir, ydir int) {
	if xdir == 0 && ydir == 0 {
		if h.Any != nil {
			h.Any(r, self, other)
		}
		return
	}

	fire := func(f func(*Room, core.Entity, core.Entity)) {
		if f != nil {
			f(r, self, other)
		} else if h.Any != nil {
			h.Any(r, self, other)
		}
	}

	switch xdir {
	case 1:
		fire(h.Right)
	case -1:
		fire(h.Left)
	}
	switch ydir {
	case 1:
		fire(h.Bottom)
	case -1:
		fire(h.Top)
	}
}
