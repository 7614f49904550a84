package engine

import "github.com/starforge/stellar/core"

// slot is one arena entry. Generation bumps on release so stale handles
// stop resolving.
type slot struct {
	data       entityData
	generation uint32
	live       bool
}

// arena is the room-owned entity storage. The spatial index, kind index and
// collision bookkeeping hold handles, never pointers; every lookup passes
// through get, which checks liveness.
type arena struct {
	slots []slot
	free  []uint32
	count int
}

// alloc reserves a slot and returns its handle
func (a *arena) alloc() core.Entity {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		// Generations start at 1 so no live handle is ever zero
		a.slots = append(a.slots, slot{generation: 1})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	s.live = true
	s.data = entityData{}
	a.count++
	return core.MakeEntity(idx, s.generation)
}

// get resolves a handle to its data, or nil if the handle is stale
func (a *arena) get(e core.Entity) *entityData {
	idx := int(e.Index())
	if idx >= len(a.slots) {
		return nil
	}
	s := &a.slots[idx]
	if !s.live || s.generation != e.Generation() {
		return nil
	}
	return &s.data
}

// release tombstones a slot. Returns false if the handle was already stale
func (a *arena) release(e core.Entity) bool {
	idx := int(e.Index())
	if idx >= len(a.slots) {
		return false
	}
	s := &a.slots[idx]
	if !s.live || s.generation != e.Generation() {
		return false
	}
	s.live = false
	s.generation++
	s.data = entityData{}
	a.free = append(a.free, uint32(idx))
	a.count--
	return true
}

// each visits live entities in slot order. Entities destroyed by fn are
// skipped for the rest of the walk; entities spawned by fn into later slots
// are visited this walk.
func (a *arena) each(fn func(core.Entity, *entityData)) {
	for i := 0; i < len(a.slots); i++ {
		s := &a.slots[i]
		if s.live {
			fn(core.MakeEntity(uint32(i), s.generation), &s.data)
		}
	}
}
