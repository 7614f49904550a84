package core

// Entity is a stable handle into a room's entity arena.
// The low 32 bits are the slot index, the high 32 bits the slot generation.
// A handle resolves only while its generation matches the slot's current
// generation; destroying an entity bumps the generation and strands every
// outstanding handle.
type Entity uint64

// NilEntity never resolves. Generations start at 1, so a zero handle can
// never match a live slot.
const NilEntity Entity = 0

// MakeEntity packs an arena slot index and generation into a handle
func MakeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot index of the handle
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued for
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}
