package core

// Kind tags an entity with its gameplay category. Collision listeners are
// registered per kind, and queries can filter on it, replacing runtime type
// inspection with an explicit tag.
type Kind uint16

// KindNone is the zero kind. Entities spawned without a kind carry it; no
// listener can be registered for it.
const KindNone Kind = 0
