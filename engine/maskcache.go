package engine

import (
	"sync"

	"github.com/starforge/stellar/collide"
)

// maskCache shares rectangle and ellipse masks across entities, keyed by
// box size. Precise masks live on their sprite instead, keyed by the full
// visual tuple.
type maskCache struct {
	mu       sync.Mutex
	rects    map[[2]int]collide.Mask
	ellipses map[[2]int]collide.Mask
}

func newMaskCache() maskCache {
	return maskCache{
		rects:    make(map[[2]int]collide.Mask),
		ellipses: make(map[[2]int]collide.Mask),
	}
}

func (c *maskCache) rectangle(w, h int) collide.Mask {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := [2]int{w, h}
	if m, ok := c.rects[key]; ok {
		return m
	}
	m := collide.NewRectangleMask(w, h)
	c.rects[key] = m
	return m
}

func (c *maskCache) ellipse(w, h int) collide.Mask {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := [2]int{w, h}
	if m, ok := c.ellipses[key]; ok {
		return m
	}
	m := collide.NewEllipseMask(w, h)
	c.ellipses[key] = m
	return m
}
