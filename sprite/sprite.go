// Package sprite holds the visual frames entities derive precise collision
// masks from. The engine consumes nothing else from it: no drawing, only
// pixel opacity.
package sprite

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/starforge/stellar/collide"
)

// Sprite is a named sequence of frames shared by any number of entities.
// Precise masks are cached per distinct visual state so entities sharing a
// sprite (and frames where the state is unchanged) reuse one grid.
type Sprite struct {
	name     string
	frames   []*image.RGBA
	colorkey color.Color // nil = alpha channel decides opacity

	mu    sync.Mutex
	masks map[maskKey]collide.Mask
}

type maskKey struct {
	frame          int
	xscale, yscale float64
	rotation       float64
	width, height  int
}

// New creates a sprite from the given frames. Frames are copied into RGBA
// form once at construction.
func New(name string, frames ...image.Image) *Sprite {
	s := &Sprite{
		name:  name,
		masks: make(map[maskKey]collide.Mask),
	}
	for _, f := range frames {
		b := f.Bounds()
		rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), f, b.Min, draw.Src)
		s.frames = append(s.frames, rgba)
	}
	return s
}

// SetColorkey marks a color as transparent for frames without an alpha
// channel. Pixels matching the key are not solid.
func (s *Sprite) SetColorkey(c color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colorkey = c
	// Opacity rule changed, cached masks are stale
	s.masks = make(map[maskKey]collide.Mask)
}

// Name returns the sprite name
func (s *Sprite) Name() string {
	return s.name
}

// Frames returns the number of frames
func (s *Sprite) Frames() int {
	return len(s.frames)
}

// Mask returns the precise collision mask for the given frame under the
// given flip/scale/rotation, sampled over a w x h bounding box anchored at
// the frame's top-left. The mask is cached keyed on the full visual tuple.
// An out-of-range frame or empty box yields nil.
func (s *Sprite) Mask(frame int, xscale, yscale, rotation float64, w, h int) collide.Mask {
	if frame < 0 || frame >= len(s.frames) || w <= 0 || h <= 0 {
		return nil
	}
	key := maskKey{frame: frame, xscale: xscale, yscale: yscale, rotation: rotation, width: w, height: h}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.masks[key]; ok {
		return m
	}

	img := transformFrame(s.frames[frame], xscale, yscale, rotation)
	key2 := s.colorkey
	m := collide.MaskFromOpacity(w, h, func(x, y int) bool {
		return pixelSolid(img, x, y, key2)
	})
	s.masks[key] = m
	return m
}

// pixelSolid reports whether the pixel at (x, y) counts for collision.
// Outside the frame is transparent.
func pixelSolid(img *image.RGBA, x, y int, colorkey color.Color) bool {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return false
	}
	c := img.RGBAAt(x, y)
	if colorkey != nil {
		kr, kg, kb, _ := colorkey.RGBA()
		cr, cg, cb, _ := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
		return cr != kr || cg != kg || cb != kb
	}
	return c.A != 0
}
