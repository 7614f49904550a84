package sprite

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/starforge/stellar/vmath"
)

// transformFrame applies flip (negative scale), scale, then rotation, in
// that order. The returned image is anchored at (0, 0).
func transformFrame(src *image.RGBA, xscale, yscale, rotation float64) *image.RGBA {
	img := src
	if xscale < 0 || yscale < 0 {
		img = flip(img, xscale < 0, yscale < 0)
	}

	sx := math.Abs(xscale)
	sy := math.Abs(yscale)
	if sx != 1 || sy != 1 {
		img = scale(img, sx, sy)
	}

	if deg := math.Mod(rotation, 360); deg != 0 {
		img = rotate(img, deg)
	}
	return img
}

func flip(src *image.RGBA, horizontal, vertical bool) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			sx, sy := x, y
			if horizontal {
				sx = w - 1 - x
			}
			if vertical {
				sy = h - 1 - y
			}
			dst.SetRGBA(x, y, src.RGBAAt(b.Min.X+sx, b.Min.Y+sy))
		}
	}
	return dst
}

// scale resamples with nearest neighbor; masks need hard edges, not
// interpolated alpha
func scale(src *image.RGBA, sx, sy float64) *image.RGBA {
	b := src.Bounds()
	w := vmath.Round(float64(b.Dx()) * sx)
	h := vmath.Round(float64(b.Dy()) * sy)
	if w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// rotate rotates clockwise (y-down) by deg degrees around the frame center,
// expanding the canvas to the rotated bounding box. Each destination pixel
// is inverse-mapped and nearest-sampled.
func rotate(src *image.RGBA, deg float64) *image.RGBA {
	b := src.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())
	rad := vmath.Degrees(deg)
	sin, cos := math.Sincos(rad)

	rw := math.Abs(w*cos) + math.Abs(h*sin)
	rh := math.Abs(w*sin) + math.Abs(h*cos)
	dw := vmath.Round(rw)
	dh := vmath.Round(rh)
	if dw < 1 || dh < 1 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	dcx := float64(dw) / 2
	dcy := float64(dh) / 2
	scx := w / 2
	scy := h / 2

	for x := 0; x < dw; x++ {
		for y := 0; y < dh; y++ {
			// Inverse rotation back into source space
			ux, uy := vmath.RotatePoint(float64(x)+0.5, float64(y)+0.5, dcx, dcy, -rad)
			px := int(math.Floor(ux - dcx + scx))
			py := int(math.Floor(uy - dcy + scy))
			if px >= 0 && px < b.Dx() && py >= 0 && py < b.Dy() {
				dst.SetRGBA(x, y, src.RGBAAt(b.Min.X+px, b.Min.Y+py))
			}
		}
	}
	return dst
}
