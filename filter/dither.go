package filter

import (
	"github.com/mnerv/pix"
)

// Tap is one error-diffusion target: a neighbor offset and the fraction of
// the quantisation error it receives.
type Tap struct {
	DX, DY int
	Weight float32
}

// Kernel is an ordered set of diffusion taps. Offsets must never point
// backward in row-major scan order (negative DY, or negative DX on the
// current row), otherwise already-quantised pixels would be corrupted.
type Kernel []Tap

// FloydSteinberg is the classic 4-tap error-diffusion kernel, weights /16.
var FloydSteinberg = Kernel{
	{DX: +1, DY: 0, Weight: 7.0 / 16},
	{DX: -1, DY: 1, Weight: 3.0 / 16},
	{DX: 0, DY: 1, Weight: 5.0 / 16},
	{DX: +1, DY: 1, Weight: 1.0 / 16},
}

// MinAvgError is the 12-tap minimized-average-error kernel of Jarvis,
// Judice and Ninke, spanning two rows ahead and two columns either side,
// weights /48.
var MinAvgError = Kernel{
	{DX: +1, DY: 0, Weight: 7.0 / 48},
	{DX: +2, DY: 0, Weight: 5.0 / 48},
	{DX: -2, DY: 1, Weight: 3.0 / 48},
	{DX: -1, DY: 1, Weight: 5.0 / 48},
	{DX: 0, DY: 1, Weight: 7.0 / 48},
	{DX: +1, DY: 1, Weight: 5.0 / 48},
	{DX: +2, DY: 1, Weight: 3.0 / 48},
	{DX: -2, DY: 2, Weight: 1.0 / 48},
	{DX: -1, DY: 2, Weight: 3.0 / 48},
	{DX: 0, DY: 2, Weight: 5.0 / 48},
	{DX: +1, DY: 2, Weight: 3.0 / 48},
	{DX: +2, DY: 2, Weight: 1.0 / 48},
}

// Diffuse copies src into dst and dithers dst in place with the given
// kernel and quantisation function.
//
// The scan is row-major. At each pixel the current destination value is
// quantised, the pixel is overwritten with the quantised value, and the
// residual error is added to each tap's current destination value with
// alpha forced to 1. Taps outside the raster read zero and drop the write,
// so error diffused past the border is lost rather than redistributed.
//
// quantise must be total: defined for every float input, including values
// pushed outside [0, 1] by earlier diffusion.
func Diffuse(src, dst *pix.Image, kernel Kernel, quantise func(pix.Color) pix.Color) {
	pix.Transform(src, dst, func(c pix.Color) pix.Color { return c })

	pix.ForEachPixel(dst, func(x, y int, cur pix.Color) {
		q := quantise(cur)
		residual := cur.Sub(q)
		dst.Set(x, y, q)

		for _, t := range kernel {
			n := dst.At(x+t.DX, y+t.DY).Add(residual.Scale(t.Weight))
			n.A = 1
			dst.Set(x+t.DX, y+t.DY, n)
		}
	})
}

// DitherFloydSteinberg copies src into dst and applies Floyd–Steinberg
// error diffusion with the given quantiser.
func DitherFloydSteinberg(src, dst *pix.Image, quantise func(pix.Color) pix.Color) {
	Diffuse(src, dst, FloydSteinberg, quantise)
}

// DitherMinAvgError copies src into dst and applies minimized-average-error
// diffusion with the given quantiser.
func DitherMinAvgError(src, dst *pix.Image, quantise func(pix.Color) pix.Color) {
	Diffuse(src, dst, MinAvgError, quantise)
}
