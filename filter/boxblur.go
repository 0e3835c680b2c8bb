package filter

import (
	"github.com/mnerv/pix"
)

// BoxBlur averages the 3×3 neighborhood of every pixel into a new image of
// the same dimensions and channel count.
//
// Neighbors are sampled through the zero-fill accessor and the divisor is
// always 9, so border pixels are darkened in proportion to how many taps
// fell outside the raster.
func BoxBlur(src *pix.Image) *pix.Image {
	return BoxBlurRadius(src, 1)
}

// BoxBlurRadius is BoxBlur with a (2r+1)×(2r+1) window. The divisor stays
// the full tap count regardless of clipping. A radius below 1 is treated
// as 1.
func BoxBlurRadius(src *pix.Image, radius int) *pix.Image {
	if radius < 1 {
		radius = 1
	}
	out := pix.New(src.Width(), src.Height(), src.Channels())
	side := 2*radius + 1
	inv := 1 / float32(side*side)

	pix.ForEachPixel(src, func(x, y int, _ pix.Color) {
		var sum pix.Color
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				sum = sum.Add(src.At(x+dx, y+dy))
			}
		}
		out.Set(x, y, sum.Scale(inv))
	})
	return out
}
