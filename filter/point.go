package filter

import (
	"math"

	"github.com/mnerv/pix"
)

// Luma weights used by the greyscale conversion.
const (
	lumaR = 0.2162
	lumaG = 0.7152
	lumaB = 0.0722
)

// Greyscale converts a color sample to its luma, replicated across all four
// components.
func Greyscale(c pix.Color) pix.Color {
	v := lumaR*c.R + lumaG*c.G + lumaB*c.B
	return pix.Grey(v)
}

// Quantise1Bit snaps a sample to pure black or pure white: red below 0.5
// quantises to the all-zero color, everything else to the all-one color.
// Intended for greyscale input, where red carries the luma.
func Quantise1Bit(c pix.Color) pix.Color {
	if c.R < 0.5 {
		return pix.Color{}
	}
	return pix.Color{R: 1, G: 1, B: 1, A: 1}
}

// QuantiseLevels returns a quantiser snapping the red component to the
// nearest of n evenly spaced levels in [0, 1], replicated across all four
// components. n below 2 is treated as 2.
func QuantiseLevels(n int) func(pix.Color) pix.Color {
	if n < 2 {
		n = 2
	}
	steps := float64(n - 1)
	return func(c pix.Color) pix.Color {
		v := float32(math.Round(float64(c.R)*steps) / steps)
		return pix.Grey(v)
	}
}
