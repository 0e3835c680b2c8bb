package pix

import (
	"image/color"
)

// Color represents a pixel sample with red, green, blue, and alpha
// components. Each component is nominally in the range [0, 1], but filters
// may carry intermediate values outside that range; clamping happens only
// at 8-bit conversion time.
type Color struct {
	R, G, B, A float32
}

// Color converts a Color to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGBA implements the color.Color interface. The returned values are
// alpha-premultiplied and clamped to [0, 0xffff].
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// Grey creates a color with all four components set to v. Replicating the
// value into alpha matches the greyscale conversion of the dithering demo,
// where the luma is splatted across the whole sample.
func Grey(v float32) Color {
	return Color{R: v, G: v, B: v, A: v}
}

// Add returns the component-wise sum of two colors, alpha included.
func (c Color) Add(other Color) Color {
	return Color{
		R: c.R + other.R,
		G: c.G + other.G,
		B: c.B + other.B,
		A: c.A + other.A,
	}
}

// Sub returns the component-wise difference of two colors, alpha included.
func (c Color) Sub(other Color) Color {
	return Color{
		R: c.R - other.R,
		G: c.G - other.G,
		B: c.B - other.B,
		A: c.A - other.A,
	}
}

// Scale multiplies every component, alpha included, by s.
func (c Color) Scale(s float32) Color {
	return Color{
		R: c.R * s,
		G: c.G * s,
		B: c.B * s,
		A: c.A * s,
	}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = Color{}
)
