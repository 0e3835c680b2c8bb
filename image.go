package pix

import (
	"fmt"
)

// Image is a rectangular raster of float32 samples.
//
// Samples live in a single contiguous buffer of length
// width*height*channels, laid out row-major with interleaved channels.
// Dimensions are fixed at construction; the buffer is never reallocated.
// An Image owns its buffer exclusively and is not safe for concurrent
// mutation.
type Image struct {
	width    int
	height   int
	channels int
	data     []float32
	path     string // source file, when loaded from disk
}

// New creates an image with the given dimensions and channel count
// (1 for greyscale, 3 for RGB, 4 for RGBA). The buffer is zero-initialized.
func New(width, height, channels int) *Image {
	return &Image{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]float32, width*height*channels),
	}
}

// NewSquare creates a size×size RGB image.
func NewSquare(size int) *Image {
	return New(size, size, 3)
}

// Width returns the width of the image in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the height of the image in pixels.
func (m *Image) Height() int {
	return m.height
}

// Channels returns the number of samples per pixel (1, 3 or 4).
func (m *Image) Channels() int {
	return m.channels
}

// Size returns the total number of samples in the buffer,
// width*height*channels.
func (m *Image) Size() int {
	return len(m.data)
}

// Data returns the raw sample buffer.
func (m *Image) Data() []float32 {
	return m.data
}

// String returns a one-line summary of the image metadata.
func (m *Image) String() string {
	return fmt.Sprintf("pix.Image{file: %q, width: %d, height: %d, channels: %d, size: %d}",
		m.path, m.width, m.height, m.channels, len(m.data))
}

// At returns the color of a single pixel. Coordinates outside
// [0,width)×[0,height) return the zero Color, zero alpha included.
//
// Greyscale images read as R=G=B=sample with opaque alpha; 3-channel
// images read with opaque alpha.
func (m *Image) At(x, y int) Color {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Color{}
	}
	i := (y*m.width + x) * m.channels
	switch m.channels {
	case 1:
		v := m.data[i]
		return Color{R: v, G: v, B: v, A: 1}
	case 4:
		return Color{R: m.data[i], G: m.data[i+1], B: m.data[i+2], A: m.data[i+3]}
	default:
		return Color{R: m.data[i], G: m.data[i+1], B: m.data[i+2], A: 1}
	}
}

// Set writes the color of a single pixel. Writes outside
// [0,width)×[0,height) are silently dropped.
//
// Greyscale images store the red component; alpha is stored only by
// 4-channel images.
func (m *Image) Set(x, y int, c Color) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := (y*m.width + x) * m.channels
	switch m.channels {
	case 1:
		m.data[i] = c.R
	case 4:
		m.data[i] = c.R
		m.data[i+1] = c.G
		m.data[i+2] = c.B
		m.data[i+3] = c.A
	default:
		m.data[i] = c.R
		m.data[i+1] = c.G
		m.data[i+2] = c.B
	}
}

// SetRGB writes only the color components of a pixel, leaving any stored
// alpha untouched. Out-of-range writes are silently dropped.
func (m *Image) SetRGB(x, y int, c Color) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := (y*m.width + x) * m.channels
	if m.channels == 1 {
		m.data[i] = c.R
		return
	}
	m.data[i] = c.R
	m.data[i+1] = c.G
	m.data[i+2] = c.B
}

// Normalise rescales every sample by the buffer maximum so the largest
// sample becomes 1. Buffers whose maximum is not positive are left
// unchanged.
func (m *Image) Normalise() {
	var max float32
	for _, v := range m.data {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return
	}
	inv := 1 / max
	for i := range m.data {
		m.data[i] *= inv
	}
}

// FlipV mirrors the image vertically in place. Both pixels of each swap
// are read before either is written, so the swap never observes its own
// partial result.
func (m *Image) FlipV() {
	for y := 0; y < m.height/2; y++ {
		for x := 0; x < m.width; x++ {
			a := m.At(x, y)
			b := m.At(x, m.height-1-y)
			m.Set(x, y, b)
			m.Set(x, m.height-1-y, a)
		}
	}
}

// FlipH mirrors the image horizontally in place.
func (m *Image) FlipH() {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width/2; x++ {
			a := m.At(x, y)
			b := m.At(m.width-1-x, y)
			m.Set(x, y, b)
			m.Set(m.width-1-x, y, a)
		}
	}
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	out := New(m.width, m.height, m.channels)
	copy(out.data, m.data)
	out.path = m.path
	return out
}
