// Package pix provides a small float-buffer image library for writing
// per-pixel filters.
//
// # Overview
//
// pix stores images as flat float32 sample buffers in row-major,
// channel-interleaved order, with samples nominally in [0, 1]. Values are
// not clamped while filters run; clamping happens once, when an image is
// encoded to 8-bit PNG output.
//
// # Quick Start
//
//	import "github.com/mnerv/pix"
//
//	img, err := pix.Load("input.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out := pix.New(img.Width(), img.Height(), img.Channels())
//	pix.Transform(img, out, func(c pix.Color) pix.Color {
//	    return c.Scale(0.5)
//	})
//
//	if err := pix.WritePNG("output.png", out); err != nil {
//	    log.Fatal(err)
//	}
//
// # Boundary Policy
//
// Every accessor is bounds-checked with a zero-fill policy: reading outside
// the raster returns the zero Color (zero alpha included) and writing
// outside the raster does nothing. Filters rely on this instead of testing
// edges themselves, so out-of-range kernel taps contribute zero and
// diffused error is dropped at image borders. Do not change this policy to
// clamp, reflect or wrap edges; the filters in the filter package are
// specified against zero-fill.
//
// # Architecture
//
// The module is organized into:
//   - Root package: Image, Color, traversal, codec I/O, logging
//   - filter: point filters, box/Gaussian blur, error-diffusion dithering
//   - rasterize: line and triangle helpers
//   - framepush: raw greyscale frame push over TCP
//   - cmd: boxblur, dither and gaussian demo programs
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Traversal
// is always row-major (Y outer, X inner); the dithering kernels depend on
// that order.
package pix
