// Package rasterize provides integer line and triangle drawing on pix
// images. Geometry outside the raster clips silently through the pix
// boundary policy.
package rasterize

import (
	"image"

	"github.com/mnerv/pix"
)

// Line draws a line from (x0, y0) to (x1, y1) with Bresenham's algorithm.
// Steep lines are transposed so the driving axis always steps by one.
func Line(img *pix.Image, x0, y0, x1, y1 int, c pix.Color) {
	steep := false
	if abs(x0-x1) < abs(y0-y1) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		steep = true
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	derror2 := abs(dy) * 2
	error2 := 0
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			img.SetRGB(y, x, c)
		} else {
			img.SetRGB(x, y, c)
		}
		error2 += derror2
		if error2 > dx {
			if y1 > y0 {
				y++
			} else {
				y--
			}
			error2 -= dx * 2
		}
	}
}

// LineP is Line with point arguments.
func LineP(img *pix.Image, a, b image.Point, c pix.Color) {
	Line(img, a.X, a.Y, b.X, b.Y, c)
}

// Triangle fills the triangle t0 t1 t2 with a scanline sweep: vertices are
// sorted by y, then each row is spanned between the long edge and the
// active short edge. Degenerate triangles with all three vertices on one
// row draw nothing.
func Triangle(img *pix.Image, t0, t1, t2 image.Point, c pix.Color) {
	if t0.Y == t1.Y && t0.Y == t2.Y {
		return
	}
	if t0.Y > t1.Y {
		t0, t1 = t1, t0
	}
	if t0.Y > t2.Y {
		t0, t2 = t2, t0
	}
	if t1.Y > t2.Y {
		t1, t2 = t2, t1
	}

	totalHeight := t2.Y - t0.Y
	for i := 0; i < totalHeight; i++ {
		secondHalf := i > t1.Y-t0.Y || t1.Y == t0.Y
		segmentHeight := t1.Y - t0.Y
		if secondHalf {
			segmentHeight = t2.Y - t1.Y
		}
		alpha := float64(i) / float64(totalHeight)
		shift := 0
		if secondHalf {
			shift = t1.Y - t0.Y
		}
		beta := float64(i-shift) / float64(segmentHeight)

		ax := float64(t0.X) + float64(t2.X-t0.X)*alpha
		var bx float64
		if secondHalf {
			bx = float64(t1.X) + float64(t2.X-t1.X)*beta
		} else {
			bx = float64(t0.X) + float64(t1.X-t0.X)*beta
		}
		if ax > bx {
			ax, bx = bx, ax
		}
		for x := ax; x <= bx; x++ {
			img.SetRGB(int(x), t0.Y+i, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
