package pix

// Traversal helpers. All of them scan row-major (y outer, x inner). The
// in-place variants write through the shared buffer as they go, so a later
// iteration observes values already produced by an earlier one — the
// error-diffusion filters depend on exactly this.

// Render writes fn(x, y) into every pixel of img.
func Render(img *Image, fn func(x, y int) Color) {
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			img.Set(x, y, fn(x, y))
		}
	}
}

// MapPixels replaces every pixel of img with fn applied to its current
// value, in place.
func MapPixels(img *Image, fn func(x, y int, c Color) Color) {
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			img.Set(x, y, fn(x, y, img.At(x, y)))
		}
	}
}

// ForEachPixel calls fn for every pixel of img without writing anything.
// fn is free to mutate img itself; the scan order stays row-major.
func ForEachPixel(img *Image, fn func(x, y int, c Color)) {
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			fn(x, y, img.At(x, y))
		}
	}
}

// Transform reads every pixel of src and writes fn of it into dst at the
// same coordinate. src and dst may be the same image. Coordinates of src
// that fall outside dst are dropped by the boundary policy.
func Transform(src, dst *Image, fn func(c Color) Color) {
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			dst.Set(x, y, fn(src.At(x, y)))
		}
	}
}

// TransformAt is Transform with the coordinate passed to fn.
func TransformAt(src, dst *Image, fn func(x, y int, c Color) Color) {
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			dst.Set(x, y, fn(x, y, src.At(x, y)))
		}
	}
}
