package pix

import (
	"testing"
)

func TestRender(t *testing.T) {
	img := New(3, 2, 3)
	Render(img, func(x, y int) Color {
		return Color{R: float32(x), G: float32(y), B: 0, A: 1}
	})

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			got := img.At(x, y)
			want := Color{R: float32(x), G: float32(y), B: 0, A: 1}
			if got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestMapPixels_SeesCurrentValue(t *testing.T) {
	img := New(2, 2, 3)
	Render(img, func(x, y int) Color { return Grey(0.25) })

	MapPixels(img, func(x, y int, c Color) Color {
		return c.Scale(2)
	})

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := img.At(x, y).R; got != 0.5 {
				t.Errorf("At(%d, %d).R = %v, want 0.5", x, y, got)
			}
		}
	}
}

// TestMapPixels_RowMajorVisibility verifies that in-place traversal exposes
// already-written values to later iterations: each pixel copies its left
// neighbor's value, so a seed at x=0 must sweep across the whole row.
func TestMapPixels_RowMajorVisibility(t *testing.T) {
	img := New(4, 1, 3)
	img.Set(0, 0, Grey(1))

	MapPixels(img, func(x, y int, c Color) Color {
		if x == 0 {
			return c
		}
		return img.At(x-1, y)
	})

	for x := 0; x < 4; x++ {
		if got := img.At(x, 0).R; got != 1 {
			t.Errorf("At(%d, 0).R = %v, want 1 (left-to-right propagation)", x, got)
		}
	}
}

func TestForEachPixel_DoesNotWrite(t *testing.T) {
	img := New(3, 3, 3)
	Render(img, func(x, y int) Color { return Grey(0.5) })
	original := make([]float32, len(img.Data()))
	copy(original, img.Data())

	visits := 0
	ForEachPixel(img, func(x, y int, c Color) {
		visits++
	})

	if visits != 9 {
		t.Errorf("visited %d pixels, want 9", visits)
	}
	for i, v := range img.Data() {
		if v != original[i] {
			t.Fatalf("ForEachPixel modified sample %d", i)
		}
	}
}

func TestForEachPixel_Order(t *testing.T) {
	img := New(2, 2, 1)
	var got []struct{ x, y int }
	ForEachPixel(img, func(x, y int, c Color) {
		got = append(got, struct{ x, y int }{x, y})
	})

	want := []struct{ x, y int }{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visit %d = %v, want %v (row-major order)", i, got[i], want[i])
		}
	}
}

func TestTransform_SeparateImages(t *testing.T) {
	src := New(2, 2, 3)
	dst := New(2, 2, 3)
	Render(src, func(x, y int) Color { return Grey(0.5) })

	Transform(src, dst, func(c Color) Color { return c.Scale(0.5) })

	if got := dst.At(1, 1).R; got != 0.25 {
		t.Errorf("dst.At(1, 1).R = %v, want 0.25", got)
	}
	if got := src.At(1, 1).R; got != 0.5 {
		t.Errorf("Transform modified source: src.At(1, 1).R = %v, want 0.5", got)
	}
}

func TestTransform_InPlace(t *testing.T) {
	img := New(2, 2, 3)
	Render(img, func(x, y int) Color { return Grey(0.5) })

	Transform(img, img, func(c Color) Color { return c.Scale(2) })

	if got := img.At(0, 0).R; got != 1 {
		t.Errorf("At(0, 0).R = %v, want 1", got)
	}
}

func TestTransform_SmallerDestination(t *testing.T) {
	src := New(4, 4, 3)
	dst := New(2, 2, 3)
	Render(src, func(x, y int) Color { return Grey(1) })

	// Writes beyond dst bounds must be dropped, not panic.
	Transform(src, dst, func(c Color) Color { return c })

	if got := dst.At(1, 1).R; got != 1 {
		t.Errorf("dst.At(1, 1).R = %v, want 1", got)
	}
}

func TestTransformAt(t *testing.T) {
	src := New(3, 1, 3)
	dst := New(3, 1, 3)
	TransformAt(src, dst, func(x, y int, c Color) Color {
		return Color{R: float32(x), G: float32(y), B: 0, A: 1}
	})

	for x := 0; x < 3; x++ {
		if got := dst.At(x, 0).R; got != float32(x) {
			t.Errorf("dst.At(%d, 0).R = %v, want %v", x, got, float32(x))
		}
	}
}
