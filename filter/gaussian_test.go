package filter

import (
	"math"
	"testing"

	"github.com/mnerv/pix"
)

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		wantSize int
	}{
		{name: "radius 1", radius: 1, wantSize: 7},
		{name: "radius 2", radius: 2, wantSize: 13},
		{name: "radius 0.5", radius: 0.5, wantSize: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := GaussianKernel(tt.radius)
			if len(k) != tt.wantSize {
				t.Errorf("len = %d, want %d", len(k), tt.wantSize)
			}

			var sum float64
			for _, v := range k {
				sum += float64(v)
			}
			if math.Abs(sum-1) > 1e-5 {
				t.Errorf("weight sum = %v, want 1", sum)
			}

			// Symmetric, peaked at the center.
			mid := len(k) / 2
			for i := 0; i < mid; i++ {
				if k[i] != k[len(k)-1-i] {
					t.Errorf("kernel not symmetric at %d: %v != %v", i, k[i], k[len(k)-1-i])
				}
				if k[i] > k[mid] {
					t.Errorf("kernel[%d] = %v exceeds center %v", i, k[i], k[mid])
				}
			}
		})
	}
}

func TestGaussianKernel_Identity(t *testing.T) {
	for _, radius := range []float64{0, -1} {
		k := GaussianKernel(radius)
		if len(k) != 1 || k[0] != 1 {
			t.Errorf("GaussianKernel(%v) = %v, want [1]", radius, k)
		}
	}
}

func TestGaussianBlur_ZeroRadiusCopies(t *testing.T) {
	src := pix.New(3, 3, 3)
	pix.Render(src, func(x, y int) pix.Color { return pix.Grey(float32(x) / 3) })

	out := GaussianBlur(src, 0)
	if out == src {
		t.Fatal("GaussianBlur(radius 0) returned the source image, want a copy")
	}
	for i := range src.Data() {
		if out.Data()[i] != src.Data()[i] {
			t.Fatalf("sample %d = %v, want %v", i, out.Data()[i], src.Data()[i])
		}
	}
}

func TestGaussianBlur_UniformInterior(t *testing.T) {
	const v = 0.8
	const radius = 2.0
	// Kernel half-width is ceil(3*radius) = 6; keep the probe pixel
	// farther than that from every edge.
	src := pix.New(33, 33, 3)
	pix.Render(src, func(x, y int) pix.Color { return pix.RGB(v, v, v) })

	out := GaussianBlur(src, radius)

	if got := out.At(16, 16).R; math.Abs(float64(got)-v) > 1e-4 {
		t.Errorf("center pixel = %v, want %v", got, v)
	}

	// Border pixels lose the taps that fell outside and darken.
	if got := out.At(0, 0).R; float64(got) >= v {
		t.Errorf("corner pixel = %v, want less than %v (zero-fill edges)", got, v)
	}
}

func TestGaussianBlur_PreservesShape(t *testing.T) {
	src := pix.New(9, 7, 4)
	out := GaussianBlur(src, 1)
	if out.Width() != 9 || out.Height() != 7 || out.Channels() != 4 {
		t.Errorf("output %dx%dx%d, want 9x7x4", out.Width(), out.Height(), out.Channels())
	}
}
