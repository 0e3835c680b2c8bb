package filter

import (
	"math"

	"github.com/mnerv/pix"
)

// GaussianKernel generates a 1D Gaussian kernel for the given radius.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is computed as 2*ceil(radius*3) + 1, which covers 99.7%
// of the Gaussian distribution (3 standard deviations).
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	sigma := radius
	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float32, size)

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels in normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	if sum > 0 {
		invSum := float32(1.0 / sum)
		for i := range kernel {
			kernel[i] *= invSum
		}
	}

	return kernel
}

// GaussianBlur convolves src with a Gaussian of the given radius and
// returns a new image of the same dimensions and channel count.
//
// The convolution is separable: a horizontal pass into a temporary image
// followed by a vertical pass into the output. Both passes sample through
// the zero-fill accessor, keeping the same border darkening as BoxBlur.
// A radius of 0 or less returns an unfiltered copy.
func GaussianBlur(src *pix.Image, radius float64) *pix.Image {
	if radius <= 0 {
		return src.Clone()
	}

	kernel := GaussianKernel(radius)
	half := len(kernel) / 2

	tmp := pix.New(src.Width(), src.Height(), src.Channels())
	pix.ForEachPixel(src, func(x, y int, _ pix.Color) {
		var sum pix.Color
		for k, w := range kernel {
			sum = sum.Add(src.At(x+k-half, y).Scale(w))
		}
		tmp.Set(x, y, sum)
	})

	out := pix.New(src.Width(), src.Height(), src.Channels())
	pix.ForEachPixel(tmp, func(x, y int, _ pix.Color) {
		var sum pix.Color
		for k, w := range kernel {
			sum = sum.Add(tmp.At(x, y+k-half).Scale(w))
		}
		out.Set(x, y, sum)
	})
	return out
}
