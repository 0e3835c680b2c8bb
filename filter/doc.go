// Package filter implements per-pixel and small-kernel image filters on top
// of the pix traversal helpers: greyscale conversion, quantisation, box and
// Gaussian blur, and error-diffusion dithering.
//
// All kernels sample through the pix boundary accessors: taps that fall
// outside the raster read as zero and writes outside the raster are
// dropped. Edge pixels of the blurs are therefore pulled toward zero, and
// dithering loses the error it diffuses past the border. That behavior is
// intentional and kept identical across every filter in the package.
package filter
