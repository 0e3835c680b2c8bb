package pix

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp" // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

func init() {
	image.RegisterFormat("qoi", "qoif", qoi.Decode, qoi.DecodeConfig)
}

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("pix: empty data")

// Load reads and decodes an image file, auto-detecting the format from its
// content. Any format registered with the image package is accepted: PNG,
// JPEG, GIF, BMP, TIFF, WebP and QOI out of the box. Errors carry the
// offending filename.
func Load(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pix: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("pix: decode %q: %w", path, err)
	}
	img.path = path

	Logger().Debug("pix: image loaded",
		"path", path,
		"width", img.Width(),
		"height", img.Height(),
		"channels", img.Channels())
	return img, nil
}

// DecodeBytes decodes an image from a byte slice.
func DecodeBytes(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pix: decode: %w", err)
	}
	return FromStdImage(src), nil
}

// FromStdImage converts a standard library image into a float sample
// buffer. Greyscale sources become 1-channel images, YCbCr (JPEG) sources
// become 3-channel images, everything else becomes 4-channel.
func FromStdImage(src image.Image) *Image {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch s := src.(type) {
	case *image.Gray:
		img := New(width, height, 1)
		for y := 0; y < height; y++ {
			row := s.Pix[s.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < width; x++ {
				img.data[y*width+x] = float32(row[x]) / 255
			}
		}
		return img
	case *image.YCbCr:
		img := New(width, height, 3)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := s.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				i := (y*width + x) * 3
				img.data[i+0] = float32(r) / 65535
				img.data[i+1] = float32(g) / 65535
				img.data[i+2] = float32(b) / 65535
			}
		}
		return img
	default:
		nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
		xdraw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, xdraw.Src)
		img := New(width, height, 4)
		for i, v := range nrgba.Pix {
			img.data[i] = float32(v) / 255
		}
		return img
	}
}

// ToStdImage converts the float buffer back to an 8-bit standard library
// image, clamping every sample to [0, 255]. Greyscale images produce
// *image.Gray; 3-channel images produce an opaque *image.NRGBA; 4-channel
// images carry their alpha through.
func (m *Image) ToStdImage() image.Image {
	if m.channels == 1 {
		out := image.NewGray(image.Rect(0, 0, m.width, m.height))
		for y := 0; y < m.height; y++ {
			for x := 0; x < m.width; x++ {
				out.Pix[y*out.Stride+x] = uint8(clamp255(m.data[y*m.width+x] * 255))
			}
		}
		return out
	}

	out := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := (y*m.width + x) * m.channels
			o := y*out.Stride + x*4
			out.Pix[o+0] = uint8(clamp255(m.data[i+0] * 255))
			out.Pix[o+1] = uint8(clamp255(m.data[i+1] * 255))
			out.Pix[o+2] = uint8(clamp255(m.data[i+2] * 255))
			if m.channels == 4 {
				out.Pix[o+3] = uint8(clamp255(m.data[i+3] * 255))
			} else {
				out.Pix[o+3] = 255
			}
		}
	}
	return out
}

// WritePNG converts the image to 8-bit samples and saves it as a PNG file.
func WritePNG(path string, img *Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("pix: create %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img.ToStdImage()); err != nil {
		return fmt.Errorf("pix: encode %q: %w", path, err)
	}
	return nil
}
