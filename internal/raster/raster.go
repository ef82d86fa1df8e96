// Package raster decodes grayscale images into the 8-bit luma grids the
// lithophane generator consumes.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotLuma is returned for images that are not single-channel grayscale.
var ErrNotLuma = errors.New("image should be a luma image")

// Image is a decoded luma grid along with what it was decoded from.
type Image struct {
	Gray   *image.Gray
	Format string
	// Depth is the bits per sample of the source. 16-bit sources are
	// reduced to 8 bits.
	Depth int
}

// Open decodes the image file at path. TIFF headers are checked before the
// pixel data is read, so colour TIFFs fail without being decoded.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		if _, err := InspectTIFF(f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode reads any registered image format from r.
func Decode(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("not a valid image file: %w", err)
	}
	gray, depth, err := ToLuma(img)
	if err != nil {
		return nil, err
	}
	return &Image{Gray: gray, Format: format, Depth: depth}, nil
}

// ToLuma returns the luma samples of img and the source bit depth. Gray,
// Gray16 and paletted images whose palette is entirely gray are accepted;
// anything else yields ErrNotLuma.
func ToLuma(img image.Image) (*image.Gray, int, error) {
	switch m := img.(type) {
	case *image.Gray:
		return m, 8, nil
	case *image.Gray16:
		return convert(m), 16, nil
	case *image.Paletted:
		if !grayPalette(m.Palette) {
			return nil, 0, fmt.Errorf("%w: palette has colour entries", ErrNotLuma)
		}
		return convert(m), 8, nil
	default:
		return nil, 0, fmt.Errorf("%w: got %T", ErrNotLuma, img)
	}
}

func convert(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}

func grayPalette(p color.Palette) bool {
	for _, c := range p {
		r, g, b, _ := c.RGBA()
		if r != g || g != b {
			return false
		}
	}
	return true
}
