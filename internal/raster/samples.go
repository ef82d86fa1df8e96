package raster

import "image"

// Quantize maps a row-major w x h buffer of float samples onto 8-bit luma,
// with the lowest sample black and the highest white. A flat buffer
// quantizes to black.
func Quantize(buf []float32, w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	buf = buf[:w*h]
	if len(buf) == 0 {
		return img
	}

	lo, hi := buf[0], buf[0]
	for _, p := range buf {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}

	span := hi - lo
	if span == 0 {
		return img
	}
	for i, p := range buf {
		img.Pix[i] = uint8(255*(p-lo)/span + 0.5)
	}
	return img
}
