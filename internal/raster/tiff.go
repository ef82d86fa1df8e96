package raster

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/tiff"
)

// ErrUnsupportedTIFF is returned for TIFF files without a readable image
// directory.
var ErrUnsupportedTIFF = errors.New("unsupported TIFF file")

// Baseline TIFF tags.
const (
	tagBitsPerSample             = 258
	tagPhotometricInterpretation = 262
	tagSamplesPerPixel           = 277
)

// Photometric interpretations that carry one channel.
const (
	photometricWhiteIsZero = 0
	photometricBlackIsZero = 1
	photometricPalette     = 3
)

// tiffSource is what the TIFF parser needs to follow directory offsets.
type tiffSource interface {
	io.ReadSeeker
	io.ReaderAt
}

// TIFFInfo describes the first image directory of a TIFF file.
type TIFFInfo struct {
	SamplesPerPixel uint32
	BitsPerSample   uint32
	Photometric     uint32
}

// InspectTIFF reads the first image directory of r and rejects images that
// are not single channel.
func InspectTIFF(r tiffSource) (TIFFInfo, error) {
	t, err := tiff.Parse(r, nil, nil)
	if err != nil {
		return TIFFInfo{}, fmt.Errorf("%w: %v", ErrUnsupportedTIFF, err)
	}
	ifds := t.IFDs()
	if len(ifds) == 0 {
		return TIFFInfo{}, fmt.Errorf("%w: no image directory", ErrUnsupportedTIFF)
	}
	ifd := ifds[0]

	// Defaults from the TIFF 6.0 baseline.
	info := TIFFInfo{SamplesPerPixel: 1, BitsPerSample: 1}
	if ifd.HasField(tagSamplesPerPixel) {
		info.SamplesPerPixel = fieldUint(ifd.GetField(tagSamplesPerPixel))
	}
	if ifd.HasField(tagBitsPerSample) {
		info.BitsPerSample = fieldUint(ifd.GetField(tagBitsPerSample))
	}
	if !ifd.HasField(tagPhotometricInterpretation) {
		return info, fmt.Errorf("%w: missing PhotometricInterpretation", ErrUnsupportedTIFF)
	}
	info.Photometric = fieldUint(ifd.GetField(tagPhotometricInterpretation))

	if info.SamplesPerPixel != 1 {
		return info, fmt.Errorf("%w: %d samples per pixel", ErrNotLuma, info.SamplesPerPixel)
	}
	switch info.Photometric {
	case photometricWhiteIsZero, photometricBlackIsZero, photometricPalette:
	default:
		return info, fmt.Errorf("%w: photometric interpretation %d", ErrNotLuma, info.Photometric)
	}
	return info, nil
}

// fieldUint decodes the first value of a BYTE, SHORT or LONG field.
func fieldUint(f tiff.Field) uint32 {
	v := f.Value()
	b := v.Bytes()
	if f.Count() == 0 || len(b) == 0 {
		return 0
	}
	switch len(b) / int(f.Count()) {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(v.Order().Uint16(b))
	default:
		return v.Order().Uint32(b)
	}
}
