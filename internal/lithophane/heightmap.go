// Package lithophane turns an 8-bit luma grid into a closed relief solid
// ready for STL serialization.
package lithophane

import (
	"errors"
	"fmt"
	"image"
)

// ErrTooSmall is returned for grids narrower or shorter than two samples;
// such grids have no cells to triangulate.
var ErrTooSmall = errors.New("heightmap needs at least 2x2 samples")

// Heightmap holds one height per image pixel. It is filled once by
// NewHeightmap and never modified afterwards.
type Heightmap struct {
	buf    []float32
	width  uint
	height uint

	min float32
	max float32
}

// NewHeightmap maps every luma sample l of img to l/255*modelHeight and
// records the minimum and maximum heights seen.
func NewHeightmap(img *image.Gray, modelHeight float32) (*Heightmap, error) {
	b := img.Bounds()
	if b.Dx() < 2 || b.Dy() < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, b.Dx(), b.Dy())
	}

	hm := &Heightmap{
		buf:    make([]float32, b.Dx()*b.Dy()),
		width:  uint(b.Dx()),
		height: uint(b.Dy()),
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			l := float32(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y) / 255
			h := l * modelHeight
			hm.buf[x+y*b.Dx()] = h

			if (x == 0 && y == 0) || h < hm.min {
				hm.min = h
			}
			if (x == 0 && y == 0) || h > hm.max {
				hm.max = h
			}
		}
	}

	return hm, nil
}

func (hm *Heightmap) Width() uint  { return hm.width }
func (hm *Heightmap) Height() uint { return hm.height }

// Imagine width is three, height is two and the samples are:
//
// a b c
// d e f
//
// They sit in buf as: a b c d e f
// So for each 'y' we need to advance by 'width'.
func (hm *Heightmap) At(x, y uint) float32 {
	return hm.buf[x+y*hm.width]
}

// Min is the lowest height in the map.
func (hm *Heightmap) Min() float32 { return hm.min }

// Max is the highest height in the map.
func (hm *Heightmap) Max() float32 { return hm.max }

// FloorHeight is the z of the solid's flat base: baseHeight below the lowest
// surface point. A negative baseHeight puts the floor above that point.
func (hm *Heightmap) FloorHeight(baseHeight float32) float32 {
	return hm.min - baseHeight
}
