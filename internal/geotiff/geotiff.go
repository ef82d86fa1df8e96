// Package geotiff reads elevation windows out of GeoTIFF files using GDAL.
package geotiff

import (
	"fmt"
	"image"
	"math"

	"github.com/airbusgeo/godal"

	"github.com/rneatherway/lithophane/internal/raster"
)

// Window selects a rectangle of pixels with upper left corner at (X, Y).
// A zero W or H extends the window to the image edge.
type Window struct {
	X, Y, W, H uint
}

// Read loads the first band of the GeoTIFF at path, restricted to win, and
// returns the samples row-major along with the resolved window.
func Read(path string, win Window) ([]float32, Window, error) {
	godal.RegisterAll()
	hDataset, err := godal.Open(path)
	if err != nil {
		return nil, win, err
	}
	defer hDataset.Close()

	structure := hDataset.Structure()

	if uint(structure.SizeX) < win.X+win.W {
		return nil, win, fmt.Errorf("selected window goes outside image bounds (image width=%d, window max x=%d)", structure.SizeX, win.X+win.W)
	}
	if uint(structure.SizeY) < win.Y+win.H {
		return nil, win, fmt.Errorf("selected window goes outside image bounds (image height=%d, window max y=%d)", structure.SizeY, win.Y+win.H)
	}

	if win.W == 0 {
		win.W = uint(structure.SizeX) - win.X
	}
	if win.H == 0 {
		win.H = uint(structure.SizeY) - win.Y
	}

	bands := hDataset.Bands()
	if len(bands) == 0 {
		return nil, win, fmt.Errorf("%s has no raster bands", path)
	}
	buf := make([]float32, win.W*win.H)
	if err := bands[0].Read(int(win.X), int(win.Y), buf, int(win.W), int(win.H)); err != nil {
		return nil, win, err
	}

	ClearNoData(buf)
	return buf, win, nil
}

// ClearNoData sets undefined samples, stored by GDAL as -MaxFloat32, to zero.
func ClearNoData(buf []float32) {
	for i := range buf {
		if buf[i] == -math.MaxFloat32 {
			buf[i] = 0
		}
	}
}

// Diff subtracts b from a sample by sample, leaving the result in a.
func Diff(a, b []float32) error {
	if len(a) != len(b) {
		return fmt.Errorf("cannot diff windows of %d and %d samples", len(a), len(b))
	}
	for i := range a {
		a[i] -= b[i]
	}
	return nil
}

// ReadLuma reads a window like Read, subtracts the same window of each
// file in minus, and quantizes the result to 8-bit luma over its own range.
func ReadLuma(path string, win Window, minus ...string) (*image.Gray, error) {
	buf, win, err := Read(path, win)
	if err != nil {
		return nil, err
	}
	for _, other := range minus {
		buf2, _, err := Read(other, win)
		if err != nil {
			return nil, err
		}
		if err := Diff(buf, buf2); err != nil {
			return nil, err
		}
	}
	return raster.Quantize(buf, int(win.W), int(win.H)), nil
}
