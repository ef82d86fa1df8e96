package lithophane

import (
	"image"
	"image/color"
)

// ToImage renders the heightmap as a 16-bit grayscale image, rescaled so the
// lowest point is black and the highest white. A flat map renders black.
func (hm *Heightmap) ToImage() image.Image {
	img := image.NewGray16(image.Rect(0, 0, int(hm.width), int(hm.height)))

	span := hm.max - hm.min
	for i := uint(0); i < hm.width; i++ {
		for j := uint(0); j < hm.height; j++ {
			var c float32
			if span > 0 {
				c = 65535 * (hm.At(i, j) - hm.min) / span
			}
			img.SetGray16(int(i), int(j), color.Gray16{Y: uint16(c)})
		}
	}
	return img
}
