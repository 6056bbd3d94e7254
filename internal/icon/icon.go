// Package icon renders the FileLocker application icon: a white padlock
// on a solid blue disc over a transparent background.
package icon

import (
	"image"
	"image/color"
)

// Background is the blue fill of the circular backdrop.
var Background = color.RGBA{R: 0, G: 102, B: 204, A: 255}

// Glyph is the white fill of the padlock shape.
var Glyph = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Draw renders the icon onto a fresh transparent canvas of size*scale
// pixels per side. The drawing order is fixed: background disc, then the
// rounded lock body, then the three shackle bars on top.
func Draw(size, scale int) *image.RGBA {
	px := size * scale
	img := image.NewRGBA(image.Rect(0, 0, px, px))
	lay := layoutFor(px)

	disc := image.NewUniform(Background)
	glyph := image.NewUniform(Glyph)

	fillEllipse(img, box{0, 0, float64(px), float64(px)}, disc)
	fillRoundedBox(img, lay.Body, lay.Radius, glyph)
	for _, b := range lay.Bars {
		fillBox(img, b, glyph)
	}
	return img
}
