package icon

import (
	"image"

	"golang.org/x/image/vector"
)

// kappa is the control-point offset that makes one cubic Bezier segment
// match a quarter circle: 4/3 * tan(pi/8).
const kappa = 0.5522847498307934

// fillBox fills the axis-aligned rectangle b on dst.
func fillBox(dst *image.RGBA, b box, src *image.Uniform) {
	var r vector.Rasterizer
	r.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())
	r.MoveTo(float32(b.X0), float32(b.Y0))
	r.LineTo(float32(b.X1), float32(b.Y0))
	r.LineTo(float32(b.X1), float32(b.Y1))
	r.LineTo(float32(b.X0), float32(b.Y1))
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), src, image.Point{})
}

// fillEllipse fills the ellipse inscribed in b, approximated by four cubic
// Bezier quarter arcs.
func fillEllipse(dst *image.RGBA, b box, src *image.Uniform) {
	cx := (b.X0 + b.X1) / 2
	cy := (b.Y0 + b.Y1) / 2
	rx := (b.X1 - b.X0) / 2
	ry := (b.Y1 - b.Y0) / 2
	kx := kappa * rx
	ky := kappa * ry

	var r vector.Rasterizer
	r.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())
	r.MoveTo(float32(cx+rx), float32(cy))
	r.CubeTo(float32(cx+rx), float32(cy+ky), float32(cx+kx), float32(cy+ry), float32(cx), float32(cy+ry))
	r.CubeTo(float32(cx-kx), float32(cy+ry), float32(cx-rx), float32(cy+ky), float32(cx-rx), float32(cy))
	r.CubeTo(float32(cx-rx), float32(cy-ky), float32(cx-kx), float32(cy-ry), float32(cx), float32(cy-ry))
	r.CubeTo(float32(cx+kx), float32(cy-ry), float32(cx+rx), float32(cy-ky), float32(cx+rx), float32(cy))
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), src, image.Point{})
}

// fillRoundedBox fills b with all four corners rounded to radius.
func fillRoundedBox(dst *image.RGBA, b box, radius float64, src *image.Uniform) {
	k := kappa * radius
	x0, y0, x1, y1 := b.X0, b.Y0, b.X1, b.Y1

	var r vector.Rasterizer
	r.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())
	r.MoveTo(float32(x0+radius), float32(y0))
	r.LineTo(float32(x1-radius), float32(y0))
	r.CubeTo(float32(x1-radius+k), float32(y0), float32(x1), float32(y0+radius-k), float32(x1), float32(y0+radius))
	r.LineTo(float32(x1), float32(y1-radius))
	r.CubeTo(float32(x1), float32(y1-radius+k), float32(x1-radius+k), float32(y1), float32(x1-radius), float32(y1))
	r.LineTo(float32(x0+radius), float32(y1))
	r.CubeTo(float32(x0+radius-k), float32(y1), float32(x0), float32(y1-radius+k), float32(x0), float32(y1-radius))
	r.LineTo(float32(x0), float32(y0+radius))
	r.CubeTo(float32(x0), float32(y0+radius-k), float32(x0+radius-k), float32(y0), float32(x0+radius), float32(y0))
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), src, image.Point{})
}
