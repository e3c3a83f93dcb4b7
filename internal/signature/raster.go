package signature

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// capSides is the polygon resolution of a round cap.
const capSides = 24

// segment paints a round-capped line from a to b (CSS pixels). Every
// sub-path is wound the same way so overlaps saturate instead of cancelling.
func (s *Surface) segment(a, b Point) {
	b0 := s.img.Bounds()
	s.z.Reset(b0.Dx(), b0.Dy())
	s.z.DrawOp = draw.Over

	r := float32(PenWidth * s.scale / 2)
	ax, ay := float32(a.X*s.scale), float32(a.Y*s.scale)
	bx, by := float32(b.X*s.scale), float32(b.Y*s.scale)

	disc(s.z, ax, ay, r)
	if ax != bx || ay != by {
		disc(s.z, bx, by, r)
		quad(s.z, ax, ay, bx, by, r)
	}
	s.z.Draw(s.img, b0, image.NewUniform(Ink), image.Point{})
}

// quad adds the body of a segment of half-width r.
func quad(z *vector.Rasterizer, ax, ay, bx, by, r float32) {
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	nx, ny := -dy/l*r, dx/l*r

	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}

// disc adds a circle of radius r around (cx, cy), wound like quad.
func disc(z *vector.Rasterizer, cx, cy, r float32) {
	for i := 0; i < capSides; i++ {
		theta := -2 * math.Pi * float64(i) / capSides
		x := cx + r*float32(math.Cos(theta))
		y := cy + r*float32(math.Sin(theta))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
}
