package signature

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"golang.org/x/image/vector"

	"everafter/internal/domain"
)

const (
	// DefaultWidth is used when the container width is unknown.
	DefaultWidth = 320
	// DefaultHeight is the fixed CSS height of the signature box.
	DefaultHeight = 140
	// PenWidth is the stroke width in CSS pixels.
	PenWidth = 2.2

	// Geometry is clamped to these bounds so every export stays within what
	// ParseDataURL accepts.
	MaxWidth  = 1024
	MaxHeight = 512
	MaxScale  = 4.0
)

var (
	// Ink is the pen colour (#1b1915).
	Ink = color.RGBA{R: 0x1b, G: 0x19, B: 0x15, A: 0xff}
	// Background is the paper colour (#fefbf7).
	Background = color.RGBA{R: 0xfe, G: 0xfb, B: 0xf7, A: 0xff}
)

// Point is a pointer position in CSS pixels relative to the top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Surface is a resizable drawing surface. The zero value is not usable; call New.
type Surface struct {
	mu sync.Mutex

	width, height int
	scale         float64

	img     *image.RGBA
	z       *vector.Rasterizer
	drawing bool
	last    Point
}

var _ domain.SignaturePad = (*Surface)(nil)

// New allocates a blank surface of width x height CSS pixels at the given
// device pixel ratio. Non-positive arguments fall back to the defaults.
func New(width, height int, scale float64) *Surface {
	s := &Surface{}
	s.Resize(width, height, scale)
	return s
}

// Resize reallocates the pixel buffer for the new geometry. Prior strokes are
// discarded and any active stroke ends. Non-positive values fall back to the
// defaults and oversized ones are clamped to MaxWidth, MaxHeight and MaxScale.
func (s *Surface) Resize(width, height int, scale float64) {
	width = clampInt(width, DefaultWidth, MaxWidth)
	height = clampInt(height, DefaultHeight, MaxHeight)
	switch {
	case !(scale > 0):
		scale = 1
	case scale > MaxScale:
		scale = MaxScale
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.width, s.height, s.scale = width, height, scale
	pw, ph := int(float64(width)*scale), int(float64(height)*scale)
	s.img = image.NewRGBA(image.Rect(0, 0, pw, ph))
	s.z = vector.NewRasterizer(pw, ph)
	s.drawing = false
	s.fill()
}

func clampInt(v, def, hi int) int {
	switch {
	case v <= 0:
		return def
	case v > hi:
		return hi
	}
	return v
}

// Size reports the CSS geometry and pixel ratio.
func (s *Surface) Size() (width, height int, scale float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height, s.scale
}

// BeginStroke starts a new path at p. It is a no-op while a stroke is active.
func (s *Surface) BeginStroke(p Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawing {
		return
	}
	s.drawing = true
	s.last = p
}

// ExtendStroke draws a segment from the last point to p while a stroke is
// active and moves the cursor to p.
func (s *Surface) ExtendStroke(p Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.drawing {
		return
	}
	s.segment(s.last, p)
	s.last = p
}

// EndStroke lifts the pen. Drawn content stays.
func (s *Surface) EndStroke() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawing = false
}

// Drawing reports whether a stroke is active.
func (s *Surface) Drawing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawing
}

// Reset paints the whole surface with the background colour.
func (s *Surface) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fill()
}

// HasSignature reports whether any pixel differs from the background.
func (s *Surface) HasSignature() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !blankRGBA(s.img, Background)
}

// Export encodes the current pixels as PNG. The surface is not modified and
// repeated calls without new strokes return identical bytes.
func (s *Surface) Export() (domain.SignatureArtifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, s.img); err != nil {
		return domain.SignatureArtifact{}, fmt.Errorf("encode signature: %w", err)
	}
	return domain.SignatureArtifact{PNG: buf.Bytes()}, nil
}

func (s *Surface) fill() {
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = Background.R
		pix[i+1] = Background.G
		pix[i+2] = Background.B
		pix[i+3] = Background.A
	}
}

func blankRGBA(img *image.RGBA, bg color.RGBA) bool {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != bg.R || pix[i+1] != bg.G || pix[i+2] != bg.B || pix[i+3] != bg.A {
			return false
		}
	}
	return true
}
