package signature

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"everafter/internal/domain"
)

const (
	// MaxDimension bounds either side of an accepted signature image.
	MaxDimension = 4096
	// MaxPixels bounds the total pixel count of an accepted signature image.
	MaxPixels = 4096 * 2048
)

var (
	// ErrNotPNGDataURL is returned for strings that are not base64 PNG data URLs.
	ErrNotPNGDataURL = errors.New("signature is not a PNG data URL")
	// ErrImageTooLarge is returned before decoding an image whose header
	// declares more than MaxDimension or MaxPixels.
	ErrImageTooLarge = errors.New("signature image is too large")
)

// ParseDataURL decodes a data:image/png;base64 URL into an image. The PNG
// header is checked against MaxDimension and MaxPixels before any pixel data
// is decoded.
func ParseDataURL(s string) (image.Image, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(s), domain.PNGDataURLPrefix)
	if !ok {
		return nil, ErrNotPNGDataURL
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPNGDataURL, err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode signature png: %w", err)
	}
	if cfg.Width > MaxDimension || cfg.Height > MaxDimension || cfg.Width*cfg.Height > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode signature png: %w", err)
	}
	return img, nil
}

// IsBlank reports whether img is pixel-identical to a blank surface. With a
// nil bg, the first pixel stands in for the background, which makes any
// uniform image blank.
func IsBlank(img image.Image, bg color.Color) bool {
	b := img.Bounds()
	if b.Empty() {
		return true
	}
	if bg == nil {
		bg = img.At(b.Min.X, b.Min.Y)
	}
	br, bgG, bb, ba := bg.RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r != br || g != bgG || bl != bb || a != ba {
				return false
			}
		}
	}
	return true
}
