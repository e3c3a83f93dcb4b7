// Package signature implements the freehand signature surface.
//
// A Surface is a fixed-size RGBA buffer bound to pointer input: BeginStroke
// starts a path, ExtendStroke draws round-capped segments from the last point,
// EndStroke lifts the pen. Coordinates are in CSS pixels and scaled by the
// device pixel ratio, so the buffer is width*scale by height*scale.
//
// Resize reallocates the buffer and therefore always erases the drawing;
// callers re-run it on every layout change, never scale old pixels.
//
// Export snapshots the pixels as PNG. HasSignature is the coarse "did the
// user sign" check: at least one pixel differs from the background.
package signature
