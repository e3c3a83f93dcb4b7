package signature

// Recording is a captured pointer session: the surface geometry plus each
// stroke's points in order. It lets a signature drawn elsewhere be replayed
// onto a fresh surface.
type Recording struct {
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Scale   float64   `json:"scale"`
	Strokes [][]Point `json:"strokes"`
}

// Replay draws every stroke in r onto s, which is resized to r's geometry
// first. The geometry is clamped as Resize does; points off the surface are
// clipped.
func (r Recording) Replay(s *Surface) {
	s.Resize(r.Width, r.Height, r.Scale)
	for _, stroke := range r.Strokes {
		if len(stroke) == 0 {
			continue
		}
		s.BeginStroke(stroke[0])
		for _, p := range stroke[1:] {
			s.ExtendStroke(p)
		}
		s.EndStroke()
	}
}
