package bubblepop

// Viewport measures the play area in px. ok is false while the area
// has no usable size, e.g. before the first layout.
type Viewport interface {
	Size() (w, h float64, ok bool)
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	W, H float64
}

// Size implements Viewport.
func (v FixedViewport) Size() (float64, float64, bool) {
	return v.W, v.H, v.W > 0 && v.H > 0
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() (w, h float64, ok bool)

// Size implements Viewport.
func (f ViewportFunc) Size() (float64, float64, bool) {
	return f()
}
