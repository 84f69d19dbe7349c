package scroll

import "gooey/internal/params"

// Overlay is the state of the on-page elements animated alongside the shader.
type Overlay struct {
	ArrowY         float64
	ArrowOpacity   float64
	MessageOpacity float64
	ContentOpacity float64
}

// NewGooeyTimeline binds the scroll progress parameter and the overlay to a
// timeline and applies progress 0.
func NewGooeyTimeline(p *params.Parameters, o *Overlay) *Timeline {
	tl := NewTimeline().
		Add(Tween{
			Name: "scrollProgress", From: 0, To: 1,
			Set: func(v float64) { p.ScrollProgress = float32(v) },
		}).
		Add(Tween{
			Name: "arrow.y", Duration: 0.2, From: 0, To: 50,
			Set: func(v float64) { o.ArrowY = v },
		}).
		Add(Tween{
			Name: "arrow.opacity", Duration: 0.2, From: 1, To: 0,
			Set: func(v float64) { o.ArrowOpacity = v },
		}).
		Add(Tween{
			Name: "message.opacity", From: 1, To: 0,
			Set: func(v float64) { o.MessageOpacity = v },
		}).
		Add(Tween{
			Name: "content.opacity", Start: 0.5, Duration: 0.3, From: 0, To: 1,
			Set: func(v float64) { o.ContentOpacity = v },
		})
	tl.SetProgress(0)
	return tl
}
