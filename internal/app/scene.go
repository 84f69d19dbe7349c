// Package app wires the parameter store, scroll timeline, renderer, control
// panel and ambience into one per-frame step, independent of the window
// system.
package app

import (
	"log"
	"time"

	"gooey/internal/panel"
	"gooey/internal/params"
	"gooey/internal/scroll"
)

// ReportInterval throttles status updates sent to the control panel.
const ReportInterval = 100 * time.Millisecond

// Renderer is the part of render.Renderer the scene drives.
type Renderer interface {
	Resize(width, height int, dpr float64)
	RenderFrame(now time.Time)
	Apply(c params.Change) error
	Frames() uint64
}

// ProgressSink follows scroll progress, e.g. the ambience player.
type ProgressSink interface {
	SetProgress(v float32)
}

// Action is a scroll command from the keyboard.
type Action int

const (
	LineDown Action = iota
	LineUp
	PageDown
	PageUp
	Home
	End
)

type Scene struct {
	Params   *params.Parameters
	Overlay  scroll.Overlay
	Timeline *scroll.Timeline
	Scroller *scroll.Scroller

	renderer  Renderer
	log       *log.Logger
	wheelStep float64

	changes <-chan params.Change
	report  func(panel.Status)
	sinks   []ProgressSink

	lastFrame  time.Time
	lastReport time.Time
}

type Option func(*Scene)

// WithChanges drains ch before every frame.
func WithChanges(ch <-chan params.Change) Option {
	return func(s *Scene) { s.changes = ch }
}

// WithReport sends throttled frame status to fn.
func WithReport(fn func(panel.Status)) Option {
	return func(s *Scene) { s.report = fn }
}

// WithSink adds a consumer of scroll progress.
func WithSink(sink ProgressSink) Option {
	return func(s *Scene) { s.sinks = append(s.sinks, sink) }
}

// NewScene binds p to a gooey timeline over a page of the given height in
// viewports.
func NewScene(p *params.Parameters, r Renderer, logger *log.Logger, pages, viewport, wheelStep float64, opts ...Option) *Scene {
	s := &Scene{
		Params:    p,
		renderer:  r,
		log:       logger,
		wheelStep: wheelStep,
	}
	s.Timeline = scroll.NewGooeyTimeline(p, &s.Overlay)
	s.Scroller = scroll.NewScroller(pages, viewport, s.Timeline)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resize forwards a window resize to the renderer and the page.
func (s *Scene) Resize(width, height int, dpr float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.renderer.Resize(width, height, dpr)
	s.Scroller.SetViewport(float64(height))
}

// Wheel scrolls by wheel notches; positive notches scroll up, as GLFW reports.
func (s *Scene) Wheel(notches float64) {
	s.Scroller.ScrollBy(-notches * s.wheelStep)
}

func (s *Scene) Do(a Action) {
	switch a {
	case LineDown:
		s.Scroller.ScrollBy(s.wheelStep)
	case LineUp:
		s.Scroller.ScrollBy(-s.wheelStep)
	case PageDown:
		s.Scroller.PageBy(1)
	case PageUp:
		s.Scroller.PageBy(-1)
	case Home:
		s.Scroller.Home()
	case End:
		s.Scroller.End()
	}
}

// Frame applies pending panel edits, draws once and publishes status.
func (s *Scene) Frame(now time.Time) {
	if s.changes != nil {
		panel.Drain(s.changes, func(c params.Change) {
			if err := s.renderer.Apply(c); err != nil {
				s.log.Printf("apply %s: %v", c.Field, err)
			}
		})
	}

	s.renderer.RenderFrame(now)

	for _, sink := range s.sinks {
		sink.SetProgress(s.Params.ScrollProgress)
	}

	var dt time.Duration
	if !s.lastFrame.IsZero() {
		dt = now.Sub(s.lastFrame)
	}
	s.lastFrame = now

	if s.report != nil && now.Sub(s.lastReport) >= ReportInterval {
		s.lastReport = now
		s.report(panel.Status{
			Progress:  s.Params.ScrollProgress,
			Overlay:   s.Overlay,
			FrameTime: dt,
			Frames:    s.renderer.Frames(),
		})
	}
}
