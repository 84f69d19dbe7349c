package scroll

// Scroller is a virtual page Pages viewports tall. The trigger region runs
// from the page top meeting the viewport top to the page bottom meeting the
// viewport bottom, and the timeline is scrubbed directly by the position in it.
type Scroller struct {
	pages    float64
	viewport float64
	offset   float64
	timeline *Timeline
}

// NewScroller returns a scroller at the top of the page. pages below 1 are
// treated as 1.
func NewScroller(pages, viewport float64, tl *Timeline) *Scroller {
	if pages < 1 {
		pages = 1
	}
	s := &Scroller{pages: pages, viewport: viewport, timeline: tl}
	s.apply()
	return s
}

// maxOffset is the scroll distance of the trigger region in pixels.
func (s *Scroller) maxOffset() float64 {
	m := (s.pages - 1) * s.viewport
	if m < 0 {
		return 0
	}
	return m
}

// Progress is 0 at the start of the trigger region and 1 at its end. A page
// that does not scroll reports 0.
func (s *Scroller) Progress() float64 {
	m := s.maxOffset()
	if m == 0 {
		return 0
	}
	return clamp01(s.offset / m)
}

func (s *Scroller) Offset() float64 { return s.offset }

// ScrollBy moves the page by dy pixels, positive towards the bottom.
func (s *Scroller) ScrollBy(dy float64) {
	s.ScrollTo(s.offset + dy)
}

func (s *Scroller) ScrollTo(y float64) {
	m := s.maxOffset()
	switch {
	case y < 0:
		y = 0
	case y > m:
		y = m
	}
	s.offset = y
	s.apply()
}

// PageBy scrolls by n viewport heights.
func (s *Scroller) PageBy(n float64) {
	s.ScrollBy(n * s.viewport)
}

func (s *Scroller) Home() { s.ScrollTo(0) }

func (s *Scroller) End() { s.ScrollTo(s.maxOffset()) }

// SetViewport changes the viewport height and keeps the current progress.
func (s *Scroller) SetViewport(h float64) {
	p := s.Progress()
	s.viewport = h
	s.offset = p * s.maxOffset()
	s.apply()
}

func (s *Scroller) apply() {
	if s.timeline != nil {
		s.timeline.SetProgress(s.Progress())
	}
}
