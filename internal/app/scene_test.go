package app

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"gooey/internal/panel"
	"gooey/internal/params"
)

type fakeRenderer struct {
	p       *params.Parameters
	resizes [][3]float64
	frames  uint64
	applied []params.Change
	// scroll progress seen by each frame
	seen []float32
}

func (r *fakeRenderer) Resize(w, h int, dpr float64) {
	r.resizes = append(r.resizes, [3]float64{float64(w), float64(h), dpr})
}

func (r *fakeRenderer) RenderFrame(time.Time) {
	r.frames++
	r.seen = append(r.seen, r.p.ScrollProgress)
}

func (r *fakeRenderer) Apply(c params.Change) error {
	if err := r.p.Set(c); err != nil {
		return err
	}
	r.applied = append(r.applied, c)
	return nil
}

func (r *fakeRenderer) Frames() uint64 { return r.frames }

type sink struct{ last float32 }

func (s *sink) SetProgress(v float32) { s.last = v }

func newScene(opts ...Option) (*Scene, *fakeRenderer, *bytes.Buffer) {
	p := params.Default()
	r := &fakeRenderer{p: p}
	buf := &bytes.Buffer{}
	s := NewScene(p, r, log.New(buf, "", 0), 3, 600, 60, opts...)
	return s, r, buf
}

func TestWheelDrivesScrollProgress(t *testing.T) {
	s, r, _ := newScene()
	t0 := time.Now()

	s.Frame(t0)
	s.Wheel(-10) // 600px down a 1200px region
	s.Frame(t0.Add(16 * time.Millisecond))

	if r.seen[0] != 0 {
		t.Errorf("expected progress 0 before scrolling, got %f", r.seen[0])
	}
	if r.seen[1] <= 0 || r.seen[1] > 1 {
		t.Errorf("expected progress in (0,1], got %f", r.seen[1])
	}

	s.Wheel(100)
	if s.Params.ScrollProgress != 0 {
		t.Errorf("expected scrolling up past the top to reset progress, got %f", s.Params.ScrollProgress)
	}
}

func TestActions(t *testing.T) {
	s, _, _ := newScene()

	s.Do(End)
	if s.Params.ScrollProgress != 1 || s.Overlay.ContentOpacity != 1 {
		t.Errorf("expected end of page, got %f", s.Params.ScrollProgress)
	}
	s.Do(PageUp)
	s.Do(PageUp)
	if s.Scroller.Offset() != 0 {
		t.Errorf("expected top after two pages up, got %f", s.Scroller.Offset())
	}
	s.Do(PageDown)
	if s.Scroller.Progress() != 0.5 {
		t.Errorf("expected half way, got %f", s.Scroller.Progress())
	}
	s.Do(LineDown)
	s.Do(LineUp)
	if s.Scroller.Progress() != 0.5 {
		t.Errorf("expected line down/up to cancel, got %f", s.Scroller.Progress())
	}
	s.Do(Home)
	if s.Scroller.Offset() != 0 {
		t.Errorf("expected home, got %f", s.Scroller.Offset())
	}
}

func TestResize(t *testing.T) {
	s, r, _ := newScene()
	s.Do(End)

	s.Resize(1024, 768, 3)
	s.Resize(0, 768, 1)

	if len(r.resizes) != 1 {
		t.Fatalf("expected a single resize, got %d", len(r.resizes))
	}
	if r.resizes[0] != [3]float64{1024, 768, 3} {
		t.Errorf("unexpected resize %v", r.resizes[0])
	}
	if s.Scroller.Progress() != 1 {
		t.Errorf("expected progress kept, got %f", s.Scroller.Progress())
	}
}

func TestFrameAppliesChangesBeforeDrawing(t *testing.T) {
	ch := make(chan params.Change, 4)
	s, r, logBuf := newScene(WithChanges(ch))

	ch <- params.Change{Field: params.FieldSeed, Value: 0.9}
	ch <- params.Change{Field: params.FieldPageColor, Page: "bogus"}
	s.Frame(time.Now())

	if len(r.applied) != 1 || r.applied[0].Field != params.FieldSeed {
		t.Fatalf("expected seed change applied, got %+v", r.applied)
	}
	if s.Params.Seed != 0.9 {
		t.Errorf("expected seed 0.9, got %f", s.Params.Seed)
	}
	if !strings.Contains(logBuf.String(), "apply page color") {
		t.Errorf("expected bad change logged, got %q", logBuf.String())
	}
	if r.frames != 1 {
		t.Errorf("expected 1 frame, got %d", r.frames)
	}
}

func TestFrameFeedsSinksAndThrottlesReports(t *testing.T) {
	snk := &sink{}
	var reports []panel.Status
	s, _, _ := newScene(WithSink(snk), WithReport(func(st panel.Status) { reports = append(reports, st) }))

	s.Do(End)
	t0 := time.Now()
	for i := 0; i < 12; i++ {
		s.Frame(t0.Add(time.Duration(i) * 20 * time.Millisecond))
	}

	if snk.last != 1 {
		t.Errorf("expected sink to follow progress, got %f", snk.last)
	}
	// frames at 0..220ms: reports at 0, 100, 200
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	if reports[1].FrameTime != 20*time.Millisecond {
		t.Errorf("expected 20ms frame time, got %v", reports[1].FrameTime)
	}
	if reports[2].Frames != 11 || reports[2].Progress != 1 {
		t.Errorf("unexpected report %+v", reports[2])
	}
}
