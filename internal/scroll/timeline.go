// Package scroll maps a virtual page scroll offset onto a timeline of tweens
// that drive the scroll progress parameter and the overlay elements.
package scroll

import "math"

const (
	DefaultDuration = 0.5
)

// Ease maps normalized time in [0,1] to eased progress.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

// Power1Out decelerates quadratically.
func Power1Out(t float64) float64 { return 1 - (1-t)*(1-t) }

// Tween interpolates one value between From and To over [Start, Start+Duration]
// of timeline time and writes it through Set.
type Tween struct {
	Name     string
	Start    float64
	Duration float64
	From, To float64
	Ease     Ease
	Set      func(v float64)
}

// Value returns the tween's value at timeline time t.
func (tw Tween) Value(t float64) float64 {
	local := 1.0
	if tw.Duration > 0 {
		local = clamp01((t - tw.Start) / tw.Duration)
	} else if t < tw.Start {
		local = 0
	}
	return tw.From + (tw.To-tw.From)*tw.Ease(local)
}

func (tw Tween) End() float64 { return tw.Start + tw.Duration }

// Timeline is a set of tweens scrubbed by a single progress value.
type Timeline struct {
	tweens   []Tween
	duration float64
	progress float64
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

// Add appends tw. A zero duration becomes DefaultDuration and a nil ease
// becomes Power1Out.
func (tl *Timeline) Add(tw Tween) *Timeline {
	if tw.Duration == 0 {
		tw.Duration = DefaultDuration
	}
	if tw.Ease == nil {
		tw.Ease = Power1Out
	}
	tl.tweens = append(tl.tweens, tw)
	tl.duration = math.Max(tl.duration, tw.End())
	return tl
}

// Duration is the end time of the last tween.
func (tl *Timeline) Duration() float64 { return tl.duration }

func (tl *Timeline) Progress() float64 { return tl.progress }

// SetProgress moves the playhead to p of the total duration and applies every
// tween.
func (tl *Timeline) SetProgress(p float64) {
	tl.progress = clamp01(p)
	t := tl.progress * tl.duration
	for _, tw := range tl.tweens {
		if tw.Set != nil {
			tw.Set(tw.Value(t))
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
