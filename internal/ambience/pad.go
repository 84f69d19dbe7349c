// Package ambience plays an optional procedural pad that opens up as the page
// scrolls.
package ambience

import (
	"math"
	"sync/atomic"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	Format       = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Am9 voicing, low to high.
var chord = []float64{110.0, 164.81, 220.0, 261.63, 329.63, 493.88}

// Pad is an endless io.Reader of stereo float32 frames. Progress may be set
// from any goroutine.
type Pad struct {
	progress atomic.Uint32
	t        float64
	seed     uint64
	lp       float64
}

func NewPad(seed uint64) *Pad {
	return &Pad{seed: seed | 1}
}

// SetProgress sets the scroll progress the pad follows, clamped to [0,1].
func (p *Pad) SetProgress(v float32) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	p.progress.Store(math.Float32bits(v))
}

func (p *Pad) Progress() float32 {
	return math.Float32frombits(p.progress.Load())
}

func (p *Pad) Read(buf []byte) (int, error) {
	frames := len(buf) / 8
	if frames == 0 {
		return 0, nil
	}
	prog := float64(p.Progress())
	level := 0.25 + 0.55*prog
	brightness := 0.3 + 2.2*prog
	// one-pole lowpass on the noise bed; opens with progress
	alpha := 0.02 + 0.2*prog
	dt := 1.0 / SampleRate

	for i := 0; i < frames; i++ {
		lfo := 0.5 + 0.5*math.Sin(2*math.Pi*0.07*p.t)
		var l, r float64
		for j, f := range chord {
			v := fm(p.t, f, 2.0, brightness*(0.4+0.6*lfo)) / float64(len(chord))
			// alternate voices between channels
			if j%2 == 0 {
				l += v * 0.7
				r += v * 0.3
			} else {
				l += v * 0.3
				r += v * 0.7
			}
		}
		p.lp += alpha * (lcg(&p.seed) - p.lp)
		air := p.lp * 0.15 * prog

		l = softSat((l + air) * level)
		r = softSat((r + air) * level)
		putStereoF32LR(buf, i, l, r)
		p.t += dt
	}
	return frames * 8, nil
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns noise in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// softSat saturates gently into [-1,1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// putStereoF32LR writes a float32 LE stereo frame at frame index i.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}
