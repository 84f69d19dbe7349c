package ambience

import (
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// Player owns the audio context and the pad player.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	pad    *Pad
	player oto.Player
}

// Start opens the audio device and begins playing the pad once the device is
// ready. Callers should treat an error as soft and continue silently.
func Start(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, Format)
	if err != nil {
		return nil, err
	}
	p := &Player{
		ctx:   ctx,
		ready: ready,
		pad:   NewPad(uint64(time.Now().UnixNano())),
	}
	p.player = ctx.NewPlayer(p.pad)
	p.player.SetVolume(volume)
	go func() {
		<-ready
		p.player.Play()
	}()
	return p, nil
}

// SetProgress forwards the scroll progress to the pad.
func (p *Player) SetProgress(v float32) {
	if p == nil {
		return
	}
	p.pad.SetProgress(v)
}

func (p *Player) Close() error {
	if p == nil || p.player == nil {
		return nil
	}
	return p.player.Close()
}
