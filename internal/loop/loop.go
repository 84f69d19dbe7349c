// Package loop drives a per-frame callback from a host frame source until the
// host closes or the context is cancelled.
package loop

import (
	"context"
	"time"
)

// FrameSource paces frames. Next blocks until the next frame is due and
// reports false once the host has been torn down.
type FrameSource interface {
	Next() bool
}

// Run calls frame once per tick. It returns nil when src is exhausted and
// ctx.Err() when ctx is cancelled. A stopped loop cannot be restarted.
func Run(ctx context.Context, src FrameSource, frame func(now time.Time)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !src.Next() {
			return nil
		}
		frame(time.Now())
	}
}

// Ticker is a FrameSource paced by a fixed interval, for hosts without vsync.
type Ticker struct {
	ctx context.Context
	t   *time.Ticker
}

func NewTicker(ctx context.Context, interval time.Duration) *Ticker {
	return &Ticker{ctx: ctx, t: time.NewTicker(interval)}
}

func (t *Ticker) Next() bool {
	select {
	case <-t.ctx.Done():
		return false
	case <-t.t.C:
		return true
	}
}

func (t *Ticker) Stop() { t.t.Stop() }
