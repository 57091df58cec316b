package game

import (
	"context"
	"time"
)

// Pacer keeps a loop at a fixed tick by sleeping whatever is left of the tick
// after the frame's work.
type Pacer struct {
	tick  time.Duration
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
	start time.Time
}

func NewPacer(tick time.Duration) *Pacer {
	return &Pacer{tick: tick, now: time.Now, sleep: sleepCtx}
}

// Mark starts timing a frame.
func (p *Pacer) Mark() {
	p.start = p.now()
}

// Remaining is how much of the current tick is left; zero once the frame overran.
func (p *Pacer) Remaining() time.Duration {
	left := p.tick - p.now().Sub(p.start)
	if left < 0 {
		return 0
	}
	return left
}

// Wait sleeps out the rest of the tick, returning early if ctx is cancelled.
func (p *Pacer) Wait(ctx context.Context) error {
	left := p.Remaining()
	if left == 0 {
		return ctx.Err()
	}
	return p.sleep(ctx, left)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
