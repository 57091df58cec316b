package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"gadzooks/input"
	"gadzooks/render"
)

// Frame is what a loop drives each tick. *Scene implements it.
type Frame interface {
	Step(in input.Source) (quit bool)
	Render() error
	Buffer() *render.Buffer
}

// Presenter shows a finished frame buffer.
type Presenter interface {
	Present(buf *render.Buffer) error
}

// Loop runs f at a fixed tick for hosts without a clock of their own. It returns
// nil when the player quits or ctx is cancelled, and the first render or present
// error otherwise.
func Loop(ctx context.Context, f Frame, in input.Source, out Presenter, tick time.Duration) error {
	return loop(ctx, f, in, out, NewPacer(tick))
}

func loop(ctx context.Context, f Frame, in input.Source, out Presenter, pacer *Pacer) error {
	var frames uint64
	defer func() {
		log.WithField("frames", frames).Debug("loop stopped")
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		pacer.Mark()

		if f.Step(in) {
			return nil
		}
		if err := f.Render(); err != nil {
			return fmt.Errorf("render frame %d: %w", frames, err)
		}
		if err := out.Present(f.Buffer()); err != nil {
			return fmt.Errorf("present frame %d: %w", frames, err)
		}
		frames++

		if err := pacer.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}
