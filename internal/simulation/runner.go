package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/eruption"
)

// Renderer receives each computed frame. Implementations draw a map, write a
// line of text, push JSON; the runner does not care.
type Renderer interface {
	RenderFrame(frame Frame) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(frame Frame) error

func (f RendererFunc) RenderFrame(frame Frame) error { return f(frame) }

// Options configures a Runner sweep.
type Options struct {
	StartYear int
	EndYear   int
	Speed     int // frames per second, clamped to [1,100]
	PreFade   int // zero means eruption.DefaultPreFade
	PostFade  int // zero means eruption.DefaultPostFade
}

// Runner sweeps the simulated year across a range, rendering one frame per
// year with a delay of 1/speed seconds between frames.
type Runner struct {
	records  []dataset.Record
	renderer Renderer
	opts     Options
	clock    clockwork.Clock
}

// NewRunner builds a runner over the collection's records. Returns an error
// when the year range is inverted.
func NewRunner(c *dataset.Collection, renderer Renderer, opts Options) (*Runner, error) {
	if opts.StartYear > opts.EndYear {
		return nil, fmt.Errorf("invalid simulation range: start %d after end %d", opts.StartYear, opts.EndYear)
	}
	if opts.PreFade == 0 {
		opts.PreFade = eruption.DefaultPreFade
	}
	if opts.PostFade == 0 {
		opts.PostFade = eruption.DefaultPostFade
	}
	opts.Speed = eruption.ClampSpeed(opts.Speed)

	return &Runner{
		records:  c.Records,
		renderer: renderer,
		opts:     opts,
		clock:    clockwork.NewRealClock(),
	}, nil
}

// SetClock swaps the time source. Tests inject a fake clock so sweeps do not
// sleep; passing nil restores real time.
func (r *Runner) SetClock(c clockwork.Clock) {
	if c == nil {
		r.clock = clockwork.NewRealClock()
		return
	}
	r.clock = c
}

// Delay returns the frame delay derived from the clamped speed.
func (r *Runner) Delay() time.Duration {
	return time.Second / time.Duration(r.opts.Speed)
}

// Run sweeps from StartYear to EndYear inclusive. Each iteration computes a
// frame, hands it to the renderer, then waits one frame delay. Cancelling the
// context stops the sweep between frames.
func (r *Runner) Run(ctx context.Context) error {
	delay := r.Delay()
	for year := r.opts.StartYear; year <= r.opts.EndYear; year++ {
		frame := ComputeFrame(r.records, year, r.opts.PreFade, r.opts.PostFade)
		if err := r.renderer.RenderFrame(frame); err != nil {
			return fmt.Errorf("render year %d: %w", year, err)
		}

		if year == r.opts.EndYear {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.clock.After(delay):
		}
	}
	return nil
}

// TotalFrames returns the number of frames the sweep will render.
func (r *Runner) TotalFrames() int {
	return r.opts.EndYear - r.opts.StartYear + 1
}
