package simulation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/eruption"
)

const runnerCSV = `Volcano_Name,Country,Latitude,Longitude,Volcano_Type,Last_Eruption
Pinatubo,Philippines,15.13,120.35,Stratovolcano,1991 CE
Mystery,Iceland,64.0,-19.0,Shield,Unknown
`

func testCollection(t *testing.T) *dataset.Collection {
	t.Helper()
	c, err := dataset.Read(strings.NewReader(runnerCSV))
	require.NoError(t, err)
	return c
}

func TestComputeFrame(t *testing.T) {
	c := testCollection(t)

	frame := ComputeFrame(c.Records, 1991, eruption.DefaultPreFade, eruption.DefaultPostFade)
	assert.Equal(t, 1991, frame.Year)
	require.Len(t, frame.States, 2)
	assert.True(t, frame.States[0].Active)
	assert.Equal(t, eruption.PeakAlpha, frame.States[0].Alpha)
	assert.False(t, frame.States[1].Active, "undated volcano stays dormant")
	assert.Equal(t, 1, frame.Active)

	active, dormant := frame.Partition()
	assert.Equal(t, []int{0}, active)
	assert.Equal(t, []int{1}, dormant)

	frame = ComputeFrame(c.Records, 1500, eruption.DefaultPreFade, eruption.DefaultPostFade)
	assert.Equal(t, 0, frame.Active)
}

func TestRunnerSweep(t *testing.T) {
	c := testCollection(t)

	var frames []Frame
	collect := RendererFunc(func(f Frame) error {
		frames = append(frames, f)
		return nil
	})

	runner, err := NewRunner(c, collect, Options{StartYear: 1976, EndYear: 2006, Speed: 50})
	require.NoError(t, err)
	assert.Equal(t, 31, runner.TotalFrames())
	assert.Equal(t, 20*time.Millisecond, runner.Delay())

	clock := clockwork.NewFakeClock()
	runner.SetClock(clock)

	done := make(chan error, 1)
	go func() { done <- runner.Run(context.Background()) }()

	for i := 0; i < runner.TotalFrames()-1; i++ {
		clock.BlockUntil(1)
		clock.Advance(runner.Delay())
	}
	require.NoError(t, <-done)

	require.Len(t, frames, 31)
	assert.Equal(t, 1976, frames[0].Year)
	assert.Equal(t, 2006, frames[30].Year)

	// The whole sweep sits inside Pinatubo's fade window: every frame active,
	// alpha peaking exactly at the eruption year.
	for i, f := range frames {
		require.Equal(t, 1, f.Active, "frame %d", i)
	}
	assert.Equal(t, 0, frames[0].States[0].Alpha)
	assert.Equal(t, eruption.PeakAlpha, frames[15].States[0].Alpha)
	assert.Equal(t, 0, frames[30].States[0].Alpha)
}

func TestRunnerSingleYearNeverSleeps(t *testing.T) {
	c := testCollection(t)

	n := 0
	runner, err := NewRunner(c, RendererFunc(func(Frame) error {
		n++
		return nil
	}), Options{StartYear: 1991, EndYear: 1991, Speed: 1})
	require.NoError(t, err)

	// No clock advancement needed: the final frame has no trailing delay.
	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, 1, n)
}

func TestRunnerRendererError(t *testing.T) {
	c := testCollection(t)

	boom := errors.New("boom")
	runner, err := NewRunner(c, RendererFunc(func(Frame) error { return boom }),
		Options{StartYear: 1990, EndYear: 1995, Speed: 100})
	require.NoError(t, err)

	err = runner.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRunnerCancellation(t *testing.T) {
	c := testCollection(t)

	runner, err := NewRunner(c, RendererFunc(func(Frame) error { return nil }),
		Options{StartYear: 1900, EndYear: 2000, Speed: 1})
	require.NoError(t, err)

	clock := clockwork.NewFakeClock()
	runner.SetClock(clock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	clock.BlockUntil(1)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestRunnerInvalidRange(t *testing.T) {
	c := testCollection(t)
	_, err := NewRunner(c, RendererFunc(func(Frame) error { return nil }),
		Options{StartYear: 2000, EndYear: 1900})
	require.Error(t, err)
}

func TestRunnerClampsSpeed(t *testing.T) {
	c := testCollection(t)
	runner, err := NewRunner(c, RendererFunc(func(Frame) error { return nil }),
		Options{StartYear: 0, EndYear: 1, Speed: 500})
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, runner.Delay())
}
