// Package simulation drives the eruption animation: one frame per simulated
// year, each frame recomputing per-record activity from the eruption model.
package simulation

import (
	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/eruption"
)

// Frame is the activity snapshot for a single simulated year. States runs
// parallel to the record slice the frame was computed from.
type Frame struct {
	Year   int              `json:"year"`
	States []eruption.State `json:"states"`
	Active int              `json:"active"`
}

// ComputeFrame evaluates the activity model for every record at year. This is
// the only per-frame work: eruption years were annotated once at load, and
// the simulated year is passed explicitly rather than held anywhere.
func ComputeFrame(records []dataset.Record, year, preFade, postFade int) Frame {
	frame := Frame{
		Year:   year,
		States: make([]eruption.State, len(records)),
	}
	for i, r := range records {
		state := eruption.ComputeState(r.EruptionYear, year, preFade, postFade)
		frame.States[i] = state
		if state.Active {
			frame.Active++
		}
	}
	return frame
}

// Partition splits record indices into active and dormant sets, the shape
// layered renderers draw from.
func (f Frame) Partition() (active, dormant []int) {
	for i, s := range f.States {
		if s.Active {
			active = append(active, i)
		} else {
			dormant = append(dormant, i)
		}
	}
	return active, dormant
}
