package eruption

import "fmt"

// Dataset and simulation bounds. The extractor itself never clamps to these;
// they bound the UI's year sliders only.
const (
	MinYear = -4360
	MaxYear = 2023

	MinSpeed = 1
	MaxSpeed = 100
)

// Fade tuning. A volcano is "active" inside the symmetric window
// [year-preFade, year+postFade] around its last eruption.
const (
	BaseAlpha = 100 // dormant grey intensity
	PeakAlpha = 180 // intensity at the eruption year itself

	DefaultPreFade  = 15
	DefaultPostFade = 15
)

// DormantColor is the grey marker used outside the fade window.
var DormantColor = RGBA{200, 200, 200, BaseAlpha}

// RGBA is a red/green/blue/alpha quad in [0,255]. Alpha tops out at PeakAlpha
// for active markers.
type RGBA [4]int

// State is the per-volcano, per-frame activity result.
type State struct {
	Active bool `json:"active"`
	Alpha  int  `json:"alpha"`
}

// Color returns the marker color for the state: grey for dormant volcanoes,
// red with fade intensity for active ones.
func (s State) Color() RGBA {
	if !s.Active {
		return DormantColor
	}
	return RGBA{255, 0, 0, s.Alpha}
}

// ComputeState decides whether a volcano whose last eruption was eruptionYear
// is active at simYear, and with what fade intensity.
//
// A nil eruptionYear, or a simYear outside [eruptionYear-preFade,
// eruptionYear+postFade], is dormant at BaseAlpha. Inside the window the
// intensity ramps linearly from 0 at the window edges to PeakAlpha at the
// eruption year; both edges are inclusive and still count as active.
//
// Each call is independent: callers pass simYear explicitly per frame, there
// is no hidden state. preFade and postFade must both be positive; violating
// that is a contract error and panics rather than dividing by zero.
func ComputeState(eruptionYear *int, simYear, preFade, postFade int) State {
	if preFade <= 0 || postFade <= 0 {
		panic(fmt.Sprintf("eruption: fade windows must be positive (pre=%d post=%d)", preFade, postFade))
	}

	if eruptionYear == nil || simYear < *eruptionYear-preFade || simYear > *eruptionYear+postFade {
		return State{Active: false, Alpha: BaseAlpha}
	}

	var f float64
	if simYear <= *eruptionYear {
		// Approaching the eruption: 0 at window open, 1 at the eruption year.
		f = float64(simYear-(*eruptionYear-preFade)) / float64(preFade)
	} else {
		// Receding: back down to 0 at window close.
		f = 1 - float64(simYear-*eruptionYear)/float64(postFade)
	}

	return State{Active: true, Alpha: int(f * PeakAlpha)}
}

// ClampSpeed bounds an animation speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
