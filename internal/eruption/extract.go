// Package eruption implements the eruption-year extraction and time-based
// activity model behind the animated volcano map.
//
// Both halves are pure functions: ExtractYear pulls a signed year out of a
// free-text "last eruption" field, and ComputeState decides whether a volcano
// is active at a given simulated year and how strongly its marker should glow.
// Any rendering layer (terminal, HTTP, web) drives them from the outside.
package eruption

import (
	"regexp"
	"strconv"
	"strings"
)

// digitRunRegex matches a run of decimal digits with an optional
// immediately-preceding minus sign. Runs are filtered by length afterwards
// because RE2 has no lookarounds to anchor "exactly 3 or 4 digits".
var digitRunRegex = regexp.MustCompile(`-?[0-9]+`)

// ExtractYear scans text for the first contiguous run of exactly 3 or 4
// decimal digits, honoring a minus sign only when it directly precedes the
// run, and returns the parsed year. The second return value is false when no
// such run exists.
//
// Era suffixes are deliberately ignored: "1500 BC" yields 1500, not -1500,
// unless the text carries a literal minus. Runs of 1-2 or 5+ digits never
// match; a longer run is skipped as a whole rather than truncated, so
// "eruption 12345" extracts nothing.
func ExtractYear(text string) (int, bool) {
	for _, run := range digitRunRegex.FindAllString(text, -1) {
		digits := strings.TrimPrefix(run, "-")
		if len(digits) < 3 || len(digits) > 4 {
			continue
		}
		year, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		return year, true
	}
	return 0, false
}

// AnnotateYear is a pointer-returning convenience for record loaders that
// store an absent year as nil.
func AnnotateYear(text string) *int {
	year, ok := ExtractYear(text)
	if !ok {
		return nil
	}
	return &year
}
