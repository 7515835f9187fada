// Package dataset loads and holds the volcano catalog consumed by the
// animation. Records are annotated with their extracted eruption year once at
// load time and never mutated afterwards.
package dataset

import (
	"github.com/delorianv/volcano-eruptions/internal/eruption"
)

// Record is a single volcano row from the source CSV.
type Record struct {
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Type         string  `json:"type"`
	LastEruption string  `json:"last_eruption"`

	// EruptionYear is derived from LastEruption at load time. nil when no
	// year could be extracted.
	EruptionYear *int `json:"eruption_year,omitempty"`
}

// Collection is an ordered set of records, one per dataset row.
type Collection struct {
	Records []Record
	Source  string // path the collection was loaded from
	Skipped int    // rows dropped during load (bad coordinates, short rows)
}

// Len returns the number of records.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Records)
}

// FilterByRange returns the records whose eruption year falls inside
// [start, end]. Records without an extracted year are excluded.
func (c *Collection) FilterByRange(start, end int) []Record {
	var out []Record
	for _, r := range c.Records {
		if r.EruptionYear == nil {
			continue
		}
		if *r.EruptionYear >= start && *r.EruptionYear <= end {
			out = append(out, r)
		}
	}
	return out
}

// YearSpan returns the minimum and maximum extracted eruption years. ok is
// false when no record carries a year.
func (c *Collection) YearSpan() (min, max int, ok bool) {
	for _, r := range c.Records {
		if r.EruptionYear == nil {
			continue
		}
		y := *r.EruptionYear
		if !ok {
			min, max, ok = y, y, true
			continue
		}
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return min, max, ok
}

// DefaultRange computes the simulation slider defaults: the earliest eruption
// minus the pre-fade window, floored at eruption.MinYear, up to
// eruption.MaxYear. An empty collection spans the whole timeline.
func (c *Collection) DefaultRange(preFade int) (start, end int) {
	min, _, ok := c.YearSpan()
	if !ok {
		return eruption.MinYear, eruption.MaxYear
	}
	start = min - preFade
	if start > eruption.MinYear {
		// keep at least the full historical slider
		start = eruption.MinYear
	}
	return start, eruption.MaxYear
}

// Undated counts records with no extractable eruption year.
func (c *Collection) Undated() int {
	n := 0
	for _, r := range c.Records {
		if r.EruptionYear == nil {
			n++
		}
	}
	return n
}
