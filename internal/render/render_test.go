package render

import (
	"strings"
	"testing"

	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/eruption"
	"github.com/delorianv/volcano-eruptions/internal/simulation"
)

func intPtr(v int) *int { return &v }

func TestProject(t *testing.T) {
	m := NewMap(80, 24)

	tests := []struct {
		name     string
		lat, lon float64
		wantX    int
		wantY    int
	}{
		{"origin", 0, 0, 40, 12},
		{"date line west", 0, -180, 0, 12},
		{"date line east clamps", 0, 180, 79, 12},
		{"north pole", 90, 0, 40, 0},
		{"south pole clamps", -90, 0, 40, 23},
		{"out of range lon clamps", 0, 400, 79, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := m.Project(tt.lat, tt.lon)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Project(%v, %v) = (%d, %d), want (%d, %d)", tt.lat, tt.lon, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRenderMarkers(t *testing.T) {
	records := []dataset.Record{
		{Name: "Pinatubo", Latitude: 15.13, Longitude: 120.35, EruptionYear: intPtr(1991)},
		{Name: "Mystery", Latitude: -40, Longitude: -70},
	}
	m := NewMap(40, 12)

	frame := simulation.ComputeFrame(records, 1991, eruption.DefaultPreFade, eruption.DefaultPostFade)
	out := m.Render(records, frame)

	if lines := strings.Split(out, "\n"); len(lines) != 12 {
		t.Fatalf("Render produced %d lines, want 12", len(lines))
	}
	if !strings.Contains(out, string(activeMarker)) {
		t.Errorf("active marker missing from output")
	}
	if !strings.Contains(out, string(dormantMarker)) {
		t.Errorf("dormant marker missing from output")
	}

	// Outside every fade window both volcanoes are dormant.
	frame = simulation.ComputeFrame(records, 500, eruption.DefaultPreFade, eruption.DefaultPostFade)
	out = m.Render(records, frame)
	if strings.Contains(out, string(activeMarker)) {
		t.Errorf("no volcano should be active in year 500")
	}
}

func TestRenderActiveWinsSharedCell(t *testing.T) {
	// Two volcanoes projecting onto the same cell of a tiny grid.
	records := []dataset.Record{
		{Name: "A", Latitude: 10, Longitude: 10},
		{Name: "B", Latitude: 10, Longitude: 10, EruptionYear: intPtr(1991)},
	}
	m := NewMap(4, 2)

	frame := simulation.ComputeFrame(records, 1991, eruption.DefaultPreFade, eruption.DefaultPostFade)
	out := m.Render(records, frame)
	if !strings.Contains(out, string(activeMarker)) {
		t.Errorf("active marker should win the shared cell")
	}
}

func TestTextRenderer(t *testing.T) {
	records := []dataset.Record{
		{Name: "Pinatubo", EruptionYear: intPtr(1991)},
		{Name: "Etna", EruptionYear: intPtr(1991)},
		{Name: "Mystery"},
	}

	var sb strings.Builder
	r := NewTextRenderer(&sb, records)

	frame := simulation.ComputeFrame(records, 1991, eruption.DefaultPreFade, eruption.DefaultPostFade)
	if err := r.RenderFrame(frame); err != nil {
		t.Fatalf("RenderFrame error: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "1991 CE") {
		t.Errorf("output %q missing year", out)
	}
	if !strings.Contains(out, "Pinatubo, Etna") {
		t.Errorf("output %q missing erupting names", out)
	}

	// Quiet mode drops inactive frames.
	sb.Reset()
	r.Quiet = true
	frame = simulation.ComputeFrame(records, 500, eruption.DefaultPreFade, eruption.DefaultPostFade)
	if err := r.RenderFrame(frame); err != nil {
		t.Fatalf("RenderFrame error: %v", err)
	}
	if sb.Len() != 0 {
		t.Errorf("quiet renderer wrote %q for an inactive frame", sb.String())
	}
}

func TestTextRendererTruncatesNames(t *testing.T) {
	var records []dataset.Record
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		records = append(records, dataset.Record{Name: name, EruptionYear: intPtr(1991)})
	}

	var sb strings.Builder
	r := NewTextRenderer(&sb, records)
	frame := simulation.ComputeFrame(records, 1991, eruption.DefaultPreFade, eruption.DefaultPostFade)
	if err := r.RenderFrame(frame); err != nil {
		t.Fatalf("RenderFrame error: %v", err)
	}
	if !strings.Contains(sb.String(), "and 2 more") {
		t.Errorf("output %q should collapse extra names", sb.String())
	}
}
