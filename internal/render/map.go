// Package render draws simulation frames for terminals: a character-grid
// world map with fading markers, and a plain-text renderer for non-TTY
// streams. Both consume frames computed elsewhere; no activity math happens
// here.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/eruption"
	"github.com/delorianv/volcano-eruptions/internal/simulation"
)

const (
	dormantMarker = '·'
	activeMarker  = '●'
)

var dormantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))

// Map projects volcano markers onto a width x height character grid using an
// equirectangular projection and colors active markers by fade intensity.
type Map struct {
	width  int
	height int
}

// NewMap creates a map grid. Dimensions below 2 are raised to 2.
func NewMap(width, height int) *Map {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}
	return &Map{width: width, height: height}
}

// Resize changes the grid dimensions.
func (m *Map) Resize(width, height int) {
	if width >= 2 {
		m.width = width
	}
	if height >= 2 {
		m.height = height
	}
}

// Project maps a latitude/longitude pair to a grid cell.
func (m *Map) Project(lat, lon float64) (x, y int) {
	x = int((lon + 180) / 360 * float64(m.width))
	y = int((90 - lat) / 180 * float64(m.height))
	if x < 0 {
		x = 0
	}
	if x >= m.width {
		x = m.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= m.height {
		y = m.height - 1
	}
	return x, y
}

// Render draws one frame. frame.States must run parallel to records, which is
// what simulation.ComputeFrame produces. Active markers overwrite dormant
// ones in shared cells; among active markers the stronger fade wins.
func (m *Map) Render(records []dataset.Record, frame simulation.Frame) string {
	cells := make([]rune, m.width*m.height)
	alphas := make([]int, m.width*m.height)
	for i := range cells {
		cells[i] = ' '
		alphas[i] = -1
	}

	for i, rec := range records {
		if i >= len(frame.States) {
			break
		}
		x, y := m.Project(rec.Latitude, rec.Longitude)
		idx := y*m.width + x
		state := frame.States[i]

		if state.Active {
			if cells[idx] != activeMarker || state.Alpha > alphas[idx] {
				cells[idx] = activeMarker
				alphas[idx] = state.Alpha
			}
		} else if cells[idx] == ' ' {
			cells[idx] = dormantMarker
		}
	}

	var lines []string
	for y := 0; y < m.height; y++ {
		var line strings.Builder
		for x := 0; x < m.width; x++ {
			idx := y*m.width + x
			switch cells[idx] {
			case activeMarker:
				line.WriteString(activeStyle(alphas[idx]).Render(string(activeMarker)))
			case dormantMarker:
				line.WriteString(dormantStyle.Render(string(dormantMarker)))
			default:
				line.WriteRune(' ')
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// activeStyle maps a fade alpha to a red shade: dark red at the window edges,
// full red at the eruption year.
func activeStyle(alpha int) lipgloss.Style {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > eruption.PeakAlpha {
		alpha = eruption.PeakAlpha
	}
	red := 95 + alpha*160/eruption.PeakAlpha
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x0000", red))).Bold(true)
}

// Legend returns the marker legend line.
func Legend() string {
	return activeStyle(eruption.PeakAlpha).Render(string(activeMarker)) + " erupting   " +
		dormantStyle.Render(string(dormantMarker)) + " dormant"
}
