package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/simulation"
	"github.com/delorianv/volcano-eruptions/internal/ui"
)

// maxNamedEruptions bounds how many volcano names a frame line carries before
// collapsing to a count.
const maxNamedEruptions = 4

// TextRenderer implements simulation.Renderer with one summary line per
// frame, suitable for logs and piped output.
type TextRenderer struct {
	w       io.Writer
	records []dataset.Record
	// Quiet suppresses frames with no active volcanoes.
	Quiet bool
}

var _ simulation.Renderer = (*TextRenderer)(nil)

// NewTextRenderer creates a renderer writing to w for the given records.
func NewTextRenderer(w io.Writer, records []dataset.Record) *TextRenderer {
	return &TextRenderer{w: w, records: records}
}

// RenderFrame writes the frame summary line.
func (t *TextRenderer) RenderFrame(frame simulation.Frame) error {
	if t.Quiet && frame.Active == 0 {
		return nil
	}

	line := fmt.Sprintf("%-10s %3d erupting", ui.FormatYear(frame.Year), frame.Active)
	if frame.Active > 0 {
		line += "  " + t.eruptingNames(frame)
	}
	_, err := fmt.Fprintln(t.w, line)
	return err
}

func (t *TextRenderer) eruptingNames(frame simulation.Frame) string {
	var names []string
	active, _ := frame.Partition()
	for _, i := range active {
		if i >= len(t.records) {
			break
		}
		if len(names) == maxNamedEruptions {
			names = append(names, fmt.Sprintf("and %d more", frame.Active-maxNamedEruptions))
			break
		}
		names = append(names, t.records[i].Name)
	}
	return strings.Join(names, ", ")
}
