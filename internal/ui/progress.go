package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ProgressBar shows a simple determinate progress bar.
type ProgressBar struct {
	total   int
	current int
	width   int
	writer  io.Writer
	label   string
}

// NewProgressBar creates a progress bar over total steps.
func NewProgressBar(total int, label string) *ProgressBar {
	return &ProgressBar{
		total:  total,
		width:  40,
		writer: os.Stdout,
		label:  label,
	}
}

// Increment advances the progress by 1 and redraws.
func (p *ProgressBar) Increment() {
	p.Update(p.current + 1)
}

// Update sets the absolute progress and redraws.
func (p *ProgressBar) Update(current int) {
	p.current = current
	if p.current > p.total {
		p.current = p.total
	}
	p.render()
}

func (p *ProgressBar) render() {
	if p.total <= 0 {
		return
	}
	percent := float64(p.current) / float64(p.total) * 100

	if !IsTerminal() {
		fmt.Fprintf(p.writer, "\r%s: %d/%d (%.1f%%)", p.label, p.current, p.total, percent)
		if p.current >= p.total {
			fmt.Fprintln(p.writer)
		}
		return
	}

	filled := int(float64(p.width) * float64(p.current) / float64(p.total))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.width-filled)
	fmt.Fprintf(p.writer, "\r%s [%s] %d/%d (%.1f%%)", p.label, bar, p.current, p.total, percent)
	if p.current >= p.total {
		fmt.Fprintln(p.writer)
	}
}
