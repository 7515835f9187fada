package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Table renders an aligned box-drawing table, the data-table view of the
// visualization.
type Table struct {
	headers  []string
	rows     [][]string
	maxWidth int
	writer   io.Writer
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:  headers,
		maxWidth: 120,
		writer:   os.Stdout,
	}
}

// SetMaxWidth sets the maximum total table width.
func (t *Table) SetMaxWidth(width int) {
	t.maxWidth = width
}

// SetWriter redirects output, mainly for tests.
func (t *Table) SetWriter(w io.Writer) {
	t.writer = w
}

// AddRow appends a row, padding or dropping cells to the header width.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table.
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	totalWidth := 0
	for i, h := range t.headers {
		widths[i] = len(h)
		for _, row := range t.rows {
			if len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
		widths[i] += 2
		totalWidth += widths[i] + 1
	}

	// Shrink widest columns until the table fits.
	if totalWidth > t.maxWidth {
		excess := totalWidth - t.maxWidth
		for excess > 0 {
			maxIdx := 0
			for i := 1; i < len(widths); i++ {
				if widths[i] > widths[maxIdx] {
					maxIdx = i
				}
			}
			if widths[maxIdx] <= 10 {
				break
			}
			widths[maxIdx]--
			excess--
		}
	}

	t.rule("┌", "┬", "┐", widths)
	t.line(t.headers, widths)
	t.rule("├", "┼", "┤", widths)
	for _, row := range t.rows {
		t.line(row, widths)
	}
	t.rule("└", "┴", "┘", widths)
}

func (t *Table) rule(left, mid, right string, widths []int) {
	fmt.Fprint(t.writer, left)
	for i, w := range widths {
		fmt.Fprint(t.writer, strings.Repeat("─", w))
		if i < len(widths)-1 {
			fmt.Fprint(t.writer, mid)
		}
	}
	fmt.Fprintln(t.writer, right)
}

func (t *Table) line(cells []string, widths []int) {
	fmt.Fprint(t.writer, "│")
	for i := range t.headers {
		val := ""
		if i < len(cells) {
			val = cells[i]
		}
		fmt.Fprintf(t.writer, " %-*s│", widths[i]-2, truncate(val, widths[i]-2))
	}
	fmt.Fprintln(t.writer)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
