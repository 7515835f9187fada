package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable("NAME", "COUNTRY")
	table.SetWriter(&buf)
	table.AddRow("Etna", "Italy")
	table.AddRow("Thera", "Greece")
	table.Render()

	out := buf.String()
	for _, want := range []string{"NAME", "COUNTRY", "Etna", "Italy", "Thera", "Greece", "┌", "┼", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestTableShortRowPadded(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable("A", "B", "C")
	table.SetWriter(&buf)
	table.AddRow("only")
	table.Render()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 output lines, got %d:\n%s", len(lines), buf.String())
	}
}

func TestTableMaxWidthTruncates(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("x", 40)
	table := NewTable("NAME", "VALUE")
	table.SetWriter(&buf)
	table.SetMaxWidth(30)
	table.AddRow("a", long)
	table.Render()

	out := buf.String()
	if strings.Contains(out, long) {
		t.Error("long cell was not truncated")
	}
	if !strings.Contains(out, "...") {
		t.Errorf("truncated cell missing ellipsis:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"volcano", 10, "volcano"},
		{"volcano", 7, "volcano"},
		{"volcanoes", 7, "volc..."},
		{"volcano", 2, "vo"},
		{"volcano", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestDisableColors(t *testing.T) {
	DisableColors()
	if IsTerminal() {
		t.Fatal("IsTerminal() should be false after DisableColors")
	}
	for name, fn := range map[string]func(string) string{
		"Success": Success,
		"Error":   Error,
		"Dim":     Dim,
		"Active":  Active,
		"Dormant": Dormant,
	} {
		if got := fn("text"); got != "text" {
			t.Errorf("%s(\"text\") = %q, want plain text", name, got)
		}
	}
}

func TestFormatYear(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1991, "1991 CE"},
		{-1610, "1610 BCE"},
		{0, "0 CE"},
	}
	for _, tt := range tests {
		if got := FormatYear(tt.year); got != tt.want {
			t.Errorf("FormatYear(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}
