package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	infoStyle    lipgloss.Style
	dimStyle     lipgloss.Style
	activeStyle  lipgloss.Style
	dormantStyle lipgloss.Style
)

func init() {
	initStyles()
}

func initStyles() {
	if !IsTerminal() {
		successStyle = lipgloss.NewStyle()
		errorStyle = lipgloss.NewStyle()
		warningStyle = lipgloss.NewStyle()
		infoStyle = lipgloss.NewStyle()
		dimStyle = lipgloss.NewStyle()
		activeStyle = lipgloss.NewStyle()
		dormantStyle = lipgloss.NewStyle()
		return
	}

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dormantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// Success renders success text.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error renders error text.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning renders warning text.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info renders info text.
func Info(text string) string {
	return infoStyle.Render(text)
}

// Dim renders dim text.
func Dim(text string) string {
	return dimStyle.Render(text)
}

// Active renders erupting-volcano text.
func Active(text string) string {
	return activeStyle.Render(text)
}

// Dormant renders dormant-volcano text.
func Dormant(text string) string {
	return dormantStyle.Render(text)
}

// SuccessMsg prints a success message.
func SuccessMsg(format string, args ...interface{}) {
	fmt.Println(Success("✓") + " " + fmt.Sprintf(format, args...))
}

// ErrorMsg prints an error message.
func ErrorMsg(format string, args ...interface{}) {
	fmt.Println(Error("✗") + " " + fmt.Sprintf(format, args...))
}

// WarningMsg prints a warning message.
func WarningMsg(format string, args ...interface{}) {
	fmt.Println(Warning("⚠") + " " + fmt.Sprintf(format, args...))
}

// InfoMsg prints an info message.
func InfoMsg(format string, args ...interface{}) {
	fmt.Println(Info("ℹ") + " " + fmt.Sprintf(format, args...))
}
