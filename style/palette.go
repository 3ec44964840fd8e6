// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import "github.com/charmbracelet/lipgloss"

// Standard ANSI 8-color palette.
var (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")
	White  = lipgloss.Color("7")
)

// High-intensity ANSI 16-color palette extension.
var (
	HiRed    = lipgloss.Color("9")
	HiGreen  = lipgloss.Color("10")
	HiYellow = lipgloss.Color("11")
	HiBlue   = lipgloss.Color("12")
	HiPurple = lipgloss.Color("13")
	HiCyan   = lipgloss.Color("14")
	HiWhite  = lipgloss.Color("15")
)

// Application UI scheme.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	AccentColor  = lipgloss.Color("#cba6f7")
	SuccessColor = lipgloss.Color("#a6e3a1")
	WarningColor = lipgloss.Color("#f9e2af")
	ErrorColor   = lipgloss.Color("#f38ba8")
	FaintColor   = Overlay

	BorderColor       = Surface
	ActiveBorderColor = AccentColor
)
