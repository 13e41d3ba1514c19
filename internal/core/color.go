package core

// Color represents a foreground color for a screen cell.
// Uses the basic ANSI palette so the field looks the same on any terminal.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)
