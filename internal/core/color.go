package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI color codes by the platform renderer.
type Color uint8

// Predefined colors. ColorDefault doubles as "empty" for board cells.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
