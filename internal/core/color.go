package core

// Color represents a foreground color for a screen cell.
// Mapped to terminal colors by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorBrightRed
	ColorBrightBlue
	ColorYellow
	ColorWhite
	ColorGray
)
