package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal frontend.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorStruck // Tint applied to the bird once it has hit something
)
