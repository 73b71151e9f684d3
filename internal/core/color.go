package core

// Color represents a foreground color for a screen cell.
// The platform renderer maps each value to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray

	// Brick tiers and sprites use the classic palette.
	ColorBrickStrong // strength 3
	ColorBrickMedium // strength 2
	ColorBrickWeak   // strength 1
	ColorPaddle
	ColorText
)
