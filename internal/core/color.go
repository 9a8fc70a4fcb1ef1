package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to a terminal style.
type Color uint8

// Palette drawn by the pong renderer.
const (
	ColorDefault       Color = iota
	ColorWhite               // center net
	ColorGray                // walls, hints
	ColorBrightYellow        // ball
	ColorBrightCyan          // player 1
	ColorBrightMagenta       // player 2
	ColorBrightWhite         // pause banner
)
