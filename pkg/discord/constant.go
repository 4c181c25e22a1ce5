package discord

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	// Embed colors.
	ColorGreen  = 0x00ff00
	ColorOrange = 0xffa500
	ColorRed    = 0xff0000
)
