package ui

import "time"

// Fixed layout dimensions, matching the dashboard mockup.
const (
	// MenuWidth is the fixed width of the navigation column.
	MenuWidth = 20

	// InfoHeight is the height of the info strip, borders included.
	InfoHeight = 5

	// InputHeight is the height of the bottom input box, borders included.
	InputHeight = 3

	// ChromeHeight accounts for the header line and the hint bar.
	ChromeHeight = 2

	// MinWidth and MinHeight are the smallest window the full layout fits
	// in; below either, the view shows a resize hint instead.
	MinWidth  = 40
	MinHeight = 12
)

// DefaultTick is the fallback render interval when none is configured.
const DefaultTick = 100 * time.Millisecond
