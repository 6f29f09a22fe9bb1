// Package clock holds the display model of the terminal clock: the user
// toggles, the glyph table, time decoding and the viewport layout. Nothing in
// here touches the terminal; the app package paints what this package computes.
package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// NumColors is the size of the foreground palette.
const NumColors = 8

// ErrInvalidColor is returned when a color index falls outside the palette.
var ErrInvalidColor = errors.New("invalid color number")

// colorNames indexes the palette in terminal color order.
var colorNames = [NumColors]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// ColorName returns the palette name for index, or "" if out of range.
func ColorName(index int) string {
	if !ValidColor(index) {
		return ""
	}
	return colorNames[index]
}

// ValidColor reports whether index selects a palette entry.
func ValidColor(index int) bool {
	return index >= 0 && index < NumColors
}

// ValidColors lists every palette entry as "name (index)".
func ValidColors() string {
	parts := make([]string, NumColors)
	for i, name := range colorNames {
		parts[i] = fmt.Sprintf("%s (%d)", name, i)
	}
	return strings.Join(parts, ", ")
}

// DisplayConfig holds the settings that the user can flip while the clock runs.
type DisplayConfig struct {
	ColorIndex     int
	TwentyFourHour bool
	ShowSeconds    bool

	// TickInterval is the idle delay between two samples. It is fixed for
	// the lifetime of the clock.
	TickInterval time.Duration
}

// NewDisplayConfig validates the color index and returns a config.
func NewDisplayConfig(colorIndex int, twentyFourHour, showSeconds bool, tick time.Duration) (DisplayConfig, error) {
	if !ValidColor(colorIndex) {
		return DisplayConfig{}, fmt.Errorf("%w: %d (valid colors are %s)", ErrInvalidColor, colorIndex, ValidColors())
	}
	if tick <= 0 {
		return DisplayConfig{}, fmt.Errorf("tick interval must be positive, got %s", tick)
	}
	return DisplayConfig{
		ColorIndex:     colorIndex,
		TwentyFourHour: twentyFourHour,
		ShowSeconds:    showSeconds,
		TickInterval:   tick,
	}, nil
}

// NextColor advances a color index cyclically through the palette.
func NextColor(index int) int {
	if index < NumColors-1 {
		return index + 1
	}
	return 0
}
