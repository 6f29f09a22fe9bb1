// Package theme provides the clock's color palette, optionally taken from a bubbletint theme.
package theme

import (
	"image/color"
	"log"
	"slices"

	"github.com/charmbracelet/x/ansi"
	"github.com/clyde80/cliclock/internal/clock"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
// An unknown name falls back to the "default" tint.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// ListThemes returns the IDs of every built-in and custom theme, sorted.
func ListThemes() []string {
	tint.NewDefaultRegistry()
	if themesDir, err := GetThemesDir(); err == nil {
		_, _ = LoadCustomThemes(themesDir)
	}
	ids := slices.Clone(tint.TintIDs())
	slices.Sort(ids)
	return ids
}

// Palette returns the eight clock colors in terminal order
// (black, red, green, yellow, blue, magenta, cyan, white).
// Without a theme these are the terminal's own ANSI colors 0-7.
func Palette() [clock.NumColors]color.Color {
	return PaletteFor(Current())
}

// PaletteFor returns the eight clock colors of t, or the plain ANSI colors if t is nil.
func PaletteFor(t *tint.Tint) [clock.NumColors]color.Color {
	if t == nil {
		var p [clock.NumColors]color.Color
		for i := range p {
			p[i] = ansi.BasicColor(i)
		}
		return p
	}
	return [clock.NumColors]color.Color{
		t.Black,  // 0
		t.Red,    // 1
		t.Green,  // 2
		t.Yellow, // 3
		t.Blue,   // 4
		t.Purple, // 5
		t.Cyan,   // 6
		t.White,  // 7
	}
}
