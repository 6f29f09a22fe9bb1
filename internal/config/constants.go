// Package config provides configuration constants, keybinding management, and user settings.
package config

import "time"

// =============================================================================
// Clock Defaults
// =============================================================================

const (
	// DefaultColor is the palette index used when no color is given (blue)
	DefaultColor = 4

	// TickInterval is the delay between two samples of the wall clock.
	// It also bounds key latency.
	TickInterval = 40 * time.Millisecond
)

// =============================================================================
// Rendering
// =============================================================================

const (
	// BlockRune fills lit cells when the terminal cannot paint backgrounds
	BlockRune = '█'

	// BlankRune fills dark cells
	BlankRune = ' '
)

// =============================================================================
// Files
// =============================================================================

const (
	// AppName is the directory name used under the XDG base directories
	AppName = "cliclock"

	// ConfigFileName is the user config path relative to the XDG config home
	ConfigFileName = AppName + "/config.toml"

	// ThemesDirKeep anchors the custom themes directory under the XDG config home
	ThemesDirKeep = AppName + "/themes/.keep"

	// LogFileName is the debug log path relative to the XDG state home
	LogFileName = AppName + "/cliclock.log"

	// DebugEnvVar enables the debug log when set to "1"
	DebugEnvVar = "CLICLOCK_DEBUG"
)
