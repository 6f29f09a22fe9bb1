package config

import (
	"github.com/clyde80/cliclock/internal/clock"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// Color is the palette index given with --color; only used when ColorSet is true
	Color    int
	ColorSet bool

	// TwentyFourHour selects the 24-hour format. It wins over the user config
	// when true or when TwentyFourHourSet is true, so --ttime=false can undo
	// twenty_four_hour = true from the file.
	TwentyFourHour    bool
	TwentyFourHourSet bool

	// NoSeconds hides the seconds field; NoSecondsSet works like TwentyFourHourSet
	NoSeconds    bool
	NoSecondsSet bool

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides merges CLI flags over the user config and validates the result.
// If userConfig is nil, only CLI flag values (when set) and built-in defaults are used.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) (clock.DisplayConfig, error) {
	color := DefaultColor
	twentyFourHour := false
	showSeconds := true

	if userConfig != nil {
		if userConfig.Clock.Color != nil {
			color = *userConfig.Clock.Color
		}
		twentyFourHour = userConfig.Clock.TwentyFourHour
		if userConfig.Clock.ShowSeconds != nil {
			showSeconds = *userConfig.Clock.ShowSeconds
		}
	}

	// CLI flags take precedence
	if overrides.ColorSet {
		color = overrides.Color
	}
	if overrides.TwentyFourHour || overrides.TwentyFourHourSet {
		twentyFourHour = overrides.TwentyFourHour
	}
	if overrides.NoSeconds || overrides.NoSecondsSet {
		showSeconds = !overrides.NoSeconds
	}

	return clock.NewDisplayConfig(color, twentyFourHour, showSeconds, TickInterval)
}

// ThemeName resolves the theme: CLI flag takes precedence, otherwise use user config
func ThemeName(overrides Overrides, userConfig *UserConfig) string {
	if overrides.ThemeName != "" {
		return overrides.ThemeName
	}
	if userConfig != nil {
		return userConfig.Clock.Theme
	}
	return ""
}
