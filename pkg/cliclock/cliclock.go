// Package cliclock provides the seven-segment terminal clock as a Bubble Tea
// model that can be embedded in other applications or run on its own.
//
// # Basic Usage
//
//	model, err := cliclock.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := tea.NewProgram(model)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
//	model, err := cliclock.New(
//		cliclock.WithColor(2),
//		cliclock.WithTwentyFourHour(true),
//		cliclock.WithSeconds(false),
//		cliclock.WithTheme("nord"),
//	)
package cliclock

import (
	"fmt"
	"time"

	"github.com/clyde80/cliclock/internal/app"
	"github.com/clyde80/cliclock/internal/clock"
	"github.com/clyde80/cliclock/internal/config"
	"github.com/clyde80/cliclock/internal/input"
	"github.com/clyde80/cliclock/internal/theme"
)

// Model is the clock model that implements tea.Model.
type Model = app.Clock

// TerminateMsg stops a running clock when sent to its program.
type TerminateMsg = app.TerminateMsg

// ErrInvalidColor is returned by New for a color outside 0-7.
var ErrInvalidColor = clock.ErrInvalidColor

// Options configures a clock instance.
type Options struct {
	// Color is the palette index 0-7. Default is 4 (blue).
	Color int

	// TwentyFourHour displays 24-hour time.
	TwentyFourHour bool

	// Seconds shows the seconds field. Default is true.
	Seconds bool

	// Theme is the bubbletint theme the eight colors come from.
	// Leave empty to use the terminal's own colors.
	Theme string

	// TickInterval is the time between samples. Default is 40ms.
	TickInterval time.Duration

	// Width and Height are the initial terminal size (set automatically if 0).
	Width  int
	Height int

	// UserConfig supplies keybindings. If nil, the user's config file is loaded.
	UserConfig *config.UserConfig

	// Now overrides the wall clock.
	Now func() time.Time
}

// Option is a functional option for configuring the clock.
type Option func(*Options)

// WithColor sets the palette index.
func WithColor(index int) Option {
	return func(o *Options) {
		o.Color = index
	}
}

// WithTwentyFourHour selects 24-hour time.
func WithTwentyFourHour(enabled bool) Option {
	return func(o *Options) {
		o.TwentyFourHour = enabled
	}
}

// WithSeconds shows or hides the seconds field.
func WithSeconds(enabled bool) Option {
	return func(o *Options) {
		o.Seconds = enabled
	}
}

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithTickInterval sets how often the time is sampled.
func WithTickInterval(d time.Duration) Option {
	return func(o *Options) {
		o.TickInterval = d
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// WithNow replaces the wall clock, mostly for tests and demos.
func WithNow(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Color:        config.DefaultColor,
		Seconds:      true,
		TickInterval: config.TickInterval,
	}
}

// New creates a clock model with the given options.
func New(opts ...Option) (*Model, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	display, err := clock.NewDisplayConfig(options.Color, options.TwentyFourHour, options.Seconds, options.TickInterval)
	if err != nil {
		return nil, err
	}

	if options.Theme != "" {
		if err := theme.Initialize(options.Theme); err != nil {
			return nil, fmt.Errorf("failed to initialize theme: %w", err)
		}
	}

	userConfig := options.UserConfig
	if userConfig == nil {
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	model := app.NewClock(app.Options{
		Config:          display,
		KeybindRegistry: config.NewKeybindRegistry(userConfig),
		InputHandler:    input.HandleInput,
		Now:             options.Now,
	})
	if options.Width > 0 && options.Height > 0 {
		model.Resize(options.Width, options.Height)
	}
	return model, nil
}

// ValidColors lists the accepted colors, e.g. for a usage message.
func ValidColors() string {
	return clock.ValidColors()
}
