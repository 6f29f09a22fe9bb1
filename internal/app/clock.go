// Package app implements the clock display loop as a Bubble Tea model.
//
// The model owns every piece of mutable state: the display config, the
// viewport geometry, the decoded digits and the run flag. Keys, resizes,
// ticks and termination requests all arrive as messages on the same
// goroutine, so nothing here needs locking.
package app

import (
	"image/color"
	"io"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/log"
	"github.com/clyde80/cliclock/internal/clock"
	"github.com/clyde80/cliclock/internal/config"
	"github.com/clyde80/cliclock/internal/theme"
)

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, c *Clock) (tea.Model, tea.Cmd)

// Options configures a new Clock.
type Options struct {
	Config          clock.DisplayConfig
	KeybindRegistry *config.KeybindRegistry
	InputHandler    InputHandler

	// Palette defaults to theme.Palette().
	Palette *[clock.NumColors]color.Color

	// Now defaults to time.Now. Tests replace it to pin the displayed time.
	Now func() time.Time

	// Logger defaults to a logger that discards everything.
	Logger *log.Logger
}

// Clock is the clock display loop.
type Clock struct {
	Config   clock.DisplayConfig
	Geometry clock.Geometry
	Digits   clock.TimeDigits

	// Sampled is the wall-clock time the digits were decoded from.
	Sampled time.Time

	// Terminal size in cells. Zero until the first resize message.
	Width, Height int

	Running bool

	Palette [clock.NumColors]color.Color
	Profile colorprofile.Profile

	KeybindRegistry *config.KeybindRegistry

	face         *clock.Face
	styles       cellStyles
	inputHandler InputHandler
	now          func() time.Time
	logger       *log.Logger
}

// NewClock builds a running clock and paints its first frame.
func NewClock(opts Options) *Clock {
	c := &Clock{
		Config:          opts.Config,
		Running:         true,
		Profile:         colorprofile.TrueColor,
		KeybindRegistry: opts.KeybindRegistry,
		inputHandler:    opts.InputHandler,
		now:             opts.Now,
		logger:          opts.Logger,
	}

	if c.KeybindRegistry == nil {
		c.KeybindRegistry = config.NewKeybindRegistry(nil)
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if opts.Palette != nil {
		c.Palette = *opts.Palette
	} else {
		c.Palette = theme.Palette()
	}

	c.Rebuild()
	c.Sample(c.now())
	return c
}

// Logger returns the clock's logger.
func (c *Clock) Logger() *log.Logger {
	return c.logger
}

// Face returns the drawing surface as last painted.
func (c *Clock) Face() *clock.Face {
	return c.face
}

// Sample decodes t under the current config and repaints the face.
func (c *Clock) Sample(t time.Time) {
	c.Sampled = t
	c.Digits = clock.DecodeTime(t, c.Config)
	c.face.Paint(c.Digits, c.Config)
}

// Rebuild tears down the drawing surface and derives it again from the
// current config and terminal size. Calling it twice in a row yields the
// same geometry.
func (c *Clock) Rebuild() {
	c.Geometry = clock.NewGeometry(c.Config, c.Width, c.Height)
	c.face = clock.NewFace(c.Geometry.Width, c.Geometry.Height)
	c.styles = newCellStyles(c.Palette[c.Config.ColorIndex], c.Profile)

	if !c.Sampled.IsZero() {
		c.Sample(c.Sampled)
	}

	c.logger.Debug("viewport rebuilt",
		"width", c.Geometry.Width,
		"row", c.Geometry.OriginRow,
		"col", c.Geometry.OriginCol,
		"term", [2]int{c.Width, c.Height})
}

// Resize records a new terminal size and rebuilds the surface. The display
// config is left untouched.
func (c *Clock) Resize(width, height int) {
	c.Width, c.Height = width, height
	c.Rebuild()
}

// CycleColor moves to the next palette color.
func (c *Clock) CycleColor() {
	c.Config.ColorIndex = clock.NextColor(c.Config.ColorIndex)
	c.logger.Info("color changed", "color", clock.ColorName(c.Config.ColorIndex))
	c.Rebuild()
}

// ToggleSeconds shows or hides the seconds field.
func (c *Clock) ToggleSeconds() {
	c.Config.ShowSeconds = !c.Config.ShowSeconds
	c.logger.Info("seconds toggled", "show", c.Config.ShowSeconds)
	c.Rebuild()
}

// ToggleTwentyFourHour switches between 12- and 24-hour display.
func (c *Clock) ToggleTwentyFourHour() {
	c.Config.TwentyFourHour = !c.Config.TwentyFourHour
	c.logger.Info("hour format toggled", "twenty_four_hour", c.Config.TwentyFourHour)
	c.Rebuild()
}

// Quit stops the loop. The next Update returns tea.Quit.
func (c *Clock) Quit() {
	if c.Running {
		c.logger.Info("quitting")
	}
	c.Running = false
}

// SetProfile changes how lit cells are painted.
func (c *Clock) SetProfile(p colorprofile.Profile) {
	if p == c.Profile {
		return
	}
	c.Profile = p
	c.Rebuild()
}
