// Package input maps key presses to clock actions.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/clyde80/cliclock/internal/app"
	"github.com/clyde80/cliclock/internal/config"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, c *app.Clock) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, c)
	default:
		return c, nil
	}
}

// HandleKeyPress resolves the key through the keybinding registry and runs
// the bound action. Unbound keys are ignored.
func HandleKeyPress(msg tea.KeyPressMsg, c *app.Clock) (*app.Clock, tea.Cmd) {
	key := msg.String()
	action := c.KeybindRegistry.GetAction(key)
	if action == "" {
		return c, nil
	}

	c.Logger().Debug("key", "key", key, "action", action)
	return Dispatch(action, c)
}

// Dispatch runs a named action against the clock.
func Dispatch(action string, c *app.Clock) (*app.Clock, tea.Cmd) {
	switch action {
	case config.ActionQuit:
		c.Quit()
		return c, tea.Quit
	case config.ActionCycleColor:
		c.CycleColor()
	case config.ActionToggleSeconds:
		c.ToggleSeconds()
	case config.ActionToggleFormat:
		c.ToggleTwentyFourHour()
	}
	return c, nil
}
