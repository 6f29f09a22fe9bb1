package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickMsg carries the wall-clock time of one tick.
type TickMsg time.Time

// TerminateMsg asks the loop to stop. It is sent from the signal handler in
// the main package.
type TerminateMsg struct{}

// TickCmd schedules the next tick after interval.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init starts the tick chain. Only one chain ever runs: toggles repaint from
// the last sample instead of scheduling another tick.
func (c *Clock) Init() tea.Cmd {
	return TickCmd(c.Config.TickInterval)
}

// Update handles all incoming messages and updates the clock state.
func (c *Clock) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !c.Running {
			return c, tea.Quit
		}
		c.Sample(c.now())
		return c, TickCmd(c.Config.TickInterval)

	case tea.WindowSizeMsg:
		c.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
		c.Resize(msg.Width, msg.Height)
		return c, nil

	case tea.ColorProfileMsg:
		c.SetProfile(msg.Profile)
		return c, nil

	case TerminateMsg:
		c.logger.Info("termination requested")
		c.Quit()
		return c, tea.Quit

	case tea.KeyPressMsg:
		if c.inputHandler == nil {
			return c, nil
		}
		model, cmd := c.inputHandler(msg, c)
		if !c.Running {
			return model, tea.Quit
		}
		return model, cmd
	}

	return c, nil
}
