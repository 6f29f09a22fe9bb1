package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/clyde80/cliclock/internal/app"
	"github.com/clyde80/cliclock/internal/config"
	"github.com/clyde80/cliclock/internal/input"
	"github.com/clyde80/cliclock/internal/theme"
	"golang.org/x/term"
)

// errNotTerminal is returned when stdout cannot host the full-screen display.
var errNotTerminal = errors.New("stdout is not a terminal")

// resolveDisplay loads the user config and merges the command-line flags
// over it. Nothing touches the terminal before this succeeds, so a bad
// color exits cleanly. A config file that fails validation is fatal; one
// that cannot be read or parsed falls back to the defaults.
func resolveDisplay(overrides config.Overrides) (app.Options, string, error) {
	userConfig, err := config.LoadUserConfig()
	switch {
	case errors.Is(err, config.ErrInvalidConfig):
		return app.Options{}, "", err
	case err != nil:
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		userConfig = config.DefaultConfig()
	}

	if result := config.ValidateConfig(userConfig); result.HasWarnings() {
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}

	display, err := config.ApplyOverrides(overrides, userConfig)
	if err != nil {
		return app.Options{}, "", err
	}

	return app.Options{
		Config:          display,
		KeybindRegistry: config.NewKeybindRegistry(userConfig),
		InputHandler:    input.HandleInput,
	}, config.ThemeName(overrides, userConfig), nil
}

func runLocal(ctx context.Context, flags rootFlags, overrides config.Overrides) error {
	opts, themeName, err := resolveDisplay(overrides)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flags.debug || os.Getenv(config.DebugEnvVar) == "1")
	if err != nil {
		return err
	}
	defer closeLog()
	opts.Logger = logger

	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			return fmt.Errorf("failed to initialize theme: %w", err)
		}
		logger.Info("theme loaded", "theme", themeName)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	if configPath, err := config.GetConfigPath(); err == nil {
		logger.Debug("configuration", "path", configPath)
	}

	clockModel := app.NewClock(opts)

	p := tea.NewProgram(
		clockModel,
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)

	sigCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go forwardSignals(sigCtx, sigChan, logger, p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

// forwardSignals turns the first signal into a TerminateMsg. It returns
// after forwarding or once ctx is done.
func forwardSignals(ctx context.Context, sigChan <-chan os.Signal, logger *log.Logger, send func(tea.Msg)) {
	select {
	case sig := <-sigChan:
		logger.Info("signal received", "signal", sig.String())
		send(app.TerminateMsg{})
	case <-ctx.Done():
	}
}
