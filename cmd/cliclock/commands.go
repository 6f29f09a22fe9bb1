package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/clyde80/cliclock/internal/config"
	"github.com/clyde80/cliclock/internal/theme"
)

func printThemes(w io.Writer) error {
	for _, t := range theme.ListThemes() {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

func printConfigPath(w io.Writer) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	_, err = fmt.Fprintln(w, configPath)
	return err
}

func resetConfigToDefaults(w io.Writer, force bool) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return resetConfigFile(w, configPath, force)
}

func resetConfigFile(w io.Writer, configPath string, force bool) error {
	_, err := os.Stat(configPath)
	switch {
	case err == nil && !force:
		return fmt.Errorf("%s already exists, use --force to overwrite it", configPath)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := config.WriteDefaultConfig(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	_, err = fmt.Fprintf(w, "Configuration reset to defaults: %s\n", configPath)
	return err
}

func listKeybindings(w io.Writer) error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	_, err = fmt.Fprintln(w, keybindingsTable(config.NewKeybindRegistry(userConfig)))
	return err
}

func keybindingsTable(registry *config.KeybindRegistry) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ACTION", "KEYS", "DESCRIPTION").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, kb := range config.GetKeybindings(registry) {
		keys := kb.Key
		if keys == "" {
			keys = "(unbound)"
		}
		t.Row(kb.Action, keys, kb.Description)
	}
	return t.String()
}
