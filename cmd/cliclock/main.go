// Package main implements cliclock, a seven-segment digital clock for the
// terminal. The time is drawn as large block digits centered in the
// window and redrawn many times a second.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/clyde80/cliclock/internal/config"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// rootFlags holds the values of the root command's flags.
type rootFlags struct {
	color      int
	ttime      bool
	noSeconds  bool
	themeName  string
	listThemes bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "cliclock",
		Short: "A seven-segment digital clock for the terminal",
		Long: `cliclock - a seven-segment digital clock for the terminal

Draws the current time as large block digits in the middle of the
terminal and keeps it up to date. While running:

  q  quit
  c  cycle the digit color
  s  show or hide seconds
  t  switch between 12- and 24-hour time`,
		Example: `  # Run with the defaults (blue, 12-hour, seconds shown)
  cliclock

  # Green digits in 24-hour time without seconds
  cliclock -c 2 -t -s

  # Take the digit colors from a theme
  cliclock --theme dracula

  # List all available themes
  cliclock --list-themes

  # Print the configuration file path
  cliclock config path`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.listThemes {
				return printThemes(cmd.OutOrStdout())
			}
			return runLocal(cmd.Context(), flags, config.Overrides{
				Color:             flags.color,
				ColorSet:          cmd.Flags().Changed("color"),
				TwentyFourHour:    flags.ttime,
				TwentyFourHourSet: cmd.Flags().Changed("ttime"),
				NoSeconds:         flags.noSeconds,
				NoSecondsSet:      cmd.Flags().Changed("noseconds"),
				ThemeName:         flags.themeName,
			})
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVarP(&flags.color, "color", "c", config.DefaultColor,
		"Digit color: 0 black, 1 red, 2 green, 3 yellow, 4 blue, 5 magenta, 6 cyan, 7 white")
	rootCmd.Flags().BoolVarP(&flags.ttime, "ttime", "t", false, "Use 24-hour time")
	rootCmd.Flags().BoolVarP(&flags.noSeconds, "noseconds", "s", false, "Do not display seconds")
	rootCmd.PersistentFlags().StringVar(&flags.themeName, "theme", "", "Theme to take the eight digit colors from (e.g., dracula, nord). Leave empty to use the terminal's own colors")
	rootCmd.PersistentFlags().BoolVar(&flags.listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Write a debug log to the state directory")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cliclock configuration",
		Long:  `Manage the cliclock configuration file`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the cliclock configuration file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printConfigPath(cmd.OutOrStdout())
		},
	}

	var force bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Write the default cliclock configuration file

An existing file is only overwritten when --force is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resetConfigToDefaults(cmd.OutOrStdout(), force)
		},
	}
	configResetCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configPathCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect cliclock keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listKeybindings(cmd.OutOrStdout())
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(configCmd, keybindsCmd)
	return rootCmd
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
