package theme

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/x/ansi"
	tint "github.com/lrstanley/bubbletint/v2"
)

func writeTheme(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadCustomThemeFile_Palette tests that the eight palette colors are read.
func TestLoadCustomThemeFile_Palette(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "mocha.json", `{
		"id": "mocha",
		"display_name": "Mocha",
		"fg": "#cdd6f4",
		"bg": "#1e1e2e",
		"black": "#45475a",
		"red": "#f38ba8",
		"green": "#a6e3a1",
		"yellow": "#f9e2af",
		"blue": "#89b4fa",
		"purple": "#cba6f7",
		"cyan": "#94e2d5",
		"white": "#bac2de"
	}`)

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile failed: %v", err)
	}
	if theme.ID != "mocha" || theme.DisplayName != "Mocha" {
		t.Errorf("unexpected identity %q / %q", theme.ID, theme.DisplayName)
	}

	palette := PaletteFor(theme)
	r, g, b, _ := palette[4].RGBA()
	if r>>8 != 0x89 || g>>8 != 0xb4 || b>>8 != 0xfa {
		t.Errorf("blue = #%02x%02x%02x, want #89b4fa", r>>8, g>>8, b>>8)
	}
}

// TestLoadCustomThemeFile_Partial tests that missing palette entries are filled.
func TestLoadCustomThemeFile_Partial(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "Half-Done.json", `{"red": "#ff0000"}`)

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile failed: %v", err)
	}
	if theme.ID != "half-done" {
		t.Errorf("expected ID derived from filename, got %q", theme.ID)
	}
	for i, c := range PaletteFor(theme) {
		if c == nil {
			t.Errorf("palette entry %d is nil", i)
		}
	}
	if theme.Red.R != 0xff || theme.Red.G != 0 {
		t.Error("explicit red should be kept")
	}
	if theme.Blue.B != 0xee {
		t.Error("blue should default to xterm blue")
	}
}

func TestLoadCustomThemeFile_InvalidJSON(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "bad.json", "not valid json{{{")
	if _, err := LoadCustomThemeFile(path); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestLoadCustomThemes(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "clock-test-unique.json", `{"fg": "#ffffff", "bg": "#000000"}`)
	writeTheme(t, dir, "broken.json", "{{")
	writeTheme(t, dir, "readme.txt", "not a theme")

	tint.NewDefaultRegistry()

	var logBuf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&logBuf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})

	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != "clock-test-unique" {
		t.Fatalf("expected only clock-test-unique to load, got %v", loaded)
	}
	if !slices.Contains(tint.TintIDs(), "clock-test-unique") {
		t.Error("custom theme not registered with bubbletint")
	}
	if !bytes.Contains(logBuf.Bytes(), []byte("skipping custom theme broken.json")) {
		t.Errorf("expected a warning for broken.json, got %q", logBuf.String())
	}
}

func TestLoadCustomThemes_MissingDir(t *testing.T) {
	if _, err := LoadCustomThemes(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestPaletteWithoutTheme(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatal(err)
	}
	if IsEnabled() {
		t.Fatal("theming should be disabled without a name")
	}

	palette := Palette()
	for i, c := range palette {
		if c != ansi.BasicColor(i) {
			t.Errorf("palette[%d] = %v, want ANSI color %d", i, c, i)
		}
	}
}
