package config

import "strings"

// Actions the clock responds to.
const (
	ActionQuit          = "quit"
	ActionCycleColor    = "cycle_color"
	ActionToggleSeconds = "toggle_seconds"
	ActionToggleFormat  = "toggle_format"
)

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Action      string
	Key         string
	Description string
}

var actionDescriptions = map[string]string{
	ActionQuit:          "Quit",
	ActionCycleColor:    "Cycle color",
	ActionToggleSeconds: "Toggle seconds",
	ActionToggleFormat:  "Toggle 12/24-hour format",
}

// Actions returns every action name in display order
func Actions() []string {
	return []string{ActionQuit, ActionCycleColor, ActionToggleSeconds, ActionToggleFormat}
}

// IsAction reports whether name is a known action
func IsAction(name string) bool {
	_, ok := actionDescriptions[name]
	return ok
}

// DefaultKeybindings returns the built-in key map
func DefaultKeybindings() map[string][]string {
	return map[string][]string{
		ActionQuit:          {"q", "ctrl+c"},
		ActionCycleColor:    {"c"},
		ActionToggleSeconds: {"s"},
		ActionToggleFormat:  {"t"},
	}
}

// KeybindRegistry resolves pressed keys to actions
type KeybindRegistry struct {
	keyToAction  map[string]string
	actionToKeys map[string][]string
}

// NewKeybindRegistry builds a registry from the user config.
// A nil config yields the defaults.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	bindings := DefaultKeybindings()
	if cfg != nil && cfg.Keybindings != nil {
		bindings = cfg.Keybindings
	}

	r := &KeybindRegistry{
		keyToAction:  make(map[string]string),
		actionToKeys: make(map[string][]string),
	}
	for _, action := range Actions() {
		for _, key := range bindings[action] {
			if key == "" {
				continue
			}
			if _, taken := r.keyToAction[key]; taken {
				continue
			}
			r.keyToAction[key] = action
			r.actionToKeys[action] = append(r.actionToKeys[action], key)
		}
	}
	return r
}

// GetAction returns the action bound to key, or "" if none
func (r *KeybindRegistry) GetAction(key string) string {
	return r.keyToAction[key]
}

// GetKeysForDisplay returns the keys bound to action joined for help output
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actionToKeys[action], ", ")
}

// GetKeybindings returns one entry per action for the help listing.
// Key is empty for actions the user left unbound.
func GetKeybindings(registry *KeybindRegistry) []Keybinding {
	if registry == nil {
		registry = NewKeybindRegistry(nil)
	}

	var bindings []Keybinding
	for _, action := range Actions() {
		bindings = append(bindings, Keybinding{
			Action:      action,
			Key:         registry.GetKeysForDisplay(action),
			Description: actionDescriptions[action],
		})
	}
	return bindings
}
