package config

import "testing"

func TestKeybindRegistryDefaults(t *testing.T) {
	r := NewKeybindRegistry(nil)

	tests := []struct {
		key  string
		want string
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"c", ActionCycleColor},
		{"s", ActionToggleSeconds},
		{"t", ActionToggleFormat},
		{"x", ""},
		{"Q", ""},
	}

	for _, tt := range tests {
		if got := r.GetAction(tt.key); got != tt.want {
			t.Errorf("GetAction(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeybindRegistryCustom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings[ActionToggleFormat] = []string{"f", "F"}

	r := NewKeybindRegistry(cfg)
	if got := r.GetAction("f"); got != ActionToggleFormat {
		t.Errorf("GetAction(f) = %q", got)
	}
	if got := r.GetAction("t"); got != "" {
		t.Errorf("t should no longer be bound, got %q", got)
	}
	if got := r.GetKeysForDisplay(ActionToggleFormat); got != "f, F" {
		t.Errorf("GetKeysForDisplay = %q", got)
	}
}

func TestGetKeybindings(t *testing.T) {
	bindings := GetKeybindings(nil)
	if len(bindings) != len(Actions()) {
		t.Fatalf("expected %d bindings, got %d", len(Actions()), len(bindings))
	}
	if bindings[0].Action != ActionQuit || bindings[0].Key != "q, ctrl+c" || bindings[0].Description != "Quit" {
		t.Errorf("unexpected first binding: %+v", bindings[0])
	}
}

func TestGetKeybindingsUnbound(t *testing.T) {
	cfg := &UserConfig{Keybindings: map[string][]string{ActionQuit: {"x"}}}
	bindings := GetKeybindings(NewKeybindRegistry(cfg))
	if len(bindings) != len(Actions()) {
		t.Fatalf("expected every action listed, got %d", len(bindings))
	}
	for _, kb := range bindings[1:] {
		if kb.Key != "" {
			t.Errorf("%s should be unbound, got %q", kb.Action, kb.Key)
		}
	}
}
