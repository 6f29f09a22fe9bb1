package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/clyde80/cliclock/internal/clock"
)

// ValidationError describes a single problem found in the user config
type ValidationError struct {
	Field   string
	Key     string
	Message string

	// Err is the sentinel behind the problem, if any
	Err error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Field, e.Key, e.Message)
}

func (e ValidationError) Unwrap() error { return e.Err }

// ErrInvalidConfig marks a config file that parsed but failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError carries every validation error of a rejected config file.
// It matches ErrInvalidConfig and the sentinel of each entry with errors.Is.
type ConfigError struct {
	Path   string
	Errors []ValidationError
}

func (e *ConfigError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, v := range e.Errors {
		msgs = append(msgs, v.Error())
	}
	return fmt.Sprintf("%s has %d error(s): %s", e.Path, len(e.Errors), strings.Join(msgs, "; "))
}

func (e *ConfigError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors)+1)
	errs = append(errs, ErrInvalidConfig)
	for _, v := range e.Errors {
		errs = append(errs, v)
	}
	return errs
}

// ValidationResult collects fatal errors and non-fatal warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors reports whether the config must be rejected
func (v *ValidationResult) HasErrors() bool { return len(v.Errors) > 0 }

// HasWarnings reports whether any non-fatal issue was found
func (v *ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

func (v *ValidationResult) addError(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) addWarning(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

// ValidateConfig checks the clock settings and keybindings
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	result := &ValidationResult{}

	if cfg.Clock.Color != nil && !clock.ValidColor(*cfg.Clock.Color) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "clock",
			Key:     "color",
			Message: fmt.Sprintf("%d is out of range, valid colors are %s", *cfg.Clock.Color, clock.ValidColors()),
			Err:     clock.ErrInvalidColor,
		})
	}

	owner := make(map[string]string)
	// Sorted so the reported conflict does not depend on map order.
	actions := make([]string, 0, len(cfg.Keybindings))
	for action := range cfg.Keybindings {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	for _, action := range actions {
		if !IsAction(action) {
			result.addWarning("keybindings", action, "unknown action, ignored")
			continue
		}
		for _, key := range cfg.Keybindings[action] {
			if key == "" {
				result.addWarning("keybindings", action, "empty key ignored")
				continue
			}
			if prev, taken := owner[key]; taken && prev != action {
				result.addError("keybindings", action, "key %q is already bound to %s", key, prev)
				continue
			}
			owner[key] = action
		}
	}

	return result
}
