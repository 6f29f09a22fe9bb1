package clock

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewDisplayConfig(t *testing.T) {
	for i := range NumColors {
		if _, err := NewDisplayConfig(i, false, true, 40*time.Millisecond); err != nil {
			t.Errorf("color %d: unexpected error %v", i, err)
		}
	}

	for _, bad := range []int{-1, 8, 9, 100} {
		_, err := NewDisplayConfig(bad, false, true, 40*time.Millisecond)
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("color %d: expected ErrInvalidColor, got %v", bad, err)
			continue
		}
		if !strings.Contains(err.Error(), "black (0)") || !strings.Contains(err.Error(), "white (7)") {
			t.Errorf("color %d: error should list valid colors, got %q", bad, err)
		}
	}
}

func TestNewDisplayConfigRejectsZeroTick(t *testing.T) {
	if _, err := NewDisplayConfig(4, false, true, 0); err == nil {
		t.Error("expected error for zero tick interval")
	}
}

func TestNextColorCycles(t *testing.T) {
	for k := range NumColors - 1 {
		if got := NextColor(k); got != k+1 {
			t.Errorf("NextColor(%d) = %d, want %d", k, got, k+1)
		}
	}
	if got := NextColor(7); got != 0 {
		t.Errorf("NextColor(7) = %d, want 0", got)
	}

	c := 4
	for range NumColors {
		c = NextColor(c)
	}
	if c != 4 {
		t.Errorf("a full cycle should return to the start, got %d", c)
	}
}

func TestColorName(t *testing.T) {
	if got := ColorName(4); got != "blue" {
		t.Errorf("ColorName(4) = %q, want blue", got)
	}
	if got := ColorName(8); got != "" {
		t.Errorf("ColorName(8) = %q, want empty", got)
	}
}
