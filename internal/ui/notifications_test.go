package ui

import (
	"errors"
	"testing"
)

func TestShowRespectsLevel(t *testing.T) {
	var shown []string
	n := NewNotificationManager(false, "Test")
	n.notify = func(title, message string) error {
		shown = append(shown, title)
		return nil
	}

	n.Show(LevelInfo, "info", "suppressed")
	n.Show(LevelWarn, "warn", "shown")
	n.Show(LevelError, "error", "shown")

	if len(shown) != 2 || shown[0] != "warn" || shown[1] != "error" {
		t.Errorf("shown = %v, want [warn error]", shown)
	}
}

func TestShowEnabledIncludesInfo(t *testing.T) {
	count := 0
	n := NewNotificationManager(true, "Test")
	n.notify = func(title, message string) error {
		count++
		return errors.New("platform unavailable")
	}

	n.Show(LevelInfo, "info", "shown")
	if count != 1 {
		t.Errorf("notify called %d times, want 1", count)
	}
}

func TestLevelString(t *testing.T) {
	if LevelInfo.String() != "INFO" || LevelWarn.String() != "WARN" || LevelError.String() != "ERROR" {
		t.Error("unexpected level names")
	}
}
