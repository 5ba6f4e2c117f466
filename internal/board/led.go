// Package board connects the bridge to the physical button and indicator LED
// on the node it runs on.
package board

import (
	"fmt"
	"log/slog"
	"os"
)

// LED drives a Linux LED class device through its brightness file, e.g.
// /sys/class/leds/led0/brightness. The zero value (no path) only logs.
type LED struct {
	Path   string
	Logger *slog.Logger
}

// Set writes 1 or 0 to the brightness file.
func (l LED) Set(on bool) error {
	v := "0"
	if on {
		v = "1"
	}
	if l.Logger != nil {
		l.Logger.Debug("Indicator changed", "on", on, "path", l.Path)
	}
	if l.Path == "" {
		return nil
	}
	if err := os.WriteFile(l.Path, []byte(v), 0o644); err != nil {
		return fmt.Errorf("write led brightness %s: %w", l.Path, err)
	}
	return nil
}

// Hook returns a callback suitable for state.State.OnIndicator. Write
// failures are logged.
func (l LED) Hook() func(bool) {
	return func(on bool) {
		if err := l.Set(on); err != nil && l.Logger != nil {
			l.Logger.Error("Failed to set indicator", "error", err)
		}
	}
}
