//go:build !linux

package board

import (
	"context"
	"errors"
	"log/slog"
)

// WatchButton is only available on Linux.
func WatchButton(_ context.Context, cfg ButtonConfig, _ func(bool), _ *slog.Logger) error {
	if cfg.Device == "" {
		return nil
	}
	return errors.New("physical button input requires linux evdev")
}
