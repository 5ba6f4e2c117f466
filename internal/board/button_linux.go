//go:build linux

package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	evdev "github.com/holoplot/go-evdev"
)

// WatchButton reads key events for cfg.Code from cfg.Device and reports every
// change through set until ctx is done. It returns immediately when no device
// is configured.
func WatchButton(ctx context.Context, cfg ButtonConfig, set func(bool), logger *slog.Logger) error {
	if cfg.Device == "" {
		return nil
	}
	dev, err := evdev.Open(cfg.Device)
	if err != nil {
		return fmt.Errorf("open button device %s: %w", cfg.Device, err)
	}
	name, _ := dev.Name()
	logger.Info("Watching physical button", "device", cfg.Device, "name", name, "code", cfg.Code)

	keys, err := dev.State(evdev.EV_KEY)
	if err != nil {
		logger.Warn("Could not read initial button state, assuming released", "error", err)
	}
	set(cfg.Pressed(keyValue(keys, cfg.Code)))

	go func() {
		<-ctx.Done()
		_ = dev.Close()
	}()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read button device %s: %w", cfg.Device, err)
		}
		if ev.Type != evdev.EV_KEY || uint16(ev.Code) != cfg.Code || ev.Value == 2 {
			continue
		}
		pressed := cfg.Pressed(ev.Value)
		logger.Debug("Button changed", "pressed", pressed)
		set(pressed)
	}
}

// keyValue converts the held state of code into an EV_KEY event value.
func keyValue(keys evdev.StateMap, code uint16) int32 {
	if keys[evdev.EvCode(code)] {
		return 1
	}
	return 0
}
