package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/hidbridge/internal/board"
	"github.com/Alia5/hidbridge/internal/command"
	"github.com/Alia5/hidbridge/internal/hidout"
	"github.com/Alia5/hidbridge/internal/log"
	"github.com/Alia5/hidbridge/internal/metrics"
	"github.com/Alia5/hidbridge/internal/server"
	"github.com/Alia5/hidbridge/internal/server/netif"
	"github.com/Alia5/hidbridge/internal/server/web"
	"github.com/Alia5/hidbridge/internal/server/web/handler"
	"github.com/Alia5/hidbridge/internal/state"
)

// Serve runs the bridge.
type Serve struct {
	Net          netif.Config          `embed:"" prefix:"net."`
	Static       web.StaticConfig      `embed:"" prefix:"static."`
	HID          hidout.Config         `embed:"" prefix:"hid."`
	Button       board.ButtonConfig    `embed:"" prefix:"button."`
	Indicator    board.IndicatorConfig `embed:"" prefix:"indicator."`
	PacingDelay  time.Duration         `help:"Pause after every command except CLICK" default:"1s" env:"HIDBRIDGE_PACING_DELAY"`
	ResetBackoff time.Duration         `help:"Wait after resetting the network interface" default:"1s" env:"HIDBRIDGE_RESET_BACKOFF"`
	NoMetrics    bool                  `help:"Do not serve GET /metrics" env:"HIDBRIDGE_NO_METRICS"`
}

// Run is called by Kong when the serve command is executed.
func (s *Serve) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.StartServer(ctx, logger, rawLogger)
}

// StartServer wires every component and runs the poll loop until ctx ends.
func (s *Serve) StartServer(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	logger.Info("Starting hidbridge", "addr", s.Net.Addr, "backend", s.HID.Backend)

	bundle, err := web.NewBundle(s.Static.Dir, s.Static.Index)
	if err != nil {
		logger.Error("Static assets unavailable", "dir", s.Static.Dir, "error", err)
		return err
	}
	if s.Static.Watch {
		if err := bundle.Watch(ctx, logger); err != nil {
			logger.Warn("Static asset refresh disabled", "error", err)
		}
	}

	sink, err := hidout.Open(s.HID, logger)
	if err != nil {
		return fmt.Errorf("open hid backend: %w", err)
	}
	dev := hidout.NewDevice(sink, rawLogger)
	defer func() {
		if err := dev.Close(); err != nil {
			logger.Warn("Failed to close hid backend", "error", err)
		}
	}()

	var m *metrics.Metrics
	if !s.NoMetrics {
		m = metrics.New(metrics.NewRegistry())
	}

	st := state.New()
	led := board.LED{Path: s.Indicator.LED, Logger: logger}
	st.OnIndicator = led.Hook()
	led.Hook()(st.Indicator())

	go func() {
		err := board.WatchButton(ctx, s.Button, func(pressed bool) {
			st.SetButtonStatus(pressed)
			if m != nil {
				if pressed {
					m.ButtonPressed.Set(1)
				} else {
					m.ButtonPressed.Set(0)
				}
			}
		}, logger)
		if err != nil {
			logger.Error("Physical button input stopped", "error", err)
		}
	}()

	in := command.NewInterpreter(dev, st, command.Options{
		PacingDelay: s.PacingDelay,
		Logger:      logger,
		Metrics:     m,
	})

	r := web.NewRouter()
	r.SetStatic(bundle)
	handler.Register(r, bundle, st, in, m)

	ni, err := netif.Listen(s.Net, logger)
	if err != nil {
		return err
	}
	defer ni.Close()

	return server.New(ni, r, server.Options{
		ResetBackoff: s.ResetBackoff,
		Logger:       logger,
		Metrics:      m,
	}).Run(ctx)
}
