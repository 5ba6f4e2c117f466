package hidout

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Backend names accepted by Config.Backend.
const (
	BackendGadget = "gadget"
	BackendUHID   = "uhid"
	BackendCH9329 = "ch9329"
	BackendTrace  = "trace"
)

// ErrUnsupportedBackend is returned when a backend is not available on this platform.
var ErrUnsupportedBackend = errors.New("hid backend not supported on this platform")

// Config selects and parameterizes the HID backend.
type Config struct {
	Backend      string        `help:"HID output backend" enum:"gadget,uhid,ch9329,trace" default:"gadget" env:"HIDBRIDGE_HID_BACKEND"`
	KeyboardPath string        `help:"USB gadget keyboard report device" default:"/dev/hidg0" env:"HIDBRIDGE_HID_KEYBOARD_PATH"`
	MousePath    string        `help:"USB gadget mouse report device" default:"/dev/hidg1" env:"HIDBRIDGE_HID_MOUSE_PATH"`
	WriteTimeout time.Duration `help:"Give up on a gadget report write after this long (host not polling)" default:"50ms" env:"HIDBRIDGE_HID_WRITE_TIMEOUT"`
	DeviceName   string        `help:"Name of the virtual UHID device" default:"hidbridge" env:"HIDBRIDGE_HID_DEVICE_NAME"`
	SerialPort   string        `help:"Serial port of the CH9329 bridge chip" default:"/dev/ttyUSB0" env:"HIDBRIDGE_HID_SERIAL_PORT"`
	SerialBaud   int           `help:"Baud rate of the CH9329 bridge chip" default:"9600" env:"HIDBRIDGE_HID_SERIAL_BAUD"`
}

// Open creates the ReportSink selected by cfg.Backend.
func Open(cfg Config, logger *slog.Logger) (ReportSink, error) {
	switch cfg.Backend {
	case BackendGadget, "":
		logger.Info("Opening USB gadget HID devices", "keyboard", cfg.KeyboardPath, "mouse", cfg.MousePath)
		return openGadget(cfg)
	case BackendUHID:
		logger.Info("Creating UHID virtual device", "name", cfg.DeviceName)
		return openUHID(cfg)
	case BackendCH9329:
		logger.Info("Opening CH9329 serial HID bridge", "port", cfg.SerialPort, "baud", cfg.SerialBaud)
		return openCH9329(cfg)
	case BackendTrace:
		logger.Warn("HID trace backend selected; reports are not delivered to any host")
		return TraceSink{}, nil
	default:
		return nil, fmt.Errorf("unknown hid backend %q", cfg.Backend)
	}
}

// TraceSink discards every report. Combined with the raw report log it gives a
// dry-run mode.
type TraceSink struct{}

func (TraceSink) WriteKeyboardReport([]byte) error { return nil }
func (TraceSink) WriteMouseReport([]byte) error    { return nil }
func (TraceSink) Close() error                     { return nil }
