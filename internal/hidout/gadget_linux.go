//go:build linux

package hidout

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// gadgetSink writes boot reports to the hidg character devices created by a
// configfs USB HID gadget. The gadget itself (descriptors, UDC binding) is
// set up outside this process.
type gadgetSink struct {
	kbd     *os.File
	mouse   *os.File
	timeout time.Duration
}

func openGadget(cfg Config) (ReportSink, error) {
	kbd, err := openHidg(cfg.KeyboardPath)
	if err != nil {
		return nil, err
	}
	m, err := openHidg(cfg.MousePath)
	if err != nil {
		_ = kbd.Close()
		return nil, err
	}
	return &gadgetSink{kbd: kbd, mouse: m, timeout: cfg.WriteTimeout}, nil
}

// openHidg opens the device non-blocking so the runtime poller owns it and
// write deadlines apply. Without a deadline a write blocks forever while no
// host is reading from the gadget.
func openHidg(path string) (*os.File, error) {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return os.NewFile(uintptr(fd), path), nil
}

func (g *gadgetSink) write(f *os.File, report []byte) error {
	if g.timeout > 0 {
		_ = f.SetWriteDeadline(time.Now().Add(g.timeout))
	}
	_, err := f.Write(report)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return fmt.Errorf("%s: host is not reading reports: %w", f.Name(), err)
	}
	return err
}

func (g *gadgetSink) WriteKeyboardReport(report []byte) error { return g.write(g.kbd, report) }
func (g *gadgetSink) WriteMouseReport(report []byte) error    { return g.write(g.mouse, report) }

func (g *gadgetSink) Close() error {
	return errors.Join(g.kbd.Close(), g.mouse.Close())
}
