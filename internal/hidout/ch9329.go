package hidout

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// CH9329 command codes and frame header.
const (
	ch9329Head0       = 0x57
	ch9329Head1       = 0xAB
	ch9329Addr        = 0x00
	ch9329CmdKeyboard = 0x02 // CMD_SEND_KB_GENERAL_DATA
	ch9329CmdMouseRel = 0x05 // CMD_SEND_MS_REL_DATA
)

// ch9329Sink frames reports for a CH9329 UART-to-USB-HID chip. The chip
// enumerates as keyboard and mouse on the host and replays each frame.
type ch9329Sink struct {
	port io.WriteCloser
}

func openCH9329(cfg Config) (ReportSink, error) {
	port, err := serial.Open(cfg.SerialPort, &serial.Mode{
		BaudRate: cfg.SerialBaud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.SerialPort, err)
	}
	return NewCH9329Sink(port), nil
}

// NewCH9329Sink returns a sink writing CH9329 frames to w.
func NewCH9329Sink(w io.WriteCloser) ReportSink {
	return &ch9329Sink{port: w}
}

// CH9329Frame builds one frame: head, address, command, length, payload and a
// trailing byte-sum checksum.
func CH9329Frame(cmd byte, payload []byte) []byte {
	frame := make([]byte, 0, 6+len(payload))
	frame = append(frame, ch9329Head0, ch9329Head1, ch9329Addr, cmd, byte(len(payload)))
	frame = append(frame, payload...)
	var sum byte
	for _, b := range frame {
		sum += b
	}
	return append(frame, sum)
}

func (c *ch9329Sink) send(cmd byte, payload []byte) error {
	_, err := c.port.Write(CH9329Frame(cmd, payload))
	return err
}

// WriteKeyboardReport forwards the 8-byte boot report unchanged.
func (c *ch9329Sink) WriteKeyboardReport(report []byte) error {
	return c.send(ch9329CmdKeyboard, report)
}

// WriteMouseReport prefixes the relative-mode marker the chip expects.
func (c *ch9329Sink) WriteMouseReport(report []byte) error {
	return c.send(ch9329CmdMouseRel, append([]byte{0x01}, report...))
}

func (c *ch9329Sink) Close() error { return c.port.Close() }
