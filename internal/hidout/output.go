// Package hidout is the HID output adapter: it turns pointer, button, key and
// text operations into boot keyboard and mouse reports and hands them to a
// ReportSink backend.
package hidout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDevice marks failures raised by the report sink (I/O with the host side),
// as opposed to invalid requests such as untypeable text.
var ErrDevice = errors.New("hid device error")

// Button identifies a mouse button.
type Button uint8

// Mouse buttons, matching the report bitfield.
const (
	ButtonLeft   Button = 0x01
	ButtonRight  Button = 0x02
	ButtonMiddle Button = 0x04
)

// ParseButton maps LEFT/MIDDLE/RIGHT (case-insensitive) to a Button.
func ParseButton(name string) (Button, bool) {
	switch strings.ToUpper(name) {
	case "LEFT":
		return ButtonLeft, true
	case "MIDDLE":
		return ButtonMiddle, true
	case "RIGHT":
		return ButtonRight, true
	}
	return 0, false
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "LEFT"
	case ButtonMiddle:
		return "MIDDLE"
	case ButtonRight:
		return "RIGHT"
	}
	return fmt.Sprintf("Button(%#x)", uint8(b))
}

// Output is the capability the command interpreter drives. Held buttons and
// keys persist across calls, like a physical device.
type Output interface {
	// MouseMove displaces the pointer by dx, dy and scrolls by wheel
	// (positive is up).
	MouseMove(dx, dy, wheel int) error
	MouseClick(b Button) error
	MousePress(b Button) error
	MouseRelease(b Button) error

	// KeyPress holds codes as one chord, in addition to already-held keys.
	KeyPress(codes ...uint8) error
	KeyRelease(codes ...uint8) error
	KeyReleaseAll() error
	// TypeText types s using the US layout.
	TypeText(s string) error
}

// ReportSink delivers encoded reports to the host.
type ReportSink interface {
	WriteKeyboardReport(report []byte) error
	WriteMouseReport(report []byte) error
	Close() error
}

type deviceError struct {
	stream string
	err    error
}

func (e *deviceError) Error() string {
	return fmt.Sprintf("%s: write %s report: %v", ErrDevice, e.stream, e.err)
}

func (e *deviceError) Unwrap() []error { return []error{ErrDevice, e.err} }
