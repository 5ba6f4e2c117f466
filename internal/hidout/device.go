package hidout

import (
	"slices"
	"sync"

	"github.com/Alia5/hidbridge/hid/keyboard"
	"github.com/Alia5/hidbridge/hid/mouse"
	"github.com/Alia5/hidbridge/internal/log"
)

// Device implements Output on top of a ReportSink, tracking the held keys and
// buttons that every report must repeat.
type Device struct {
	sink    ReportSink
	raw     log.RawLogger
	stateMu sync.Mutex
	kbd     keyboard.InputState
	buttons uint8
}

// NewDevice returns a Device writing to sink. raw may be nil.
func NewDevice(sink ReportSink, raw log.RawLogger) *Device {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Device{sink: sink, raw: raw}
}

// Close releases everything still held and closes the sink.
func (d *Device) Close() error {
	d.stateMu.Lock()
	d.kbd.ReleaseAll()
	d.buttons = 0
	_ = d.writeKeyboard()
	_ = d.writeMouse(mouse.InputState{})
	d.stateMu.Unlock()
	return d.sink.Close()
}

func (d *Device) writeKeyboard() error {
	report := d.kbd.BuildReport()
	d.raw.Log("kbd", report)
	if err := d.sink.WriteKeyboardReport(report); err != nil {
		return &deviceError{stream: "keyboard", err: err}
	}
	return nil
}

func (d *Device) writeMouse(st mouse.InputState) error {
	st.Buttons = d.buttons
	report := st.BuildReport()
	d.raw.Log("mouse", report)
	if err := d.sink.WriteMouseReport(report); err != nil {
		return &deviceError{stream: "mouse", err: err}
	}
	return nil
}

// MouseMove splits displacements larger than one report can carry into
// several reports, each axis stepping by at most mouse.MaxDelta.
func (d *Device) MouseMove(dx, dy, wheel int) error {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	for dx != 0 || dy != 0 || wheel != 0 {
		st := mouse.InputState{DX: mouse.Clamp(dx), DY: mouse.Clamp(dy), Wheel: mouse.Clamp(wheel)}
		if err := d.writeMouse(st); err != nil {
			return err
		}
		dx -= int(st.DX)
		dy -= int(st.DY)
		wheel -= int(st.Wheel)
	}
	return nil
}

// MouseClick presses and releases b.
func (d *Device) MouseClick(b Button) error {
	if err := d.MousePress(b); err != nil {
		return err
	}
	return d.MouseRelease(b)
}

func (d *Device) MousePress(b Button) error {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	d.buttons |= uint8(b)
	return d.writeMouse(mouse.InputState{})
}

func (d *Device) MouseRelease(b Button) error {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	d.buttons &^= uint8(b)
	return d.writeMouse(mouse.InputState{})
}

func (d *Device) KeyPress(codes ...uint8) error {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	return d.press(codes...)
}

// press adds codes to the held set and reports it. When the report cannot be
// written the held set is restored, so a failed write never leaves keys down
// in later reports.
func (d *Device) press(codes ...uint8) error {
	prev := keyboard.InputState{Modifiers: d.kbd.Modifiers, Keys: slices.Clone(d.kbd.Keys)}
	if err := d.kbd.Press(codes...); err != nil {
		return err
	}
	if err := d.writeKeyboard(); err != nil {
		d.kbd = prev
		return err
	}
	return nil
}

func (d *Device) KeyRelease(codes ...uint8) error {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	d.kbd.Release(codes...)
	return d.writeKeyboard()
}

func (d *Device) KeyReleaseAll() error {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	d.kbd.ReleaseAll()
	return d.writeKeyboard()
}

// TypeText types s one character at a time: press the character's keys, then
// release them. Text with any untypeable character is rejected before the
// first report is sent.
func (d *Device) TypeText(s string) error {
	if err := keyboard.CheckText(s); err != nil {
		return err
	}
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	for _, r := range s {
		codes, _ := keyboard.Keystroke(r)
		if err := d.press(codes...); err != nil {
			return err
		}
		d.kbd.Release(codes...)
		if err := d.writeKeyboard(); err != nil {
			return err
		}
	}
	return nil
}
