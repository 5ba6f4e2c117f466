// Package mouse models a boot-protocol three-button HID mouse with a
// vertical wheel.
package mouse

// Button bit masks for the Buttons field of InputState.
const (
	BtnLeft   = 0x01
	BtnRight  = 0x02
	BtnMiddle = 0x04
)

// ReportSize is the length of a mouse input report.
const ReportSize = 4

// MaxDelta is the largest displacement one report can carry on any axis.
const MaxDelta = 127

// InputState represents the mouse state used to build a report.
type InputState struct {
	// Button bitfield: bit 0=Left, 1=Right, 2=Middle
	Buttons uint8
	DX, DY  int8
	Wheel   int8
}

// BuildReport encodes an InputState into the 4-byte mouse report.
//
// Report layout (4 bytes):
//
//	Byte 0: Button bitfield (bits 3-7 padding)
//	Byte 1: DX (int8)
//	Byte 2: DY (int8)
//	Byte 3: Wheel (int8)
func (m InputState) BuildReport() []byte {
	return []byte{m.Buttons & 0x07, byte(m.DX), byte(m.DY), byte(m.Wheel)}
}

// Clamp limits v to the range a single report can carry.
func Clamp(v int) int8 {
	switch {
	case v > MaxDelta:
		return MaxDelta
	case v < -MaxDelta:
		return -MaxDelta
	default:
		return int8(v)
	}
}

// ReportDescriptor is the 3-button relative mouse report descriptor with wheel.
var ReportDescriptor = []byte{
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x02, // Usage (Mouse)
	0xA1, 0x01, // Collection (Application)
	0x09, 0x01, //   Usage (Pointer)
	0xA1, 0x00, //   Collection (Physical)
	0x05, 0x09, //     Usage Page (Button)
	0x19, 0x01, //     Usage Minimum (Button 1)
	0x29, 0x03, //     Usage Maximum (Button 3)
	0x15, 0x00, //     Logical Minimum (0)
	0x25, 0x01, //     Logical Maximum (1)
	0x95, 0x03, //     Report Count (3)
	0x75, 0x01, //     Report Size (1)
	0x81, 0x02, //     Input (Data, Variable, Absolute)
	0x95, 0x01, //     Report Count (1)
	0x75, 0x05, //     Report Size (5)
	0x81, 0x01, //     Input - padding
	0x05, 0x01, //     Usage Page (Generic Desktop)
	0x09, 0x30, //     Usage (X)
	0x09, 0x31, //     Usage (Y)
	0x09, 0x38, //     Usage (Wheel)
	0x15, 0x81, //     Logical Minimum (-127)
	0x25, 0x7F, //     Logical Maximum (127)
	0x75, 0x08, //     Report Size (8)
	0x95, 0x03, //     Report Count (3)
	0x81, 0x06, //     Input (Data, Variable, Relative)
	0xC0, //   End Collection
	0xC0, // End Collection
}
