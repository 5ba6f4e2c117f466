//go:build linux

package hidout

import (
	"encoding/binary"
	"fmt"
	"os"
	"slices"

	"golang.org/x/sys/unix"

	"github.com/Alia5/hidbridge/hid/keyboard"
	"github.com/Alia5/hidbridge/hid/mouse"
)

const (
	uhidPath       = "/dev/uhid"
	busUSB         = 0x03
	reportIDKbd    = 0x01
	reportIDMouse  = 0x02
	uhidVendorID   = 0x2E8A
	uhidProductID  = 0x0012
	collectionOpen = 0xA1
)

// Event types and the packed struct uhid_event layout from linux/uhid.h.
const (
	uhidDestroy = 1
	uhidCreate2 = 11
	uhidInput2  = 12

	uhidDataMax   = 4096
	uhidEventSize = 4 + 128 + 64 + 64 + 2 + 2 + 4*4 + uhidDataMax
)

// uhidSink exposes the bridge as one composite virtual HID device through
// /dev/uhid, for hosts where the bridge runs on the target machine itself.
// Kernel to user events (start, open, LED output reports) are never read; the
// kernel drops them once its queue is full.
type uhidSink struct {
	f *os.File
}

func openUHID(cfg Config) (ReportSink, error) {
	fd, err := unix.Open(uhidPath, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uhidPath, err)
	}
	u := &uhidSink{f: os.NewFile(uintptr(fd), uhidPath)}
	if err := u.send(create2Event(cfg.DeviceName, compositeDescriptor())); err != nil {
		_ = u.f.Close()
		return nil, fmt.Errorf("create uhid device: %w", err)
	}
	return u, nil
}

func create2Event(name string, desc []byte) []byte {
	ev := make([]byte, uhidEventSize)
	ne := binary.NativeEndian
	ne.PutUint32(ev[0:], uhidCreate2)
	copy(ev[4:4+127], name)
	ne.PutUint16(ev[260:], uint16(len(desc)))
	ne.PutUint16(ev[262:], busUSB)
	ne.PutUint32(ev[264:], uhidVendorID)
	ne.PutUint32(ev[268:], uhidProductID)
	copy(ev[280:], desc)
	return ev
}

func input2Event(id byte, report []byte) []byte {
	ev := make([]byte, uhidEventSize)
	ne := binary.NativeEndian
	ne.PutUint32(ev[0:], uhidInput2)
	ev[6] = id
	n := copy(ev[7:], report)
	ne.PutUint16(ev[4:], uint16(n+1))
	return ev
}

// compositeDescriptor joins the keyboard and mouse descriptors into one,
// tagging each application collection with its report ID.
func compositeDescriptor() []byte {
	withID := func(desc []byte, id byte) []byte {
		i := slices.Index(desc, collectionOpen)
		out := slices.Clone(desc[:i+2])
		out = append(out, 0x85, id) // Report ID
		return append(out, desc[i+2:]...)
	}
	return append(withID(keyboard.ReportDescriptor, reportIDKbd), withID(mouse.ReportDescriptor, reportIDMouse)...)
}

func (u *uhidSink) send(ev []byte) error {
	_, err := u.f.Write(ev)
	return err
}

func (u *uhidSink) WriteKeyboardReport(report []byte) error {
	return u.send(input2Event(reportIDKbd, report))
}

func (u *uhidSink) WriteMouseReport(report []byte) error {
	return u.send(input2Event(reportIDMouse, report))
}

func (u *uhidSink) Close() error {
	ev := make([]byte, uhidEventSize)
	binary.NativeEndian.PutUint32(ev, uhidDestroy)
	_ = u.send(ev)
	return u.f.Close()
}
