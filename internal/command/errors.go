package command

import "fmt"

// Kind classifies why a batch failed.
type Kind int

const (
	// KindParse is a structurally invalid request; nothing ran.
	KindParse Kind = iota
	// KindExecution is a command whose body could not be carried out.
	KindExecution
	// KindDevice is a failure reported by the HID backend.
	KindDevice
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindExecution:
		return "execution"
	case KindDevice:
		return "device"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error reports the failing command of a batch. Commands before Index have
// already taken effect.
type Error struct {
	Kind  Kind
	Index int // -1 for KindParse
	Type  string
	Err   error
}

func (e *Error) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error in command %d (%s): %v", e.Kind, e.Index, e.Type, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
