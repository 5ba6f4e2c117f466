// Package state holds the process-wide values the HTTP surface reports and
// the command interpreter changes.
package state

import (
	"strconv"
	"sync/atomic"
)

// InputMode is the client-declared interpretation mode. The bridge stores it
// for clients and never acts on it.
type InputMode int32

const (
	ModeLiteral InputMode = 0
	ModeParsed  InputMode = 1
)

// ParseInputMode maps LITERAL/PARSED to an InputMode.
func ParseInputMode(name string) (InputMode, bool) {
	switch name {
	case "LITERAL":
		return ModeLiteral, true
	case "PARSED":
		return ModeParsed, true
	}
	return 0, false
}

func (m InputMode) String() string {
	switch m {
	case ModeLiteral:
		return "LITERAL"
	case ModeParsed:
		return "PARSED"
	}
	return "InputMode(" + strconv.Itoa(int(m)) + ")"
}

// State is shared between the poll loop and the background button and
// indicator goroutines.
type State struct {
	mode      atomic.Int32
	button    atomic.Bool
	indicator atomic.Bool

	// OnIndicator, if set, is called with the new value after every toggle.
	OnIndicator func(on bool)
}

// New returns a State in LITERAL mode with the button released and the
// indicator off.
func New() *State { return &State{} }

func (s *State) InputMode() InputMode     { return InputMode(s.mode.Load()) }
func (s *State) SetInputMode(m InputMode) { s.mode.Store(int32(m)) }

func (s *State) ButtonStatus() bool     { return s.button.Load() }
func (s *State) SetButtonStatus(v bool) { s.button.Store(v) }
func (s *State) Indicator() bool        { return s.indicator.Load() }

// ToggleIndicator flips the indicator and returns the new value.
func (s *State) ToggleIndicator() bool {
	for {
		old := s.indicator.Load()
		if s.indicator.CompareAndSwap(old, !old) {
			if s.OnIndicator != nil {
				s.OnIndicator(!old)
			}
			return !old
		}
	}
}
