// Package keyboard models a boot-protocol HID keyboard: usage codes, the
// 8-byte input report and a US layout for typing text.
package keyboard

import (
	"errors"
	"slices"
)

// MaxKeys is the number of simultaneous non-modifier keys a boot report carries.
const MaxKeys = 6

// ReportSize is the length of a boot keyboard input report.
const ReportSize = 8

// ErrRollover is returned when more than MaxKeys non-modifier keys would be held.
var ErrRollover = errors.New("keyboard: too many keys held")

// InputState represents the held keys of the keyboard.
type InputState struct {
	Modifiers uint8
	// Keys holds pressed non-modifier usages in press order.
	Keys []uint8
}

// Press adds codes to the held set. Modifier usages set their modifier bit.
// Codes already held are ignored. On ErrRollover the state is unchanged.
func (st *InputState) Press(codes ...uint8) error {
	mods := st.Modifiers
	keys := slices.Clone(st.Keys)
	for _, c := range codes {
		if IsModifier(c) {
			mods |= ModifierBit(c)
			continue
		}
		if c == 0 || slices.Contains(keys, c) {
			continue
		}
		if len(keys) >= MaxKeys {
			return ErrRollover
		}
		keys = append(keys, c)
	}
	st.Modifiers = mods
	st.Keys = keys
	return nil
}

// Release removes codes from the held set.
func (st *InputState) Release(codes ...uint8) {
	for _, c := range codes {
		if IsModifier(c) {
			st.Modifiers &^= ModifierBit(c)
			continue
		}
		st.Keys = slices.DeleteFunc(st.Keys, func(k uint8) bool { return k == c })
	}
}

// ReleaseAll clears every held key and modifier.
func (st *InputState) ReleaseAll() {
	st.Modifiers = 0
	st.Keys = nil
}

// Held reports whether code is currently held.
func (st *InputState) Held(code uint8) bool {
	if IsModifier(code) {
		return st.Modifiers&ModifierBit(code) != 0
	}
	return slices.Contains(st.Keys, code)
}

// BuildReport encodes the state into the 8-byte boot keyboard report.
//
// Report layout (8 bytes):
//
//	Byte 0: Modifiers (8 bits)
//	Byte 1: Reserved (0x00)
//	Bytes 2-7: Up to six held key usages
func (st InputState) BuildReport() []byte {
	b := make([]byte, ReportSize)
	b[0] = st.Modifiers
	copy(b[2:], st.Keys)
	return b
}
