package keyboard

import (
	"errors"
	"fmt"
)

// ErrUnsupportedChar is returned for characters the US layout cannot type.
var ErrUnsupportedChar = errors.New("keyboard: unsupported character")

// charToKey maps ASCII characters to their usage code on a US layout.
var charToKey = map[rune]uint8{
	'a': KeyA, 'b': KeyB, 'c': KeyC, 'd': KeyD, 'e': KeyE, 'f': KeyF, 'g': KeyG,
	'h': KeyH, 'i': KeyI, 'j': KeyJ, 'k': KeyK, 'l': KeyL, 'm': KeyM, 'n': KeyN,
	'o': KeyO, 'p': KeyP, 'q': KeyQ, 'r': KeyR, 's': KeyS, 't': KeyT, 'u': KeyU,
	'v': KeyV, 'w': KeyW, 'x': KeyX, 'y': KeyY, 'z': KeyZ,

	'1': Key1, '2': Key2, '3': Key3, '4': Key4, '5': Key5,
	'6': Key6, '7': Key7, '8': Key8, '9': Key9, '0': Key0,

	'!': Key1, '@': Key2, '#': Key3, '$': Key4, '%': Key5,
	'^': Key6, '&': Key7, '*': Key8, '(': Key9, ')': Key0,

	'-': KeyMinus, '_': KeyMinus,
	'=': KeyEqual, '+': KeyEqual,
	'[': KeyLeftBrace, '{': KeyLeftBrace,
	']': KeyRightBrace, '}': KeyRightBrace,
	'\\': KeyBackslash, '|': KeyBackslash,
	';': KeySemicolon, ':': KeySemicolon,
	'\'': KeyApostrophe, '"': KeyApostrophe,
	'`': KeyGrave, '~': KeyGrave,
	',': KeyComma, '<': KeyComma,
	'.': KeyPeriod, '>': KeyPeriod,
	'/': KeySlash, '?': KeySlash,

	' ':  KeySpace,
	'\n': KeyEnter,
	'\t': KeyTab,
	'\b': KeyBackspace,
	0x1b: KeyEscape,
	0x7f: KeyDelete,
}

const shifted = `!@#$%^&*()_+{}|:"~<>?`

// Keystroke returns the usage codes to hold for r on a US layout:
// the key and, when needed, Left Shift.
func Keystroke(r rune) ([]uint8, error) {
	if r >= 'A' && r <= 'Z' {
		return []uint8{KeyLeftShift, charToKey[r+('a'-'A')]}, nil
	}
	code, ok := charToKey[r]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChar, r)
	}
	for _, s := range shifted {
		if s == r {
			return []uint8{KeyLeftShift, code}, nil
		}
	}
	return []uint8{code}, nil
}

// CheckText returns the first character of s that cannot be typed, wrapped in
// ErrUnsupportedChar.
func CheckText(s string) error {
	for _, r := range s {
		if _, err := Keystroke(r); err != nil {
			return err
		}
	}
	return nil
}
