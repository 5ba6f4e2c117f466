package keycode

import kb "github.com/Alia5/hidbridge/hid/keyboard"

// aliases are the short symbolic spellings accepted in PRESS commands. Several
// spellings map to the same usage.
var aliases = map[string]uint8{
	"WINDOWS":     kb.KeyLeftGUI,
	"GUI":         kb.KeyLeftGUI,
	"APP":         kb.KeyApplication,
	"MENU":        kb.KeyApplication,
	"SHIFT":       kb.KeyLeftShift,
	"ALT":         kb.KeyLeftAlt,
	"CONTROL":     kb.KeyLeftCtrl,
	"CTRL":        kb.KeyLeftCtrl,
	"DOWNARROW":   kb.KeyDown,
	"DOWN":        kb.KeyDown,
	"LEFTARROW":   kb.KeyLeft,
	"LEFT":        kb.KeyLeft,
	"RIGHTARROW":  kb.KeyRight,
	"RIGHT":       kb.KeyRight,
	"UPARROW":     kb.KeyUp,
	"UP":          kb.KeyUp,
	"BREAK":       kb.KeyPause,
	"PAUSE":       kb.KeyPause,
	"CAPSLOCK":    kb.KeyCapsLock,
	"CAPS":        kb.KeyCapsLock,
	"DELETE":      kb.KeyDelete,
	"END":         kb.KeyEnd,
	"ESC":         kb.KeyEscape,
	"ESCAPE":      kb.KeyEscape,
	"HOME":        kb.KeyHome,
	"INSERT":      kb.KeyInsert,
	"NUMLOCK":     kb.KeyNumLock,
	"PAGEUP":      kb.KeyPageUp,
	"PAGEDOWN":    kb.KeyPageDown,
	"PRINTSCREEN": kb.KeyPrintScreen,
	"ENTER":       kb.KeyEnter,
	"SCROLLLOCK":  kb.KeyScrollLock,
	"SPACE":       kb.KeySpace,
	"TAB":         kb.KeyTab,
	"BACKSPACE":   kb.KeyBackspace,

	"A": kb.KeyA, "B": kb.KeyB, "C": kb.KeyC, "D": kb.KeyD, "E": kb.KeyE,
	"F": kb.KeyF, "G": kb.KeyG, "H": kb.KeyH, "I": kb.KeyI, "J": kb.KeyJ,
	"K": kb.KeyK, "L": kb.KeyL, "M": kb.KeyM, "N": kb.KeyN, "O": kb.KeyO,
	"P": kb.KeyP, "Q": kb.KeyQ, "R": kb.KeyR, "S": kb.KeyS, "T": kb.KeyT,
	"U": kb.KeyU, "V": kb.KeyV, "W": kb.KeyW, "X": kb.KeyX, "Y": kb.KeyY,
	"Z": kb.KeyZ,

	"F1": kb.KeyF1, "F2": kb.KeyF2, "F3": kb.KeyF3, "F4": kb.KeyF4,
	"F5": kb.KeyF5, "F6": kb.KeyF6, "F7": kb.KeyF7, "F8": kb.KeyF8,
	"F9": kb.KeyF9, "F10": kb.KeyF10, "F11": kb.KeyF11, "F12": kb.KeyF12,
}

// canonical holds the full keycode identifier set. A name missing from the
// alias table is looked up here.
var canonical = map[string]uint8{
	"A": kb.KeyA, "B": kb.KeyB, "C": kb.KeyC, "D": kb.KeyD, "E": kb.KeyE,
	"F": kb.KeyF, "G": kb.KeyG, "H": kb.KeyH, "I": kb.KeyI, "J": kb.KeyJ,
	"K": kb.KeyK, "L": kb.KeyL, "M": kb.KeyM, "N": kb.KeyN, "O": kb.KeyO,
	"P": kb.KeyP, "Q": kb.KeyQ, "R": kb.KeyR, "S": kb.KeyS, "T": kb.KeyT,
	"U": kb.KeyU, "V": kb.KeyV, "W": kb.KeyW, "X": kb.KeyX, "Y": kb.KeyY,
	"Z": kb.KeyZ,

	"ONE": kb.Key1, "TWO": kb.Key2, "THREE": kb.Key3, "FOUR": kb.Key4,
	"FIVE": kb.Key5, "SIX": kb.Key6, "SEVEN": kb.Key7, "EIGHT": kb.Key8,
	"NINE": kb.Key9, "ZERO": kb.Key0,

	"ENTER":         kb.KeyEnter,
	"RETURN":        kb.KeyEnter,
	"ESCAPE":        kb.KeyEscape,
	"BACKSPACE":     kb.KeyBackspace,
	"TAB":           kb.KeyTab,
	"SPACEBAR":      kb.KeySpace,
	"SPACE":         kb.KeySpace,
	"MINUS":         kb.KeyMinus,
	"EQUALS":        kb.KeyEqual,
	"LEFT_BRACKET":  kb.KeyLeftBrace,
	"RIGHT_BRACKET": kb.KeyRightBrace,
	"BACKSLASH":     kb.KeyBackslash,
	"POUND":         kb.KeyNonUSHash,
	"SEMICOLON":     kb.KeySemicolon,
	"QUOTE":         kb.KeyApostrophe,
	"GRAVE_ACCENT":  kb.KeyGrave,
	"COMMA":         kb.KeyComma,
	"PERIOD":        kb.KeyPeriod,
	"FORWARD_SLASH": kb.KeySlash,
	"CAPS_LOCK":     kb.KeyCapsLock,
	"PRINT_SCREEN":  kb.KeyPrintScreen,
	"SCROLL_LOCK":   kb.KeyScrollLock,
	"PAUSE":         kb.KeyPause,
	"INSERT":        kb.KeyInsert,
	"HOME":          kb.KeyHome,
	"PAGE_UP":       kb.KeyPageUp,
	"DELETE":        kb.KeyDelete,
	"END":           kb.KeyEnd,
	"PAGE_DOWN":     kb.KeyPageDown,
	"RIGHT_ARROW":   kb.KeyRight,
	"LEFT_ARROW":    kb.KeyLeft,
	"DOWN_ARROW":    kb.KeyDown,
	"UP_ARROW":      kb.KeyUp,
	"APPLICATION":   kb.KeyApplication,
	"POWER":         kb.KeyPower,

	"KEYPAD_NUMLOCK":       kb.KeyNumLock,
	"KEYPAD_FORWARD_SLASH": kb.KeyKpSlash,
	"KEYPAD_ASTERISK":      kb.KeyKpAsterisk,
	"KEYPAD_MINUS":         kb.KeyKpMinus,
	"KEYPAD_PLUS":          kb.KeyKpPlus,
	"KEYPAD_ENTER":         kb.KeyKpEnter,
	"KEYPAD_ONE":           kb.KeyKp1,
	"KEYPAD_TWO":           kb.KeyKp2,
	"KEYPAD_THREE":         kb.KeyKp3,
	"KEYPAD_FOUR":          kb.KeyKp4,
	"KEYPAD_FIVE":          kb.KeyKp5,
	"KEYPAD_SIX":           kb.KeyKp6,
	"KEYPAD_SEVEN":         kb.KeyKp7,
	"KEYPAD_EIGHT":         kb.KeyKp8,
	"KEYPAD_NINE":          kb.KeyKp9,
	"KEYPAD_ZERO":          kb.KeyKp0,
	"KEYPAD_PERIOD":        kb.KeyKpDot,
	"KEYPAD_EQUALS":        kb.KeyKpEqual,
	"KEYPAD_BACKSLASH":     kb.KeyNonUSBackslash,

	"F1": kb.KeyF1, "F2": kb.KeyF2, "F3": kb.KeyF3, "F4": kb.KeyF4,
	"F5": kb.KeyF5, "F6": kb.KeyF6, "F7": kb.KeyF7, "F8": kb.KeyF8,
	"F9": kb.KeyF9, "F10": kb.KeyF10, "F11": kb.KeyF11, "F12": kb.KeyF12,
	"F13": kb.KeyF13, "F14": kb.KeyF14, "F15": kb.KeyF15, "F16": kb.KeyF16,
	"F17": kb.KeyF17, "F18": kb.KeyF18, "F19": kb.KeyF19, "F20": kb.KeyF20,
	"F21": kb.KeyF21, "F22": kb.KeyF22, "F23": kb.KeyF23, "F24": kb.KeyF24,

	"LEFT_CONTROL":  kb.KeyLeftCtrl,
	"CONTROL":       kb.KeyLeftCtrl,
	"LEFT_SHIFT":    kb.KeyLeftShift,
	"SHIFT":         kb.KeyLeftShift,
	"LEFT_ALT":      kb.KeyLeftAlt,
	"ALT":           kb.KeyLeftAlt,
	"OPTION":        kb.KeyLeftAlt,
	"LEFT_GUI":      kb.KeyLeftGUI,
	"GUI":           kb.KeyLeftGUI,
	"WINDOWS":       kb.KeyLeftGUI,
	"COMMAND":       kb.KeyLeftGUI,
	"RIGHT_CONTROL": kb.KeyRightCtrl,
	"RIGHT_SHIFT":   kb.KeyRightShift,
	"RIGHT_ALT":     kb.KeyRightAlt,
	"RIGHT_GUI":     kb.KeyRightGUI,
}
