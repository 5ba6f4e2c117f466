package keycode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	kb "github.com/Alia5/hidbridge/hid/keyboard"
	"github.com/Alia5/hidbridge/keycode"
)

func TestResolveAliases(t *testing.T) {
	pairs := [][2]string{
		{"CTRL", "CONTROL"},
		{"UP", "UPARROW"},
		{"DOWN", "DOWNARROW"},
		{"LEFT", "LEFTARROW"},
		{"RIGHT", "RIGHTARROW"},
		{"WINDOWS", "GUI"},
		{"APP", "MENU"},
		{"BREAK", "PAUSE"},
		{"CAPS", "CAPSLOCK"},
		{"ESC", "ESCAPE"},
	}
	for _, p := range pairs {
		a, _ := keycode.Resolve([]string{p[0]})
		b, _ := keycode.Resolve([]string{p[1]})
		assert.Len(t, a, 1, p[0])
		assert.Equal(t, a, b, "%s and %s should resolve alike", p[0], p[1])
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		in             []string
		wantCodes      []uint8
		wantUnresolved []string
	}{
		{
			name:      "lowercase normalized",
			in:        []string{"ctrl", "c"},
			wantCodes: []uint8{kb.KeyLeftCtrl, kb.KeyC},
		},
		{
			name:           "unknown yields empty",
			in:             []string{"FOO"},
			wantCodes:      []uint8{},
			wantUnresolved: []string{"FOO"},
		},
		{
			name:           "surrounding spaces are not trimmed",
			in:             []string{" A ", "A"},
			wantCodes:      []uint8{kb.KeyA},
			wantUnresolved: []string{" A "},
		},
		{
			name:           "valid subset kept in order",
			in:             []string{"FOO", "A"},
			wantCodes:      []uint8{kb.KeyA},
			wantUnresolved: []string{"FOO"},
		},
		{
			name:      "canonical fallback",
			in:        []string{"LEFT_ARROW", "keypad_one", "RIGHT_CONTROL", "F24"},
			wantCodes: []uint8{kb.KeyLeft, kb.KeyKp1, kb.KeyRightCtrl, kb.KeyF24},
		},
		{
			name:      "arrow alias matches canonical",
			in:        []string{"UP", "UP_ARROW"},
			wantCodes: []uint8{kb.KeyUp, kb.KeyUp},
		},
		{
			name:      "nil input",
			wantCodes: []uint8{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes, unresolved := keycode.Resolve(tt.in)
			assert.Equal(t, tt.wantCodes, codes)
			assert.Equal(t, tt.wantUnresolved, unresolved)
		})
	}
}

func TestEntries(t *testing.T) {
	entries := keycode.Entries()
	seen := map[string]bool{}
	for i, e := range entries {
		assert.False(t, seen[e.Name], "duplicate entry %s", e.Name)
		seen[e.Name] = true
		if i > 0 {
			assert.Less(t, entries[i-1].Name, e.Name)
		}
		code, ok := keycode.Lookup(e.Name)
		assert.True(t, ok)
		assert.Equal(t, e.Code, code)
	}
	assert.True(t, seen["CTRL"])
	assert.True(t, seen["KEYPAD_NUMLOCK"])
}
