//go:build linux

package board

import (
	"testing"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
)

func TestInitialButtonState(t *testing.T) {
	held := evdev.StateMap{evdev.BTN_0: true, evdev.KEY_A: false}
	tests := []struct {
		name string
		keys evdev.StateMap
		cfg  ButtonConfig
		want bool
	}{
		{"held at startup", held, ButtonConfig{Code: uint16(evdev.BTN_0)}, true},
		{"other key released", held, ButtonConfig{Code: uint16(evdev.KEY_A)}, false},
		{"no key state", nil, ButtonConfig{Code: uint16(evdev.BTN_0)}, false},
		{"inverted and held", held, ButtonConfig{Code: uint16(evdev.BTN_0), Invert: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Pressed(keyValue(tt.keys, tt.cfg.Code)))
		})
	}
}
