package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, ModeLiteral, s.InputMode())
	assert.False(t, s.ButtonStatus())
	assert.False(t, s.Indicator())
}

func TestParseInputMode(t *testing.T) {
	tests := []struct {
		in   string
		mode InputMode
		ok   bool
	}{
		{"LITERAL", ModeLiteral, true},
		{"PARSED", ModeParsed, true},
		{"parsed", 0, false},
		{"OTHER", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, ok := ParseInputMode(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.mode, m)
		})
	}
}

func TestToggleIndicator(t *testing.T) {
	s := New()
	var seen []bool
	s.OnIndicator = func(on bool) { seen = append(seen, on) }

	assert.True(t, s.ToggleIndicator())
	assert.False(t, s.ToggleIndicator())
	assert.True(t, s.ToggleIndicator())
	assert.True(t, s.Indicator())
	assert.Equal(t, []bool{true, false, true}, seen)
}

func TestButtonAndMode(t *testing.T) {
	s := New()
	s.SetButtonStatus(true)
	s.SetInputMode(ModeParsed)
	assert.True(t, s.ButtonStatus())
	assert.Equal(t, ModeParsed, s.InputMode())
	assert.Equal(t, "PARSED", s.InputMode().String())
}
