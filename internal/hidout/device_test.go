package hidout_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kb "github.com/Alia5/hidbridge/hid/keyboard"
	"github.com/Alia5/hidbridge/internal/hidout"
	"github.com/Alia5/hidbridge/internal/log"
	th "github.com/Alia5/hidbridge/internal/testing"
)

func TestMouseMove(t *testing.T) {
	tests := []struct {
		name      string
		dx, dy, w int
		expected  [][]byte
	}{
		{
			name:     "small move",
			dx:       5,
			expected: [][]byte{{0, 5, 0, 0}},
		},
		{
			name:     "negative y",
			dy:       -3,
			expected: [][]byte{{0, 0, 0xFD, 0}},
		},
		{
			name: "split beyond one report",
			dx:   300,
			dy:   -130,
			expected: [][]byte{
				{0, 127, 0x81, 0},
				{0, 127, 0xFD, 0},
				{0, 46, 0, 0},
			},
		},
		{
			name:     "wheel only",
			w:        2,
			expected: [][]byte{{0, 0, 0, 2}},
		},
		{
			name: "zero move sends nothing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := th.NewRecordingSink()
			d := hidout.NewDevice(sink, nil)
			require.NoError(t, d.MouseMove(tt.dx, tt.dy, tt.w))
			assert.Equal(t, tt.expected, sink.Stream("mouse"))
		})
	}
}

func TestMouseButtons(t *testing.T) {
	sink := th.NewRecordingSink()
	d := hidout.NewDevice(sink, nil)

	require.NoError(t, d.MouseClick(hidout.ButtonLeft))
	require.NoError(t, d.MousePress(hidout.ButtonRight))
	require.NoError(t, d.MouseMove(1, 0, 0))
	require.NoError(t, d.MouseRelease(hidout.ButtonRight))

	assert.Equal(t, [][]byte{
		{0x01, 0, 0, 0},
		{0x00, 0, 0, 0},
		{0x02, 0, 0, 0},
		{0x02, 1, 0, 0}, // held button carried through the move
		{0x00, 0, 0, 0},
	}, sink.Stream("mouse"))
}

func TestKeyChord(t *testing.T) {
	sink := th.NewRecordingSink()
	d := hidout.NewDevice(sink, nil)

	require.NoError(t, d.KeyPress(kb.KeyLeftCtrl, kb.KeyLeftAlt, kb.KeyDelete))
	require.NoError(t, d.KeyReleaseAll())

	assert.Equal(t, [][]byte{
		{kb.ModLeftCtrl | kb.ModLeftAlt, 0, kb.KeyDelete, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}, sink.Stream("kbd"))
}

func TestTypeText(t *testing.T) {
	sink := th.NewRecordingSink()
	d := hidout.NewDevice(sink, nil)

	require.NoError(t, d.TypeText("Hi"))
	assert.Equal(t, [][]byte{
		{kb.ModLeftShift, 0, kb.KeyH, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, kb.KeyI, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}, sink.Stream("kbd"))
}

func TestTypeTextUnsupported(t *testing.T) {
	sink := th.NewRecordingSink()
	d := hidout.NewDevice(sink, nil)

	err := d.TypeText("ok ☃")
	assert.ErrorIs(t, err, kb.ErrUnsupportedChar)
	assert.NotErrorIs(t, err, hidout.ErrDevice)
	assert.Empty(t, sink.Reports, "nothing is typed when the text is rejected")
}

func TestSinkFailureIsDeviceError(t *testing.T) {
	sink := th.NewRecordingSink()
	sink.FailAfter = 1
	d := hidout.NewDevice(sink, nil)

	require.NoError(t, d.KeyPress(kb.KeyA))
	err := d.KeyReleaseAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, hidout.ErrDevice)
	assert.ErrorIs(t, err, th.ErrInjected)
}

func TestFailedWriteLeavesNoKeyHeld(t *testing.T) {
	tests := []struct {
		name   string
		failed func(d *hidout.Device) error
	}{
		{"type text", func(d *hidout.Device) error { return d.TypeText("a") }},
		{"key press", func(d *hidout.Device) error { return d.KeyPress(kb.KeyLeftShift, kb.KeyA) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := th.NewRecordingSink()
			sink.FailAfter = 0
			d := hidout.NewDevice(sink, nil)
			require.ErrorIs(t, tt.failed(d), hidout.ErrDevice)

			sink.FailAfter = -1
			require.NoError(t, d.TypeText("b"))
			assert.Equal(t, [][]byte{
				{0, 0, kb.KeyB, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0},
			}, sink.Stream("kbd"))
		})
	}
}

func TestRawTrace(t *testing.T) {
	var buf bytes.Buffer
	d := hidout.NewDevice(th.NewRecordingSink(), log.NewRaw(&buf))
	require.NoError(t, d.MouseMove(1, 2, 0))
	assert.Contains(t, buf.String(), "mouse report: 4 bytes, hex: 00 01 02 00")
}

func TestCloseReleasesEverything(t *testing.T) {
	sink := th.NewRecordingSink()
	d := hidout.NewDevice(sink, nil)
	require.NoError(t, d.MousePress(hidout.ButtonLeft))
	require.NoError(t, d.KeyPress(kb.KeyA))

	require.NoError(t, d.Close())
	assert.True(t, sink.Closed)
	kbd := sink.Stream("kbd")
	ms := sink.Stream("mouse")
	assert.Equal(t, make([]byte, 8), kbd[len(kbd)-1])
	assert.Equal(t, []byte{0, 0, 0, 0}, ms[len(ms)-1])
}

func TestParseButton(t *testing.T) {
	b, ok := hidout.ParseButton("middle")
	assert.True(t, ok)
	assert.Equal(t, hidout.ButtonMiddle, b)
	_, ok = hidout.ParseButton("BACK")
	assert.False(t, ok)
	assert.Equal(t, "RIGHT", hidout.ButtonRight.String())
}
