package command

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/hidbridge/internal/hidout"
	"github.com/Alia5/hidbridge/internal/metrics"
	"github.com/Alia5/hidbridge/internal/state"
	th "github.com/Alia5/hidbridge/internal/testing"
)

func newTestInterpreter(t *testing.T, delay time.Duration) (*Interpreter, *th.RecordingOutput, *state.State, *metrics.Metrics) {
	t.Helper()
	out := &th.RecordingOutput{}
	st := state.New()
	m := metrics.New(prometheus.NewRegistry())
	in := NewInterpreter(out, st, Options{
		Clock:       clockwork.NewFakeClock(),
		PacingDelay: delay,
		Logger:      slog.New(slog.DiscardHandler),
		Metrics:     m,
	})
	return in, out, st, m
}

func asError(t *testing.T, err error) *Error {
	t.Helper()
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	return cerr
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"commands": [`},
		{"missing commands", `{"cmds": []}`},
		{"null commands", `{"commands": null}`},
		{"commands not array", `{"commands": {"type": "MOVE"}}`},
		{"entry not object", `{"commands": [1, 2]}`},
		{"top level array", `[{"type": "MOVE"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, _, _ := newTestInterpreter(t, 0)
			cerr := asError(t, in.Execute([]byte(tt.body), nil))
			assert.Equal(t, KindParse, cerr.Kind)
			assert.Equal(t, -1, cerr.Index)
			assert.Empty(t, out.Snapshot())
		})
	}
}

func TestCommandSemantics(t *testing.T) {
	tests := []struct {
		name     string
		commands string
		expected []string
	}{
		{
			name:     "move directions",
			commands: `{"type":"MOVE","body":{"type":"LEFT","magnitude":10}},{"type":"MOVE","body":{"type":"RIGHT","magnitude":4}},{"type":"MOVE","body":{"type":"UP","magnitude":5}},{"type":"MOVE","body":{"type":"DOWN","magnitude":6}}`,
			expected: []string{"move(-10,0,0)", "move(4,0,0)", "move(0,-5,0)", "move(0,6,0)"},
		},
		{
			name:     "click actions",
			commands: `{"type":"CLICK","body":{"type":"LEFT","action":"CLICK"}},{"type":"CLICK","body":{"type":"RIGHT","action":"HOLD"}},{"type":"CLICK","body":{"type":"MIDDLE","action":"RELEASE"}}`,
			expected: []string{"click(LEFT)", "mpress(RIGHT)", "mrelease(MIDDLE)"},
		},
		{
			name:     "press chord then release",
			commands: `{"type":"PRESS","body":{"keycodes":["CTRL","alt","DELETE"]}}`,
			expected: []string{"press[224 226 76]", "releaseall"},
		},
		{
			name:     "type text",
			commands: `{"type":"TYPE","body":{"text":"hello world"}}`,
			expected: []string{"type(hello world)"},
		},
		{
			name:     "scroll",
			commands: `{"type":"SCROLL","body":{"type":"UP","magnitude":3}},{"type":"SCROLL","body":{"type":"DOWN","magnitude":2}}`,
			expected: []string{"move(0,0,3)", "move(0,0,-2)"},
		},
		{
			name:     "magnitude as string and fraction",
			commands: `{"type":"MOVE","body":{"type":"RIGHT","magnitude":"12"}},{"type":"MOVE","body":{"type":"LEFT","magnitude":2.9}}`,
			expected: []string{"move(12,0,0)", "move(-2,0,0)"},
		},
		{
			name:     "unknown values are no-ops",
			commands: `{"type":"MOVE","body":{"type":"SIDEWAYS"}},{"type":"CLICK","body":{"type":"BACK","action":"CLICK"}},{"type":"CLICK","body":{"type":"LEFT","action":"TAP"}},{"type":"SCROLL","body":{"type":"LEFT","magnitude":1}}`,
			expected: nil,
		},
		{
			name:     "unknown type skipped",
			commands: `{"type":"JUMP","body":{}},{"type":"MOVE","body":{"type":"RIGHT","magnitude":1}}`,
			expected: []string{"move(1,0,0)"},
		},
		{
			name:     "unresolved key skipped",
			commands: `{"type":"PRESS","body":{"keycodes":["FOO","A"]}}`,
			expected: []string{"press[4]", "releaseall"},
		},
		{
			name:     "nothing resolved still releases",
			commands: `{"type":"PRESS","body":{"keycodes":["FOO"]}}`,
			expected: []string{"releaseall"},
		},
		{
			name:     "empty batch",
			commands: ``,
			expected: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, _, _ := newTestInterpreter(t, 0)
			err := in.Execute([]byte(`{"commands":[`+tt.commands+`]}`), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.Snapshot())
		})
	}
}

func TestModeCommand(t *testing.T) {
	in, _, st, _ := newTestInterpreter(t, 0)

	require.NoError(t, in.Execute([]byte(`{"commands":[{"type":"MODE","body":{"type":"PARSED"}}]}`), nil))
	assert.Equal(t, state.ModeParsed, st.InputMode())

	require.NoError(t, in.Execute([]byte(`{"commands":[{"type":"MODE","body":{"type":"BOGUS"}}]}`), nil))
	assert.Equal(t, state.ModeParsed, st.InputMode(), "unknown mode leaves state unchanged")

	require.NoError(t, in.Execute([]byte(`{"commands":[{"type":"MODE","body":{"type":"LITERAL"}}]}`), nil))
	assert.Equal(t, state.ModeLiteral, st.InputMode())
}

func TestExecutionErrors(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{"missing magnitude", `{"type":"MOVE","body":{"type":"LEFT"}}`},
		{"bad magnitude string", `{"type":"MOVE","body":{"type":"LEFT","magnitude":"far"}}`},
		{"magnitude of wrong type", `{"type":"SCROLL","body":{"type":"UP","magnitude":true}}`},
		{"missing body", `{"type":"MOVE"}`},
		{"body not object", `{"type":"TYPE","body":"hi"}`},
		{"missing text", `{"type":"TYPE","body":{}}`},
		{"missing keycodes", `{"type":"PRESS","body":{}}`},
		{"keycodes not list", `{"type":"PRESS","body":{"keycodes":"A"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, _, _ := newTestInterpreter(t, 0)
			body := `{"commands":[{"type":"MOVE","body":{"type":"RIGHT","magnitude":1}},` + tt.command +
				`,{"type":"MOVE","body":{"type":"RIGHT","magnitude":2}}]}`
			cerr := asError(t, in.Execute([]byte(body), nil))
			assert.Equal(t, KindExecution, cerr.Kind)
			assert.Equal(t, 1, cerr.Index)
			assert.Equal(t, []string{"move(1,0,0)"}, out.Snapshot(), "commands before the failure stay executed, later ones never run")
		})
	}
}

func TestUntypeableTextIsExecutionError(t *testing.T) {
	out := &th.RecordingOutput{FailPrefix: "type", FailErr: fmt.Errorf("wrap: %w", assert.AnError)}
	in := NewInterpreter(out, state.New(), Options{Logger: slog.New(slog.DiscardHandler)})

	cerr := asError(t, in.Execute([]byte(`{"commands":[{"type":"TYPE","body":{"text":"☃"}}]}`), nil))
	assert.Equal(t, KindExecution, cerr.Kind)
	assert.Equal(t, TypeType, cerr.Type)
}

func TestDeviceError(t *testing.T) {
	out := &th.RecordingOutput{FailPrefix: "move", FailErr: fmt.Errorf("%w: write mouse report: broken pipe", hidout.ErrDevice)}
	m := metrics.New(prometheus.NewRegistry())
	in := NewInterpreter(out, state.New(), Options{Logger: slog.New(slog.DiscardHandler), Metrics: m})

	cerr := asError(t, in.Execute([]byte(`{"commands":[{"type":"MOVE","body":{"type":"UP","magnitude":1}}]}`), nil))
	assert.Equal(t, KindDevice, cerr.Kind)
	assert.ErrorIs(t, cerr, hidout.ErrDevice)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues(TypeMove, metrics.ResultError)))
}

func TestMetricsCounting(t *testing.T) {
	in, _, _, m := newTestInterpreter(t, 0)
	body := `{"commands":[{"type":"PRESS","body":{"keycodes":["NOPE","B"]}},{"type":"WAT"},{"type":"CLICK","body":{"type":"LEFT","action":"CLICK"}}]}`
	require.NoError(t, in.Execute([]byte(body), nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UnresolvedKeys.WithLabelValues("NOPE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues(TypePress, metrics.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("other", metrics.ResultSkipped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues(TypeClick, metrics.ResultOK)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.BatchDuration))
}

func TestPacing(t *testing.T) {
	out := &th.RecordingOutput{}
	clock := clockwork.NewFakeClock()
	in := NewInterpreter(out, state.New(), Options{
		Clock:       clock,
		PacingDelay: time.Second,
		Logger:      slog.New(slog.DiscardHandler),
	})
	body := `{"commands":[` +
		`{"type":"MOVE","body":{"type":"RIGHT","magnitude":1}},` +
		`{"type":"CLICK","body":{"type":"LEFT","action":"CLICK"}},` +
		`{"type":"CLICK","body":{"type":"RIGHT","action":"CLICK"}},` +
		`{"type":"NOPE"},` +
		`{"type":"MOVE","body":{"type":"LEFT","magnitude":1}}]}`

	done := make(chan error, 1)
	go func() { done <- in.Execute([]byte(body), nil) }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// after the first MOVE
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Equal(t, []string{"move(1,0,0)"}, out.Snapshot())

	// both CLICKs run back to back, then the unknown type is paced
	clock.Advance(time.Second)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Equal(t, []string{"move(1,0,0)", "click(LEFT)", "click(RIGHT)"}, out.Snapshot())

	clock.Advance(time.Second)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Equal(t, []string{"move(1,0,0)", "click(LEFT)", "click(RIGHT)", "move(-1,0,0)"}, out.Snapshot())

	select {
	case <-done:
		t.Fatal("batch finished before the last pacing delay elapsed")
	default:
	}
	clock.Advance(time.Second)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("batch did not finish")
	}
}

func TestMagnitudeUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    Magnitude
		wantErr bool
	}{
		{`5`, 5, false},
		{`-7.9`, -7, false},
		{`" 42 "`, 42, false},
		{`"-3"`, -3, false},
		{`"1.5"`, 0, true},
		{`"x"`, 0, true},
		{`1e12`, 0, true},
		{`[]`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var m Magnitude
			err := m.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{Kind: KindExecution, Index: 2, Type: TypeMove, Err: assert.AnError}
	assert.Contains(t, err.Error(), "execution error in command 2 (MOVE)")
	assert.Equal(t, "device", KindDevice.String())
}
