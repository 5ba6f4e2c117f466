package testing

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Alia5/hidbridge/internal/hidout"
)

// ErrInjected is returned by fakes configured to fail.
var ErrInjected = errors.New("injected failure")

// Report is one report captured by RecordingSink.
type Report struct {
	Stream string // "kbd" or "mouse"
	Data   []byte
}

// RecordingSink is a hidout.ReportSink that keeps every report in memory.
type RecordingSink struct {
	mu      sync.Mutex
	Reports []Report
	// FailAfter makes writes fail once this many reports were recorded; <0 never fails.
	FailAfter int
	Closed    bool
}

// NewRecordingSink returns a sink that never fails.
func NewRecordingSink() *RecordingSink { return &RecordingSink{FailAfter: -1} }

func (s *RecordingSink) record(stream string, report []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailAfter >= 0 && len(s.Reports) >= s.FailAfter {
		return ErrInjected
	}
	s.Reports = append(s.Reports, Report{Stream: stream, Data: append([]byte(nil), report...)})
	return nil
}

func (s *RecordingSink) WriteKeyboardReport(report []byte) error { return s.record("kbd", report) }
func (s *RecordingSink) WriteMouseReport(report []byte) error    { return s.record("mouse", report) }

func (s *RecordingSink) Close() error {
	s.mu.Lock()
	s.Closed = true
	s.mu.Unlock()
	return nil
}

// Stream returns the reports written to one stream.
func (s *RecordingSink) Stream(name string) [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out [][]byte
	for _, r := range s.Reports {
		if r.Stream == name {
			out = append(out, r.Data)
		}
	}
	return out
}

// RecordingOutput is a hidout.Output that records each call as a short string
// such as "move(5,0,0)" or "press[4 5]".
type RecordingOutput struct {
	mu    sync.Mutex
	Calls []string
	// FailPrefix, when set, makes every call starting with it return FailErr.
	FailPrefix string
	FailErr    error
}

func (o *RecordingOutput) record(format string, args ...any) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	call := fmt.Sprintf(format, args...)
	if o.FailPrefix != "" && strings.HasPrefix(call, o.FailPrefix) {
		return o.FailErr
	}
	o.Calls = append(o.Calls, call)
	return nil
}

// Snapshot returns a copy of the recorded calls.
func (o *RecordingOutput) Snapshot() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.Calls...)
}

func (o *RecordingOutput) MouseMove(dx, dy, wheel int) error {
	return o.record("move(%d,%d,%d)", dx, dy, wheel)
}
func (o *RecordingOutput) MouseClick(b hidout.Button) error   { return o.record("click(%s)", b) }
func (o *RecordingOutput) MousePress(b hidout.Button) error   { return o.record("mpress(%s)", b) }
func (o *RecordingOutput) MouseRelease(b hidout.Button) error { return o.record("mrelease(%s)", b) }
func (o *RecordingOutput) KeyPress(codes ...uint8) error      { return o.record("press%v", codes) }
func (o *RecordingOutput) KeyRelease(codes ...uint8) error    { return o.record("release%v", codes) }
func (o *RecordingOutput) KeyReleaseAll() error               { return o.record("releaseall") }
func (o *RecordingOutput) TypeText(s string) error            { return o.record("type(%s)", s) }
