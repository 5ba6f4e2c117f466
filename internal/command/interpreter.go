package command

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Alia5/hidbridge/internal/hidout"
	"github.com/Alia5/hidbridge/internal/metrics"
	"github.com/Alia5/hidbridge/internal/state"
	"github.com/Alia5/hidbridge/keycode"
)

var clickButtons = map[string]hidout.Button{
	"LEFT":   hidout.ButtonLeft,
	"MIDDLE": hidout.ButtonMiddle,
	"RIGHT":  hidout.ButtonRight,
}

// Options tune an Interpreter.
type Options struct {
	Clock clockwork.Clock
	// PacingDelay is slept after every command except CLICK. Zero disables pacing.
	PacingDelay time.Duration
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
}

// Interpreter runs command batches in order against one HID output.
type Interpreter struct {
	out     hidout.Output
	state   *state.State
	clock   clockwork.Clock
	delay   time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewInterpreter returns an Interpreter driving out and updating st.
func NewInterpreter(out hidout.Output, st *state.State, opts Options) *Interpreter {
	in := &Interpreter{
		out:     out,
		state:   st,
		clock:   opts.Clock,
		delay:   opts.PacingDelay,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
	if in.clock == nil {
		in.clock = clockwork.NewRealClock()
	}
	if in.logger == nil {
		in.logger = slog.Default()
	}
	return in
}

// Execute parses body and runs its commands. It stops at the first failing
// command and returns an *Error; earlier commands are not undone.
func (in *Interpreter) Execute(body []byte, logger *slog.Logger) error {
	if logger == nil {
		logger = in.logger
	}
	batch, err := Parse(body)
	if err != nil {
		return err
	}
	return in.Run(batch, logger)
}

// Run executes an already parsed batch.
func (in *Interpreter) Run(batch Batch, logger *slog.Logger) error {
	if logger == nil {
		logger = in.logger
	}
	start := in.clock.Now()
	if in.metrics != nil {
		defer func() { in.metrics.ObserveBatch(start, in.clock.Now()) }()
	}
	logger.Info("Executing command batch", "commands", len(batch.Commands))

	for i, cmd := range batch.Commands {
		handled, err := in.exec(cmd, logger)
		if err != nil {
			kind := KindExecution
			if errors.Is(err, hidout.ErrDevice) {
				kind = KindDevice
			}
			in.count(cmd.Type, metrics.ResultError)
			logger.Error("Command failed", "index", i, "type", cmd.Type, "kind", kind, "error", err)
			return &Error{Kind: kind, Index: i, Type: cmd.Type, Err: err}
		}
		if handled {
			in.count(cmd.Type, metrics.ResultOK)
		} else {
			in.count(cmd.Type, metrics.ResultSkipped)
			logger.Debug("Skipping unknown command type", "index", i, "type", cmd.Type)
		}
		if cmd.Type != TypeClick && in.delay > 0 {
			in.clock.Sleep(in.delay)
		}
	}
	return nil
}

func (in *Interpreter) count(typ, result string) {
	if in.metrics == nil {
		return
	}
	switch typ {
	case TypeMove, TypeClick, TypePress, TypeType, TypeMode, TypeScroll:
	default:
		typ = "other"
	}
	in.metrics.CommandsTotal.WithLabelValues(typ, result).Inc()
}

// exec runs one command. handled is false for unknown command types.
func (in *Interpreter) exec(cmd Command, logger *slog.Logger) (handled bool, err error) {
	switch cmd.Type {
	case TypeMove:
		return true, in.move(cmd.Body)
	case TypeClick:
		return true, in.click(cmd.Body)
	case TypePress:
		return true, in.press(cmd.Body, logger)
	case TypeType:
		return true, in.typeText(cmd.Body)
	case TypeMode:
		return true, in.mode(cmd.Body, logger)
	case TypeScroll:
		return true, in.scroll(cmd.Body)
	}
	return false, nil
}

func (in *Interpreter) move(raw []byte) error {
	var b moveBody
	if err := decodeBody(raw, &b); err != nil {
		return err
	}
	var sx, sy int
	switch b.Type {
	case "LEFT":
		sx = -1
	case "RIGHT":
		sx = 1
	case "UP":
		sy = -1
	case "DOWN":
		sy = 1
	default:
		return nil
	}
	m, err := b.magnitude()
	if err != nil {
		return err
	}
	return in.out.MouseMove(sx*m, sy*m, 0)
}

func (in *Interpreter) scroll(raw []byte) error {
	var b moveBody
	if err := decodeBody(raw, &b); err != nil {
		return err
	}
	var sign int
	switch b.Type {
	case "UP":
		sign = 1
	case "DOWN":
		sign = -1
	default:
		return nil
	}
	m, err := b.magnitude()
	if err != nil {
		return err
	}
	return in.out.MouseMove(0, 0, sign*m)
}

func (in *Interpreter) click(raw []byte) error {
	var b clickBody
	if err := decodeBody(raw, &b); err != nil {
		return err
	}
	btn, ok := clickButtons[b.Type]
	if !ok {
		return nil
	}
	switch b.Action {
	case "CLICK":
		return in.out.MouseClick(btn)
	case "HOLD":
		return in.out.MousePress(btn)
	case "RELEASE":
		return in.out.MouseRelease(btn)
	}
	return nil
}

func (in *Interpreter) press(raw []byte, logger *slog.Logger) error {
	var b pressBody
	if err := decodeBody(raw, &b); err != nil {
		return err
	}
	if b.Keycodes == nil {
		return errors.New(`missing "keycodes"`)
	}
	codes, unresolved := keycode.Resolve(*b.Keycodes)
	for _, name := range unresolved {
		logger.Warn("Unknown key", "name", name)
		if in.metrics != nil {
			in.metrics.UnresolvedKeys.WithLabelValues(name).Inc()
		}
	}
	if len(codes) > 0 {
		if err := in.out.KeyPress(codes...); err != nil {
			// keys may be partially held; release before reporting
			_ = in.out.KeyReleaseAll()
			return fmt.Errorf("press %v: %w", *b.Keycodes, err)
		}
	}
	return in.out.KeyReleaseAll()
}

func (in *Interpreter) typeText(raw []byte) error {
	var b typeBody
	if err := decodeBody(raw, &b); err != nil {
		return err
	}
	if b.Text == nil {
		return errors.New(`missing "text"`)
	}
	return in.out.TypeText(*b.Text)
}

func (in *Interpreter) mode(raw []byte, logger *slog.Logger) error {
	var b modeBody
	if err := decodeBody(raw, &b); err != nil {
		return err
	}
	m, ok := state.ParseInputMode(b.Type)
	if !ok {
		return nil
	}
	in.state.SetInputMode(m)
	logger.Info("Input mode changed", "mode", m)
	return nil
}
