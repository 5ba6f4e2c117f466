// Package command parses /execute batches and runs them against a HID output.
package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Command types understood by the interpreter.
const (
	TypeMove   = "MOVE"
	TypeClick  = "CLICK"
	TypePress  = "PRESS"
	TypeType   = "TYPE"
	TypeMode   = "MODE"
	TypeScroll = "SCROLL"
)

// Command is one batch entry. Body is decoded when the command runs, so a bad
// body only fails its own command.
type Command struct {
	Type string          `json:"type"`
	Body json.RawMessage `json:"body"`
}

// Batch is the ordered list of commands of one request.
type Batch struct {
	Commands []Command
}

// Parse decodes the request envelope. It fails when the body is not JSON, or
// when "commands" is missing or not an array of objects.
func Parse(data []byte) (Batch, error) {
	var env struct {
		Commands *[]Command `json:"commands"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return Batch{}, &Error{Kind: KindParse, Index: -1, Err: err}
	}
	if env.Commands == nil {
		return Batch{}, &Error{Kind: KindParse, Index: -1, Err: errors.New(`missing "commands" array`)}
	}
	return Batch{Commands: *env.Commands}, nil
}

// Magnitude is a non-fractional amount given either as a JSON number
// (truncated toward zero) or as a decimal string.
type Magnitude int

func (m *Magnitude) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("magnitude %q is not an integer", s)
		}
		*m = Magnitude(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("magnitude must be a number or numeric string: %w", err)
	}
	if math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("magnitude %v out of range", f)
	}
	*m = Magnitude(math.Trunc(f))
	return nil
}

type moveBody struct {
	Type      string     `json:"type"`
	Magnitude *Magnitude `json:"magnitude"`
}

type clickBody struct {
	Type   string `json:"type"`
	Action string `json:"action"`
}

type pressBody struct {
	Keycodes *[]string `json:"keycodes"`
}

type typeBody struct {
	Text *string `json:"text"`
}

type modeBody struct {
	Type string `json:"type"`
}

var errNoBody = errors.New(`missing "body" object`)

func decodeBody(raw json.RawMessage, v any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return errNoBody
	}
	if raw[0] != '{' {
		return fmt.Errorf(`"body" must be an object, got %s`, raw)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

func (b moveBody) magnitude() (int, error) {
	if b.Magnitude == nil {
		return 0, errors.New(`missing "magnitude"`)
	}
	return int(*b.Magnitude), nil
}
