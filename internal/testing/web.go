package testing

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/Alia5/hidbridge/internal/server/web"
)

// Discard is a logger that drops everything.
var Discard = slog.New(slog.DiscardHandler)

// NewRouter builds a router and lets the caller register handlers on it.
func NewRouter(t *testing.T, register func(r *web.Router)) *web.Router {
	t.Helper()
	r := web.NewRouter()
	if register != nil {
		register(r)
	}
	return r
}

// Do dispatches one request through r and drains the response body.
func Do(t *testing.T, r *web.Router, method, path, body string) (*web.Response, string) {
	t.Helper()
	req := &web.Request{ID: "test", Method: method, Path: path, Body: strings.NewReader(body)}
	res := r.Dispatch(req, Discard)
	var buf bytes.Buffer
	for chunk, err := range res.Body {
		if err != nil {
			t.Fatalf("read response body: %v", err)
		}
		buf.Write(chunk)
	}
	return res, buf.String()
}
