// Package netif is the network side of the bridge: it hands the poll loop at
// most one pending HTTP request at a time and can be reset after a fault.
package netif

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config configures the TCP listener and its mDNS announcement.
type Config struct {
	Addr         string        `help:"HTTP listen address" default:":80" env:"HIDBRIDGE_NET_ADDR"`
	PollInterval time.Duration `help:"Longest a single poll waits for a connection" default:"100ms" env:"HIDBRIDGE_NET_POLL_INTERVAL"`
	ReadTimeout  time.Duration `help:"Deadline for reading one request" default:"5s" env:"HIDBRIDGE_NET_READ_TIMEOUT"`
	WriteTimeout time.Duration `help:"Deadline for each response write" default:"10s" env:"HIDBRIDGE_NET_WRITE_TIMEOUT"`
	MaxBodyBytes int64         `help:"Largest accepted request body" default:"1048576" env:"HIDBRIDGE_NET_MAX_BODY_BYTES"`
	MDNSName     string        `help:"mDNS instance name to announce as _http._tcp (empty disables)" env:"HIDBRIDGE_NET_MDNS_NAME"`
}

// Exchange is one received request. The response is written to Conn, which
// the receiver closes afterwards.
type Exchange struct {
	Method string
	Path   string
	Header http.Header
	Body   io.Reader
	Remote string
	Conn   io.WriteCloser
}

// NetworkError is a fault of the network interface itself. Resetting the
// interface is expected to recover from it.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network %s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// IsNetworkError reports whether err is recoverable by a reset.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// ErrNotListening is returned by Poll after the listener was lost.
var ErrNotListening = errors.New("listener is not open")
