package netif

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"
)

// TCP implements the network interface with a plain TCP listener. Each
// accepted connection carries exactly one request.
type TCP struct {
	cfg    Config
	logger *slog.Logger
	ln     *net.TCPListener
	mdns   *announcer
}

// Listen opens the listener and, if configured, starts the mDNS announcement.
func Listen(cfg Config, logger *slog.Logger) (*TCP, error) {
	t := &TCP{cfg: cfg, logger: logger}
	if err := t.open(); err != nil {
		return nil, err
	}
	return t, nil
}

// Addr returns the bound listener address.
func (t *TCP) Addr() net.Addr {
	if t.ln == nil {
		return nil
	}
	return t.ln.Addr()
}

func (t *TCP) open() error {
	ln, err := net.Listen("tcp", t.cfg.Addr)
	if err != nil {
		return &NetworkError{Op: "listen", Err: err}
	}
	t.ln = ln.(*net.TCPListener)
	t.logger.Info("HTTP listening", "addr", t.ln.Addr().String())

	if t.cfg.MDNSName != "" {
		port := t.ln.Addr().(*net.TCPAddr).Port
		a, err := announce(t.cfg.MDNSName, port)
		if err != nil {
			// the bridge stays reachable by address
			t.logger.Warn("mDNS announcement failed", "error", err)
		} else {
			t.mdns = a
			t.logger.Info("mDNS announced", "name", t.cfg.MDNSName, "port", port)
		}
	}
	return nil
}

func (t *TCP) shutdown() error {
	if t.mdns != nil {
		t.mdns.Shutdown()
		t.mdns = nil
	}
	if t.ln == nil {
		return nil
	}
	err := t.ln.Close()
	t.ln = nil
	return err
}

// Close stops listening and withdraws the announcement.
func (t *TCP) Close() error { return t.shutdown() }

// Reset tears the listener down and opens it again.
func (t *TCP) Reset(ctx context.Context) error {
	t.logger.Warn("Resetting network interface")
	_ = t.shutdown()
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.open()
}

// Poll waits up to PollInterval for a connection and reads one request from
// it. It returns nil, nil when nothing arrived. Malformed requests are
// answered with 400 here and also yield nil, nil.
func (t *TCP) Poll(ctx context.Context) (*Exchange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t.ln == nil {
		return nil, &NetworkError{Op: "poll", Err: ErrNotListening}
	}
	deadline := time.Now().Add(t.cfg.PollInterval)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := t.ln.SetDeadline(deadline); err != nil {
		return nil, &NetworkError{Op: "poll", Err: err}
	}
	conn, err := t.ln.Accept()
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, nil
		}
		return nil, &NetworkError{Op: "accept", Err: err}
	}
	return t.read(conn)
}

func (t *TCP) read(conn net.Conn) (*Exchange, error) {
	remote := conn.RemoteAddr().String()
	logger := t.logger.With("remote", remote)
	_ = conn.SetReadDeadline(time.Now().Add(t.cfg.ReadTimeout))

	req, err := http.ReadRequest(bufio.NewReader(conn))
	if err != nil {
		logger.Warn("Malformed request", "error", err)
		t.reject(conn, http.StatusBadRequest)
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(req.Body, t.cfg.MaxBodyBytes+1))
	if err != nil {
		logger.Warn("Failed to read request body", "error", err)
		t.reject(conn, http.StatusBadRequest)
		return nil, nil
	}
	if int64(len(body)) > t.cfg.MaxBodyBytes {
		logger.Warn("Request body too large", "limit", t.cfg.MaxBodyBytes)
		_, _ = io.Copy(io.Discard, req.Body)
		t.reject(conn, http.StatusRequestEntityTooLarge)
		return nil, nil
	}
	return &Exchange{
		Method: req.Method,
		Path:   req.URL.Path,
		Header: req.Header,
		Body:   bytes.NewReader(body),
		Remote: remote,
		Conn:   &deadlineConn{Conn: conn, timeout: t.cfg.WriteTimeout},
	}, nil
}

func (t *TCP) reject(conn net.Conn, status int) {
	_ = conn.SetWriteDeadline(time.Now().Add(t.cfg.WriteTimeout))
	_, _ = io.WriteString(conn, "HTTP/1.1 "+strconv.Itoa(status)+" "+http.StatusText(status)+
		"\r\nConnection: close\r\nContent-Length: 0\r\n\r\n")
	_ = conn.Close()
}

// deadlineConn refreshes the write deadline before every write.
type deadlineConn struct {
	net.Conn
	timeout time.Duration
}

func (c *deadlineConn) Write(p []byte) (int, error) {
	if c.timeout > 0 {
		if err := c.Conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
			return 0, fmt.Errorf("set write deadline: %w", err)
		}
	}
	return c.Conn.Write(p)
}
