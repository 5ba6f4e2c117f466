// Package server runs the single-threaded poll loop: take one pending request
// from the network interface, dispatch it, write the response, repeat.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Alia5/hidbridge/internal/metrics"
	"github.com/Alia5/hidbridge/internal/server/netif"
	"github.com/Alia5/hidbridge/internal/server/web"
)

// Interface is the network capability the loop drives.
type Interface interface {
	// Poll returns the next pending request or nil, nil when there is none.
	Poll(ctx context.Context) (*netif.Exchange, error)
	// Reset recovers the interface after a *netif.NetworkError.
	Reset(ctx context.Context) error
}

// Options tune a Server.
type Options struct {
	// ResetBackoff is waited after every reset.
	ResetBackoff time.Duration
	Clock        clockwork.Clock
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
}

// Server is the poll loop.
type Server struct {
	ni      Interface
	router  *web.Router
	backoff time.Duration
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a poll loop over ni dispatching through router.
func New(ni Interface, router *web.Router, opts Options) *Server {
	s := &Server{
		ni:      ni,
		router:  router,
		backoff: opts.ResetBackoff,
		clock:   opts.Clock,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Run serves requests until ctx is done, which is the only way it returns
// nil. Network faults reset the interface and the loop continues; any other
// poll failure is returned.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Poll loop started")
	for {
		if ctx.Err() != nil {
			s.logger.Info("Poll loop stopped")
			return nil
		}
		ex, err := s.ni.Poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			if !netif.IsNetworkError(err) {
				return fmt.Errorf("poll network interface: %w", err)
			}
			if err := s.reset(ctx, err); err != nil {
				return err
			}
			continue
		}
		if ex == nil {
			continue
		}
		s.serve(ex)
	}
}

func (s *Server) reset(ctx context.Context, cause error) error {
	s.logger.Warn("Network fault, resetting interface", "error", cause)
	if s.metrics != nil {
		s.metrics.NetworkResets.Inc()
	}
	if err := s.ni.Reset(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		if !netif.IsNetworkError(err) {
			return fmt.Errorf("reset network interface: %w", err)
		}
		// the next poll reports the interface as down and retries the reset
		s.logger.Error("Network reset failed", "error", err)
	}
	if s.backoff > 0 {
		select {
		case <-ctx.Done():
		case <-s.clock.After(s.backoff):
		}
	}
	return nil
}

func (s *Server) serve(ex *netif.Exchange) {
	id := uuid.NewString()
	logger := s.logger.With("request_id", id, "method", ex.Method, "path", ex.Path)
	logger.Debug("Request received", "remote", ex.Remote)

	req := &web.Request{
		ID:     id,
		Method: ex.Method,
		Path:   ex.Path,
		Header: ex.Header,
		Body:   ex.Body,
	}
	res := s.router.Dispatch(req, logger)

	if s.metrics != nil {
		s.metrics.RequestsTotal.WithLabelValues(ex.Method, s.router.Route(ex.Method, ex.Path), strconv.Itoa(res.Status)).Inc()
	}

	if err := WriteResponse(ex.Conn, res); err != nil {
		logger.Error("Failed to send response", "status", res.Status, "error", err)
	} else {
		logger.Info("Request served", "status", res.Status)
	}
	if err := ex.Conn.Close(); err != nil {
		logger.Debug("Close connection", "error", err)
	}
}

// ErrBodyAborted wraps a body error that cut a response short.
var ErrBodyAborted = errors.New("response body aborted")

// WriteResponse writes res as an HTTP/1.1 response delimited by connection
// close. A body error stops the write; the bytes already sent stay sent.
func WriteResponse(w io.Writer, res *web.Response) error {
	bw := bufio.NewWriter(w)
	text := http.StatusText(res.Status)
	if text == "" {
		text = "Status"
	}
	fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", res.Status, text)
	for _, h := range res.Headers {
		fmt.Fprintf(bw, "%s: %s\r\n", h.Name, h.Value)
	}
	bw.WriteString("Connection: close\r\n\r\n")

	if res.Body != nil {
		for chunk, err := range res.Body {
			if err != nil {
				_ = bw.Flush()
				return fmt.Errorf("%w: %w", ErrBodyAborted, err)
			}
			if _, err := bw.Write(chunk); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
