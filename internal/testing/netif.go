package testing

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/Alia5/hidbridge/internal/server/netif"
)

// BufferConn collects a response in memory.
type BufferConn struct {
	bytes.Buffer
	Closed bool
}

func (c *BufferConn) Close() error {
	c.Closed = true
	return nil
}

// NewExchange builds a request whose response lands in the returned conn.
func NewExchange(method, path, body string) (*netif.Exchange, *BufferConn) {
	conn := &BufferConn{}
	return &netif.Exchange{
		Method: method,
		Path:   path,
		Header: http.Header{},
		Body:   strings.NewReader(body),
		Remote: "192.0.2.1:50000",
		Conn:   conn,
	}, conn
}

// PollResult is one scripted Poll outcome.
type PollResult struct {
	Exchange *netif.Exchange
	Err      error
}

// FakeNetwork replays scripted poll results. Once the script runs out it
// calls OnDrained and then keeps returning nil, nil.
type FakeNetwork struct {
	mu        sync.Mutex
	Script    []PollResult
	OnDrained func()
	ResetErr  error
	Resets    int
	Polls     int
}

func (f *FakeNetwork) Poll(ctx context.Context) (*netif.Exchange, error) {
	f.mu.Lock()
	f.Polls++
	if len(f.Script) == 0 {
		drained := f.OnDrained
		f.OnDrained = nil
		f.mu.Unlock()
		if drained != nil {
			drained()
		}
		return nil, ctx.Err()
	}
	next := f.Script[0]
	f.Script = f.Script[1:]
	f.mu.Unlock()
	return next.Exchange, next.Err
}

func (f *FakeNetwork) Reset(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Resets++
	return f.ResetErr
}
