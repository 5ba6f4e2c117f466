package netif

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Addr:         "127.0.0.1:0",
		PollInterval: 2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		MaxBodyBytes: 64,
	}
}

func listen(t *testing.T, cfg Config) *TCP {
	t.Helper()
	tcp, err := Listen(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tcp.Close() })
	return tcp
}

func send(t *testing.T, addr net.Addr, raw string) net.Conn {
	t.Helper()
	conn, err := net.Dial("tcp", addr.String())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	_, err = io.WriteString(conn, raw)
	require.NoError(t, err)
	return conn
}

func TestPollNothingPending(t *testing.T) {
	cfg := testConfig()
	cfg.PollInterval = 20 * time.Millisecond
	tcp := listen(t, cfg)

	ex, err := tcp.Poll(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, ex)
}

func TestPollReadsOneRequest(t *testing.T) {
	tcp := listen(t, testConfig())
	body := `{"commands":[]}`
	conn := send(t, tcp.Addr(), "POST /execute?x=1 HTTP/1.1\r\nHost: node\r\nContent-Type: application/json\r\nContent-Length: "+
		strconv.Itoa(len(body))+"\r\n\r\n"+body)

	ex, err := tcp.Poll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ex)
	assert.Equal(t, "POST", ex.Method)
	assert.Equal(t, "/execute", ex.Path)
	assert.Equal(t, "application/json", ex.Header.Get("Content-Type"))
	got, err := io.ReadAll(ex.Body)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))

	_, err = io.WriteString(ex.Conn, "HTTP/1.1 200 OK\r\nConnection: close\r\n\r\n")
	require.NoError(t, err)
	require.NoError(t, ex.Conn.Close())

	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestPollRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		status int
	}{
		{"garbage", "NOT HTTP\r\n\r\n", http.StatusBadRequest},
		{"body too large", "POST /execute HTTP/1.1\r\nHost: n\r\nContent-Length: 100\r\n\r\n" + strings.Repeat("a", 100), http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tcp := listen(t, testConfig())
			conn := send(t, tcp.Addr(), tt.raw)

			ex, err := tcp.Poll(context.Background())
			assert.NoError(t, err, "a bad request is not a network fault")
			assert.Nil(t, ex)

			resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestPollAfterCloseIsNetworkError(t *testing.T) {
	tcp := listen(t, testConfig())
	require.NoError(t, tcp.Close())

	_, err := tcp.Poll(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
	assert.ErrorIs(t, err, ErrNotListening)
}

func TestResetReopens(t *testing.T) {
	cfg := testConfig()
	cfg.PollInterval = 20 * time.Millisecond
	tcp := listen(t, cfg)
	require.NoError(t, tcp.Close())

	require.NoError(t, tcp.Reset(context.Background()))
	require.NotNil(t, tcp.Addr())
	ex, err := tcp.Poll(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, ex)
}

func TestPollCanceled(t *testing.T) {
	tcp := listen(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tcp.Poll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsNetworkError(err))
}
