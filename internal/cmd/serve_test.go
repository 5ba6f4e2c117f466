package cmd

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/hidbridge/internal/log"
	"github.com/Alia5/hidbridge/internal/server/web"
)

func TestServeRequiresIndexAsset(t *testing.T) {
	s := &Serve{Static: web.StaticConfig{Dir: t.TempDir(), Index: "index.html"}}
	err := s.StartServer(context.Background(), slog.New(slog.DiscardHandler), log.NewRaw(nil))
	assert.ErrorContains(t, err, "index.html")
}
