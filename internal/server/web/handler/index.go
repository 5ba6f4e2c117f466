package handler

import (
	"log/slog"

	"github.com/Alia5/hidbridge/internal/server/web"
)

// Index returns a handler that serves the bundle's index asset.
func Index(b *web.Bundle) web.HandlerFunc {
	return func(req *web.Request, res *web.Response, logger *slog.Logger) error {
		r, err := b.ServeFile(b.Index())
		if err != nil {
			return err
		}
		*res = *r
		return nil
	}
}
