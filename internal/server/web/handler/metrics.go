package handler

import (
	"log/slog"

	"github.com/Alia5/hidbridge/internal/metrics"
	"github.com/Alia5/hidbridge/internal/server/web"
)

// Metrics returns a handler serving the Prometheus text exposition.
func Metrics(m *metrics.Metrics) web.HandlerFunc {
	return func(req *web.Request, res *web.Response, logger *slog.Logger) error {
		body, contentType, err := m.Exposition()
		if err != nil {
			return err
		}
		res.SetHeader("Content-Type", contentType)
		res.SetBody(body)
		return nil
	}
}
