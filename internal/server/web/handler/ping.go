package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/Alia5/hidbridge/internal/server/web"
	"github.com/Alia5/hidbridge/internal/version"
)

// PingResponse identifies the server to clients probing the node.
type PingResponse struct {
	Server  string `json:"server"`
	Version string `json:"version"`
}

// Ping returns a handler answering with the server name and version.
func Ping() web.HandlerFunc {
	return func(req *web.Request, res *web.Response, logger *slog.Logger) error {
		v, err := version.Get()
		if err != nil {
			return err
		}
		b, err := json.Marshal(PingResponse{Server: "hidbridge", Version: v})
		if err != nil {
			return err
		}
		res.SetHeader("Content-Type", "application/json")
		res.SetBody(b)
		return nil
	}
}
