package handler

import (
	"log/slog"

	"github.com/Alia5/hidbridge/internal/server/web"
	"github.com/Alia5/hidbridge/internal/state"
)

// ToggleIndicator returns a handler that flips the indicator output.
func ToggleIndicator(st *state.State) web.HandlerFunc {
	return func(req *web.Request, res *web.Response, logger *slog.Logger) error {
		on := st.ToggleIndicator()
		logger.Info("Indicator toggled", "on", on)
		return nil
	}
}
