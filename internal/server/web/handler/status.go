package handler

import (
	"log/slog"
	"strconv"

	"github.com/Alia5/hidbridge/internal/server/web"
	"github.com/Alia5/hidbridge/internal/state"
)

// InputMode returns a handler reporting the input mode as "0" or "1".
func InputMode(st *state.State) web.HandlerFunc {
	return func(req *web.Request, res *web.Response, logger *slog.Logger) error {
		res.SetBody([]byte(strconv.Itoa(int(st.InputMode()))))
		return nil
	}
}

// ButtonStatus returns a handler reporting the physical button as "True" or
// "False".
func ButtonStatus(st *state.State) web.HandlerFunc {
	return func(req *web.Request, res *web.Response, logger *slog.Logger) error {
		v := "False"
		if st.ButtonStatus() {
			v = "True"
		}
		res.SetBody([]byte(v))
		return nil
	}
}
