package handler

import (
	"errors"
	"io"
	"log/slog"

	"github.com/Alia5/hidbridge/internal/command"
	"github.com/Alia5/hidbridge/internal/server/web"
)

// Execute returns a handler that runs the posted command batch.
// Every failure is a 400 with an empty body; the X-Error-Kind header tells
// parse, execution and device failures apart.
func Execute(in *command.Interpreter) web.HandlerFunc {
	return func(req *web.Request, res *web.Response, logger *slog.Logger) error {
		var body []byte
		if req.Body != nil {
			b, err := io.ReadAll(req.Body)
			if err != nil {
				return web.ErrBadRequest("read body: " + err.Error()).WithKind(command.KindParse.String())
			}
			body = b
		}
		err := in.Execute(body, logger)
		if err == nil {
			return nil
		}
		var cerr *command.Error
		if !errors.As(err, &cerr) {
			return err
		}
		return web.ErrBadRequest(cerr.Error()).WithKind(cerr.Kind.String())
	}
}
