// Package web is the request dispatch layer: an exact (method, path) route
// table with a static asset fallback for GET requests.
package web

import (
	"io"
	"iter"
	"log/slog"
	"net/http"
	"strings"
)

// Request is the per-request context handed to handlers.
type Request struct {
	ID     string
	Method string
	Path   string
	Header http.Header
	Body   io.Reader
}

// Header is one response header line. Order is kept as added.
type Header struct {
	Name  string
	Value string
}

// Response is what a handler produces. Body is consumed once by the poll loop.
type Response struct {
	Status  int
	Headers []Header
	Body    iter.Seq2[[]byte, error]
}

// SetHeader appends a header.
func (r *Response) SetHeader(name, value string) {
	r.Headers = append(r.Headers, Header{Name: name, Value: value})
}

// Header returns the first value of the named header.
func (r *Response) Header(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// SetBody replaces the body with a single in-memory chunk.
func (r *Response) SetBody(b []byte) {
	r.Body = func(yield func([]byte, error) bool) {
		if len(b) > 0 {
			yield(b, nil)
		}
	}
}

// HandlerFunc processes a request and populates the response.
// Returns an error on failure; the router turns it into a status response.
// The logger provided is request-scoped.
type HandlerFunc func(req *Request, res *Response, logger *slog.Logger) error

type routeKey struct {
	method string
	path   string
}

// Router maps exact (method, path) pairs to handlers.
type Router struct {
	routes map[routeKey]HandlerFunc
	static *Bundle
}

// NewRouter returns a new Router instance.
func NewRouter() *Router { return &Router{routes: map[routeKey]HandlerFunc{}} }

// Register registers handler for method and path. Methods are matched
// case-insensitively, paths exactly. Registering the same pair again replaces
// the earlier handler.
func (r *Router) Register(method, path string, handler HandlerFunc) {
	r.routes[routeKey{method: strings.ToLower(method), path: path}] = handler
}

// SetStatic enables static asset serving for GET requests.
func (r *Router) SetStatic(b *Bundle) { r.static = b }

// Match returns the handler registered for method and path, or nil.
func (r *Router) Match(method, path string) HandlerFunc {
	return r.routes[routeKey{method: strings.ToLower(method), path: path}]
}

// Route returns a bounded label for the request target, for metrics: the
// registered path, "static" for other assets and "unmatched" otherwise.
func (r *Router) Route(method, path string) string {
	if r.Match(method, path) != nil {
		return path
	}
	if r.static != nil && strings.EqualFold(method, http.MethodGet) {
		if _, ok := r.static.Resolve(path); ok {
			if path == "/" {
				return path
			}
			return "static"
		}
	}
	return "unmatched"
}

// Dispatch routes req. A registered handler runs first; for GET requests a
// matching static asset then replaces its result. Requests matching neither
// get 404.
func (r *Router) Dispatch(req *Request, logger *slog.Logger) *Response {
	var res *Response

	if h := r.Match(req.Method, req.Path); h != nil {
		res = &Response{Status: http.StatusOK}
		if err := h(req, res, logger); err != nil {
			logger.Error("handler error", "error", err)
			res = ErrorResponse(err)
		}
	}

	if r.static != nil && strings.EqualFold(req.Method, http.MethodGet) {
		if name, ok := r.static.Resolve(req.Path); ok {
			sres, err := r.static.ServeFile(name)
			if err != nil {
				logger.Error("static asset error", "asset", name, "error", err)
				sres = ErrorResponse(err)
			}
			res = sres
		}
	}

	if res == nil {
		logger.Debug("no route", "method", req.Method, "path", req.Path)
		res = ErrorResponse(ErrNotFound("no route for " + req.Method + " " + req.Path))
	}
	if res.Body == nil {
		res.SetBody(nil)
	}
	return res
}
