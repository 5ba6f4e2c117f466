package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ChunkSize is the largest body chunk read from an asset at once.
const ChunkSize = 8912

// ErrBodyConsumed is yielded when a file body is iterated a second time.
var ErrBodyConsumed = errors.New("response body already consumed")

var contentTypes = map[string]string{
	"html": "text/html",
	"htm":  "text/html",
	"js":   "application/javascript",
	"css":  "text/css",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// ContentType derives the content type from the file extension; unknown
// extensions are served as text/plain.
func ContentType(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "text/plain"
}

// StaticConfig locates the asset bundle.
type StaticConfig struct {
	Dir   string `help:"Directory with the control page assets" default:"static" env:"HIDBRIDGE_STATIC_DIR"`
	Index string `help:"Asset served for GET /" default:"index.html" env:"HIDBRIDGE_STATIC_INDEX"`
	Watch bool   `help:"Refresh the asset list when files are added or removed" env:"HIDBRIDGE_STATIC_WATCH"`
}

// Bundle is the set of files directly inside a static directory, addressed as
// "/<name>".
type Bundle struct {
	dir   string
	index string

	mu     sync.RWMutex
	assets map[string]struct{}
}

// NewBundle lists dir. It fails when dir is unreadable or lacks index.
func NewBundle(dir, index string) (*Bundle, error) {
	b := &Bundle{dir: dir, index: "/" + strings.TrimPrefix(index, "/")}
	if err := b.Refresh(); err != nil {
		return nil, err
	}
	if !b.Has(b.index) {
		return nil, fmt.Errorf("static directory %s has no %s", dir, strings.TrimPrefix(b.index, "/"))
	}
	return b, nil
}

// Refresh recomputes the asset list from the directory.
func (b *Bundle) Refresh() error {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return fmt.Errorf("read static directory: %w", err)
	}
	assets := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			assets["/"+e.Name()] = struct{}{}
		}
	}
	b.mu.Lock()
	b.assets = assets
	b.mu.Unlock()
	return nil
}

// Has reports whether p ("/name") is a known asset.
func (b *Bundle) Has(p string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.assets[p]
	return ok
}

// Assets returns the sorted asset paths.
func (b *Bundle) Assets() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.assets))
	for p := range b.assets {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Index returns the asset path served for "/".
func (b *Bundle) Index() string { return b.index }

// Resolve maps a request path to an asset: exact matches first, then "/" to
// the index asset when it is still present.
func (b *Bundle) Resolve(p string) (string, bool) {
	if b.Has(p) {
		return p, true
	}
	if p == "/" && b.Has(b.index) {
		return b.index, true
	}
	return "", false
}

// ServeFile returns a 200 response streaming asset in ChunkSize pieces. The
// file is opened on first iteration and the body may be iterated once; open
// and read errors are yielded to the consumer. A chunk is only valid until the
// next one is requested.
func (b *Bundle) ServeFile(asset string) (*Response, error) {
	name := filepath.Join(b.dir, filepath.FromSlash(path.Clean("/"+asset)))
	fi, err := os.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound(fmt.Sprintf("asset %s is gone", asset))
		}
		return nil, fmt.Errorf("stat asset %s: %w", asset, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, ErrNotFound(fmt.Sprintf("asset %s is not a file", asset))
	}
	res := &Response{Status: 200}
	res.SetHeader("Content-Type", ContentType(asset))
	res.Body = fileBody(name)
	return res, nil
}

func fileBody(name string) func(yield func([]byte, error) bool) {
	var once sync.Once
	return func(yield func([]byte, error) bool) {
		first := false
		once.Do(func() { first = true })
		if !first {
			yield(nil, ErrBodyConsumed)
			return
		}
		f, err := os.Open(name)
		if err != nil {
			yield(nil, err)
			return
		}
		defer f.Close()
		buf := make([]byte, ChunkSize)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				if !yield(buf[:n], nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, fmt.Errorf("read %s: %w", name, err))
				return
			}
		}
	}
}

// Watch refreshes the asset list whenever a file is created, removed or
// renamed in the directory, until ctx is done.
func (b *Bundle) Watch(ctx context.Context, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create static watcher: %w", err)
	}
	if err := w.Add(b.dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", b.dir, err)
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if err := b.Refresh(); err != nil {
					logger.Error("Failed to refresh static assets", "error", err)
					continue
				}
				logger.Debug("Static assets refreshed", "event", ev.String(), "assets", len(b.Assets()))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("Static watcher error", "error", err)
			}
		}
	}()
	return nil
}
