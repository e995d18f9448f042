package installshim

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux and chi.Router.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Component bundles the worker and manifest routes.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return c.opts
}

// WorkerPath is the URL the page registers the worker from.
func (c *Component) WorkerPath(basePath string) string {
	return mountPath(basePath, c.Options().WorkerPath)
}

// ManifestPath is the URL the page links the manifest from.
func (c *Component) ManifestPath(basePath string) string {
	return mountPath(basePath, c.Options().ManifestPath)
}

// RegisterRoutes registers both handlers under basePath and returns the
// registered patterns.
func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("installshim: missing mux")
	}
	opts := c.Options()
	manifest, err := ManifestHandler(opts)
	if err != nil {
		return nil, fmt.Errorf("installshim: manifest: %w", err)
	}
	worker := mountPath(basePath, opts.WorkerPath)
	manifestPath := mountPath(basePath, opts.ManifestPath)
	mux.Handle(worker, WorkerHandler())
	mux.Handle(manifestPath, manifest)
	return []string{worker, manifestPath}, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}
	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/") + routePath
}
