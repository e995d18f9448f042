package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-northwind/components/installshim"
	"github.com/goliatone/go-northwind/pkg/admin"
	"github.com/goliatone/go-northwind/pkg/chrome"
	"github.com/goliatone/go-northwind/pkg/render"
	"github.com/goliatone/go-northwind/pkg/renderers/fomantic"
	"github.com/goliatone/go-northwind/pkg/renderers/tui"
	"github.com/goliatone/go-northwind/pkg/schema"
)

// Component wires the admin handlers around a backend.
type Component struct {
	opts  Options
	paths admin.Paths
}

// New constructs a component. A backend is required; the layout, renderers,
// chrome and install shim fall back to the bundled defaults.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)
	if opts.Backend == nil {
		return nil, errors.New("customers: missing backend")
	}
	base := normalizeBase(opts.BasePath)
	opts.BasePath = base

	if opts.Layout == nil {
		catalog, err := schema.Bundled(context.Background())
		if err != nil {
			return nil, fmt.Errorf("customers: layout: %w", err)
		}
		opts.Layout = catalog
	}
	if opts.Registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			return nil, err
		}
		opts.Registry = registry
	}
	if !opts.Registry.Has(opts.DefaultRenderer) {
		return nil, fmt.Errorf("customers: default renderer %q is not registered", opts.DefaultRenderer)
	}
	if opts.Chrome == nil {
		themes, err := chrome.NewThemes(opts.Theme, opts.Variant, chrome.NorthwindManifest(base+"/assets/"))
		if err != nil {
			return nil, fmt.Errorf("customers: themes: %w", err)
		}
		opts.Chrome = chrome.NewBuilder(chrome.Config{
			Home:        base + "/",
			Stylesheets: []string{fomantic.FomanticCSS},
			Scripts:     []string{fomantic.JQueryJS, fomantic.FomanticJS},
		}, themes, nil)
	}
	if opts.Assets == nil {
		opts.Assets = fomantic.AssetsFS()
	}
	if opts.Shim == nil {
		opts.Shim = installshim.New(installshim.WithStartURL(base + "/"))
	}
	if opts.Money == nil {
		opts.Money = render.USD()
	}

	return &Component{opts: opts, paths: admin.Paths{Base: base}}, nil
}

// DefaultRegistry registers the HTML and plain text renderers.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	html, err := fomantic.New()
	if err != nil {
		return nil, fmt.Errorf("customers: fomantic renderer: %w", err)
	}
	text, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("customers: tui renderer: %w", err)
	}
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(text); err != nil {
		return nil, err
	}
	return registry, nil
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	return c.opts
}

// Paths returns the URL builder links are generated with.
func (c *Component) Paths() admin.Paths {
	return c.paths
}

// Mount attaches the component routes to r under the configured base path
// and returns the mount pattern.
func (c *Component) Mount(r chi.Router) string {
	pattern := c.opts.BasePath
	if pattern == "" {
		pattern = "/"
	}
	r.Mount(pattern, c.Handler())
	return pattern
}

func normalizeBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		return ""
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return strings.TrimRight(base, "/")
}
