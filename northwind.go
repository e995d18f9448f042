// Package northwind wires the customer directory admin from a configuration:
// the REST client, the field layout, the renderer registry, the theme chrome
// and the HTTP component.
package northwind

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-northwind/components/customers"
	"github.com/goliatone/go-northwind/components/installshim"
	"github.com/goliatone/go-northwind/internal/config"
	"github.com/goliatone/go-northwind/pkg/chrome"
	"github.com/goliatone/go-northwind/pkg/client"
	"github.com/goliatone/go-northwind/pkg/render"
	"github.com/goliatone/go-northwind/pkg/renderers/fomantic"
	"github.com/goliatone/go-northwind/pkg/schema"
)

// Config aliases the loaded settings so callers outside this module can
// build one without importing an internal package.
type Config = config.Config

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return config.Defaults()
}

// LoadConfig reads settings from an optional YAML file, optional .env files
// and NORTHWIND_* environment variables.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	return config.Load(path, nil, envFiles...)
}

// NewClient builds the REST client for cfg.
func NewClient(cfg Config, logger zerolog.Logger) (*client.Client, error) {
	return client.New(cfg.BaseURL,
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(logger),
	)
}

// NewRegistry returns a registry holding the HTML and plain text renderers.
func NewRegistry() (*render.Registry, error) {
	return customers.DefaultRegistry()
}

// LoadLayout returns the field catalog, from path when set or from the
// bundled document otherwise.
func LoadLayout(ctx context.Context, path string) (*schema.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return schema.Bundled(ctx)
	}
	return schema.LoadFile(ctx, path)
}

// NewChrome builds the header/footer builder for cfg, with the theme
// stylesheet served from the component's asset route.
func NewChrome(cfg Config) (*chrome.Builder, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BasePath), "/")
	themes, err := chrome.NewThemes(cfg.Theme, cfg.Variant, chrome.NorthwindManifest(base+"/assets/"))
	if err != nil {
		return nil, fmt.Errorf("northwind: themes: %w", err)
	}
	return chrome.NewBuilder(chrome.Config{
		AppName:     cfg.AppName,
		Version:     cfg.Version,
		Home:        base + "/",
		Stylesheets: []string{fomantic.FomanticCSS},
		Scripts:     []string{fomantic.JQueryJS, fomantic.FomanticJS},
	}, themes, nil), nil
}

// Options tunes NewHandler beyond what Config carries.
type Options struct {
	Layout  *schema.Catalog
	Backend customers.Backend
	Guard   customers.GuardFunc
}

// NewHandler builds the complete HTTP handler for cfg. When a base path is
// configured the root redirects to it.
func NewHandler(ctx context.Context, cfg Config, logger zerolog.Logger, opts Options) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	backend := opts.Backend
	if backend == nil {
		c, err := NewClient(cfg, logger)
		if err != nil {
			return nil, err
		}
		backend = c
	}
	layout := opts.Layout
	if layout == nil {
		catalog, err := LoadLayout(ctx, "")
		if err != nil {
			return nil, err
		}
		layout = catalog
	}
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	builder, err := NewChrome(cfg)
	if err != nil {
		return nil, err
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BasePath), "/")

	component, err := customers.New(
		customers.WithBasePath(base),
		customers.WithBackend(backend),
		customers.WithLayout(layout),
		customers.WithRegistry(registry, cfg.Renderer),
		customers.WithChrome(builder),
		customers.WithTheme(cfg.Theme, cfg.Variant),
		customers.WithRevenueLimit(cfg.RevenueLimit),
		customers.WithTimeout(cfg.Timeout),
		customers.WithInstallShim(installshim.New(
			installshim.WithName(cfg.AppName),
			installshim.WithShortName("Northwind"),
			installshim.WithStartURL(base+"/"),
		)),
		customers.WithGuard(opts.Guard),
		customers.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	component.Mount(r)
	if base != "" {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, base+"/", http.StatusFound)
		})
	}
	return r, nil
}
