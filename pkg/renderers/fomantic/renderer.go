package fomantic

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-northwind/pkg/render"
	rendertemplate "github.com/goliatone/go-northwind/pkg/render/template"
	gotemplate "github.com/goliatone/go-northwind/pkg/render/template/gotemplate"
)

// Name is the registry key of the HTML renderer.
const Name = "fomantic"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces Fomantic UI markup.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("fomantic renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) RenderTable(_ context.Context, view render.TableView) ([]byte, error) {
	return r.execute("table", map[string]any{"table": view})
}

func (r *Renderer) RenderDialog(_ context.Context, view render.DialogView) ([]byte, error) {
	return r.execute("dialog", map[string]any{"dialog": view})
}

func (r *Renderer) RenderPage(_ context.Context, page render.Page) ([]byte, error) {
	return r.execute("page", map[string]any{"page": page})
}

func (r *Renderer) execute(name string, data map[string]any) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("fomantic renderer: template renderer is nil")
	}
	result, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("fomantic renderer: render %s: %w", name, err)
	}
	return []byte(result), nil
}
