package customers

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-northwind/components/installshim"
	"github.com/goliatone/go-northwind/pkg/admin"
	"github.com/goliatone/go-northwind/pkg/editor"
	"github.com/goliatone/go-northwind/pkg/render"
)

// Backend is the remote store the tables read from and write to.
type Backend interface {
	admin.Store
	admin.RevenueStore
}

// ChromeBuilder produces the page header and footer for a theme selection.
type ChromeBuilder interface {
	Build(themeName, variant string) (render.Chrome, error)
}

type GuardFunc func(r *http.Request) error

type Options struct {
	BasePath        string
	Backend         Backend
	Layout          editor.Layout
	Registry        *render.Registry
	DefaultRenderer string
	Chrome          ChromeBuilder
	Theme           string
	Variant         string
	RevenueLimit    int
	Timeout         time.Duration
	Money           *render.MoneyFormatter
	Assets          fs.FS
	Shim            *installshim.Component
	Guard           GuardFunc
	Logger          zerolog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		DefaultRenderer: "fomantic",
		Theme:           "northwind",
		Variant:         "light",
		RevenueLimit:    admin.DefaultRevenueLimit,
		Logger:          zerolog.Nop(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	opts.RevenueLimit = admin.NormalizeLimit(opts.RevenueLimit)
	if opts.DefaultRenderer == "" {
		opts.DefaultRenderer = "fomantic"
	}
	return opts
}

func WithBasePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BasePath = path
	}
}

func WithBackend(backend Backend) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Backend = backend
	}
}

func WithLayout(layout editor.Layout) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Layout = layout
	}
}

func WithRegistry(registry *render.Registry, defaultRenderer string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Registry = registry
		o.DefaultRenderer = defaultRenderer
	}
}

func WithChrome(builder ChromeBuilder) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Chrome = builder
	}
}

func WithTheme(name, variant string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = name
		o.Variant = variant
	}
}

func WithRevenueLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RevenueLimit = limit
	}
}

func WithTimeout(timeout time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Timeout = timeout
	}
}

func WithMoneyFormatter(money *render.MoneyFormatter) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Money = money
	}
}

func WithAssets(assets fs.FS) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Assets = assets
	}
}

func WithInstallShim(shim *installshim.Component) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Shim = shim
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger zerolog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
