package installshim

import "strings"

const (
	DefaultWorkerPath   = "/sw.js"
	DefaultManifestPath = "/manifest.webmanifest"
)

type Options struct {
	WorkerPath      string
	ManifestPath    string
	Name            string
	ShortName       string
	StartURL        string
	Display         string
	ThemeColor      string
	BackgroundColor string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		WorkerPath:      DefaultWorkerPath,
		ManifestPath:    DefaultManifestPath,
		Name:            "Northwind Traders",
		StartURL:        "/",
		Display:         "standalone",
		ThemeColor:      "#2185d0",
		BackgroundColor: "#ffffff",
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
	if strings.TrimSpace(opts.WorkerPath) == "" {
		opts.WorkerPath = DefaultWorkerPath
	}
	if strings.TrimSpace(opts.ManifestPath) == "" {
		opts.ManifestPath = DefaultManifestPath
	}
	if opts.ShortName == "" {
		opts.ShortName = opts.Name
	}
	if opts.StartURL == "" {
		opts.StartURL = "/"
	}
	if opts.Display == "" {
		opts.Display = "standalone"
	}
	return opts
}

func WithName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Name = name
	}
}

func WithShortName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ShortName = name
	}
}

func WithStartURL(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.StartURL = url
	}
}

func WithThemeColor(color string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ThemeColor = color
	}
}

func WithWorkerPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.WorkerPath = path
	}
}

func WithManifestPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ManifestPath = path
	}
}
