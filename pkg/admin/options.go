package admin

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-northwind/pkg/render"
)

// DefaultRevenueLimit is the revenue table size when none (or an invalid
// one) is configured.
const DefaultRevenueLimit = 10

// Options configures the admin tables.
type Options struct {
	Logger    zerolog.Logger
	Timeout   time.Duration
	Paths     Paths
	Confirmer Confirmer
	Notifier  Notifier
	Money     *render.MoneyFormatter
	Limit     int
	DialogID  func() string
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger shared by the table and the editor.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithTimeout bounds each fetch.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithPaths sets the URL builder used for row and dialog actions.
func WithPaths(paths Paths) Option {
	return func(o *Options) {
		o.Paths = paths
	}
}

// WithConfirmer sets the delete confirmation seam.
func WithConfirmer(c Confirmer) Option {
	return func(o *Options) {
		if c != nil {
			o.Confirmer = c
		}
	}
}

// WithNotifier sets the alert seam.
func WithNotifier(n Notifier) Option {
	return func(o *Options) {
		if n != nil {
			o.Notifier = n
		}
	}
}

// WithMoneyFormatter overrides the revenue currency formatter.
func WithMoneyFormatter(m *render.MoneyFormatter) Option {
	return func(o *Options) {
		if m != nil {
			o.Money = m
		}
	}
}

// WithLimit sets the initial revenue limit.
func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

// WithDialogID overrides the editor dialog id generator.
func WithDialogID(fn func() string) Option {
	return func(o *Options) {
		o.DialogID = fn
	}
}

func newOptions(options ...Option) Options {
	opts := Options{
		Logger:    zerolog.Nop(),
		Confirmer: Answer(false),
		Notifier:  &AlertLog{},
		Limit:     DefaultRevenueLimit,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	if opts.Money == nil {
		opts.Money = render.USD()
	}
	return opts
}
