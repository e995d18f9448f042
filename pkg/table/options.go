package table

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 30 * time.Second

// ChangeFunc observes every state a table enters.
type ChangeFunc[T any] func(State[T])

// Options configures a Table.
type Options[T any] struct {
	Name     string
	Timeout  time.Duration
	Logger   zerolog.Logger
	OnChange ChangeFunc[T]
}

// Option mutates Options.
type Option[T any] func(*Options[T])

// WithName labels the table in log lines.
func WithName[T any](name string) Option[T] {
	return func(o *Options[T]) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout[T any](d time.Duration) Option[T] {
	return func(o *Options[T]) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithLogger sets the logger used for fetch failures.
func WithLogger[T any](logger zerolog.Logger) Option[T] {
	return func(o *Options[T]) {
		o.Logger = logger
	}
}

// WithOnChange registers a state observer.
func WithOnChange[T any](fn ChangeFunc[T]) Option[T] {
	return func(o *Options[T]) {
		o.OnChange = fn
	}
}

func newOptions[T any](opts ...Option[T]) Options[T] {
	o := Options[T]{
		Name:    "table",
		Timeout: DefaultTimeout,
		Logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
