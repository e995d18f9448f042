package client

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout caps every outbound call unless overridden.
const DefaultTimeout = 30 * time.Second

// Options configures a Client. Use NewOptions so defaults apply.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
	RequestID  func() string
}

// Option mutates Options prior to construction.
type Option func(*Options)

// WithTimeout overrides the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithHTTPClient injects a custom transport (proxies, test servers).
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		if client != nil {
			o.HTTPClient = client
		}
	}
}

// WithLogger attaches a logger used for per-call debug lines.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithRequestID overrides the generator for the X-Request-Id header.
func WithRequestID(fn func() string) Option {
	return func(o *Options) {
		if fn != nil {
			o.RequestID = fn
		}
	}
}

// NewOptions applies the option set over the defaults.
func NewOptions(baseURL string, options ...Option) Options {
	opts := Options{
		BaseURL: baseURL,
		Timeout: DefaultTimeout,
		Logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	return opts
}
