package customers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handler returns the router serving every admin route relative to the base
// path. Mount it under the base path (see Mount) or serve it directly when
// the base path is empty.
func (c *Component) Handler() http.Handler {
	h := &handler{opts: c.opts, paths: c.paths}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(c.opts.Logger))
	r.Use(middleware.Recoverer)
	if c.opts.Guard != nil {
		r.Use(guard(c.opts.Guard))
	}

	r.Get("/", h.home)
	r.Get("/healthz", h.health)
	r.Get("/customers", h.customerFragment)
	r.Post("/customers", h.create)
	r.Get("/customers/new", h.newDialog)
	r.Get("/customers/{id}/edit", h.editDialog)
	r.Post("/customers/{id}", h.update)
	r.Get("/customers/{id}/delete", h.confirmDelete)
	r.Post("/customers/{id}/delete", h.delete)
	r.Get("/revenue", h.revenueFragment)

	assets := http.StripPrefix(c.opts.BasePath+"/assets/", http.FileServer(http.FS(c.opts.Assets)))
	r.Handle("/assets/*", assets)

	if _, err := c.opts.Shim.RegisterRoutes(r, ""); err != nil {
		c.opts.Logger.Error().Err(err).Msg("install shim routes not registered")
	}
	return r
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()
			defer func() {
				logger.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Str("request_id", middleware.GetReqID(r.Context())).
					Dur("took", time.Since(started)).
					Msg("request")
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

func guard(fn GuardFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := fn(r); err != nil {
				writeGuardError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
