package installshim

import (
	_ "embed"
	"encoding/json"
	"net/http"
)

//go:embed assets/sw.js
var serviceWorker []byte

// ServiceWorker returns the embedded worker script.
func ServiceWorker() []byte {
	return append([]byte(nil), serviceWorker...)
}

type manifest struct {
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	StartURL        string `json:"start_url"`
	Display         string `json:"display"`
	ThemeColor      string `json:"theme_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
}

// Manifest encodes the web app manifest for opts.
func Manifest(opts Options) ([]byte, error) {
	opts = NewOptions(func(o *Options) { *o = opts })
	return json.MarshalIndent(manifest{
		Name:            opts.Name,
		ShortName:       opts.ShortName,
		StartURL:        opts.StartURL,
		Display:         opts.Display,
		ThemeColor:      opts.ThemeColor,
		BackgroundColor: opts.BackgroundColor,
	}, "", "  ")
}

// WorkerHandler serves the service worker script.
func WorkerHandler() http.Handler {
	return staticHandler("text/javascript; charset=utf-8", serviceWorker)
}

// ManifestHandler serves the manifest built from opts.
func ManifestHandler(opts Options) (http.Handler, error) {
	body, err := Manifest(opts)
	if err != nil {
		return nil, err
	}
	return staticHandler("application/manifest+json", body), nil
}

func staticHandler(contentType string, body []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(body)
	})
}
