package installshim

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegisterRoutes_ServesWorkerAndManifest(t *testing.T) {
	mux := http.NewServeMux()
	c := New(WithName("Northwind Traders"), WithShortName("Northwind"))
	patterns, err := c.RegisterRoutes(mux, "/admin")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if diff := cmp.Diff([]string{"/admin/sw.js", "/admin/manifest.webmanifest"}, patterns); diff != "" {
		t.Fatalf("patterns mismatch (-want +got):\n%s", diff)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/sw.js", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/javascript") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	for _, event := range []string{"'install'", "'activate'", "'fetch'", "fetch(event.request)"} {
		if !strings.Contains(body, event) {
			t.Fatalf("worker missing %s: %s", event, body)
		}
	}
	if strings.Contains(body, "caches.") {
		t.Fatalf("worker must not cache")
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/manifest.webmanifest", nil))
	var got map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if got["name"] != "Northwind Traders" || got["short_name"] != "Northwind" || got["display"] != "standalone" {
		t.Fatalf("unexpected manifest %v", got)
	}
}

func TestWorkerHandler_RejectsWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	WorkerHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sw.js", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestPaths(t *testing.T) {
	c := New()
	if got := c.WorkerPath(""); got != "/sw.js" {
		t.Fatalf("unexpected worker path %q", got)
	}
	if got := c.ManifestPath("admin/"); got != "/admin/manifest.webmanifest" {
		t.Fatalf("unexpected manifest path %q", got)
	}
}
