package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-northwind/pkg/render"
)

type stubRenderer struct {
	name        string
	contentType string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return s.contentType }
func (s stubRenderer) RenderTable(context.Context, render.TableView) ([]byte, error) {
	return []byte(s.name), nil
}
func (s stubRenderer) RenderDialog(context.Context, render.DialogView) ([]byte, error) {
	return []byte(s.name), nil
}
func (s stubRenderer) RenderPage(context.Context, render.Page) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndList(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "tui", contentType: "text/plain; charset=utf-8"})
	registry.MustRegister(stubRenderer{name: "fomantic", contentType: "text/html; charset=utf-8"})

	if err := registry.Register(stubRenderer{name: "tui"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}

	if diff := cmp.Diff([]string{"fomantic", "tui"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("tui") || registry.Has("vanilla") {
		t.Fatalf("unexpected Has results")
	}
	if _, err := registry.Get("vanilla"); err == nil {
		t.Fatalf("expected lookup error")
	}
}

func TestRegistryForAccept(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "tui", contentType: "text/plain; charset=utf-8"})
	registry.MustRegister(stubRenderer{name: "fomantic", contentType: "text/html; charset=utf-8"})

	cases := []struct {
		accept string
		want   string
	}{
		{accept: "text/plain", want: "tui"},
		{accept: "text/html,application/xhtml+xml;q=0.9", want: "fomantic"},
		{accept: "*/*", want: "fomantic"},
		{accept: "", want: "fomantic"},
		{accept: "application/json", want: "fomantic"},
		{accept: "text/*", want: "fomantic"},
	}
	for _, tc := range cases {
		got, err := registry.ForAccept(tc.accept, "fomantic")
		if err != nil {
			t.Fatalf("accept %q: %v", tc.accept, err)
		}
		if got.Name() != tc.want {
			t.Fatalf("accept %q: want %s, got %s", tc.accept, tc.want, got.Name())
		}
	}

	if _, err := registry.ForAccept("application/json", "missing"); err == nil {
		t.Fatalf("expected error for missing fallback")
	}
}
