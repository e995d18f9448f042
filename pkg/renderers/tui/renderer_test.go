package tui

import (
	"context"
	"strings"
	"testing"

	gotemplate "github.com/goliatone/go-template"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-northwind/pkg/render"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func nonEmptyLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestRenderTableAlignsColumnsAndDropsActions(t *testing.T) {
	r := newTestRenderer(t)
	view := render.TableView{
		Status: render.StatusPopulated,
		Columns: []render.Column{
			{Label: "ID"},
			{Label: "Company Name"},
			{Label: "Revenue", Align: "right"},
			{Label: "Actions", Align: "center"},
		},
		Rows: []render.Row{
			{ID: "1", Cells: []render.Cell{
				{Kind: render.CellLabel, Text: "1"},
				{Kind: render.CellStrong, Text: "Acme"},
				{Kind: render.CellCurrency, Text: "$1,234.50"},
				{Kind: render.CellActions, Actions: []render.Action{{Name: "edit", Label: "Edit"}}},
			}},
			{ID: "12", Cells: []render.Cell{
				{Kind: render.CellLabel, Text: "12"},
				{Kind: render.CellStrong, Text: "Beta Corp"},
				{Kind: render.CellCurrency, Text: "$9.00"},
				{Kind: render.CellActions},
			}},
		},
		Footer: "Showing 2 customers",
	}

	out, err := r.RenderTable(context.Background(), view)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	rule := strings.Repeat("-", 27)
	want := []string{
		"ID  Company Name    Revenue",
		rule,
		"1   Acme          $1,234.50",
		"12  Beta Corp         $9.00",
		rule,
		"Showing 2 customers",
	}
	if diff := cmp.Diff(want, nonEmptyLines(out)); diff != "" {
		t.Fatalf("table layout mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTableNoticeStates(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.RenderTable(context.Background(), render.TableView{
		Status: render.StatusError,
		Notice: &render.Notice{Header: "Error Loading Customers", Lines: []string{"HTTP error! status: 500"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := []string{"! Error Loading Customers", "  HTTP error! status: 500"}
	if diff := cmp.Diff(want, nonEmptyLines(out)); diff != "" {
		t.Fatalf("error notice mismatch (-want +got):\n%s", diff)
	}

	out, err = r.RenderTable(context.Background(), render.TableView{Status: render.StatusLoading, Loading: "Loading customers..."})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"... Loading customers..."}, nonEmptyLines(out)); diff != "" {
		t.Fatalf("loading mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDialogListsValues(t *testing.T) {
	r := newTestRenderer(t)
	out, err := r.RenderDialog(context.Background(), render.DialogView{
		Title: "Edit Customer",
		Error: "Error saving customer: boom",
		Rows: []render.FieldRow{
			{Fields: []render.FieldView{{Label: "Customer ID", Value: "7", ReadOnly: true}}},
			{Fields: []render.FieldView{{Label: "City", Value: "Berlin"}, {Label: "Secret", Type: "password", Value: "abc"}}},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := []string{
		"== Edit Customer ==",
		"! Error saving customer: boom",
		"Customer ID : 7 (read-only)",
		"City        : Berlin",
		"Secret      : ***",
	}
	if diff := cmp.Diff(want, nonEmptyLines(out)); diff != "" {
		t.Fatalf("dialog mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPageWrapsSections(t *testing.T) {
	r := newTestRenderer(t)
	out, err := r.RenderPage(context.Background(), render.Page{
		Chrome:   render.Chrome{AppName: "Northwind Traders", Version: "1.0.0", Copyright: "(c) 2026 Northwind Traders."},
		Alerts:   []string{"Error deleting customer: boom"},
		Sections: []render.Section{{Title: "Customers", Body: "body & <text>\n"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)
	for _, want := range []string{"Northwind Traders v1.0.0", "! Error deleting customer: boom", "# Customers", "body & <text>", "(c) 2026 Northwind Traders."} {
		if !strings.Contains(text, want) {
			t.Fatalf("page missing %q:\n%s", want, text)
		}
	}
}

func TestRendererIdentity(t *testing.T) {
	r := newTestRenderer(t)
	if r.Name() != "tui" || !strings.HasPrefix(r.ContentType(), "text/plain") {
		t.Fatalf("unexpected identity %s %s", r.Name(), r.ContentType())
	}
}

func TestRendererExecutesThroughTemplateEngine(t *testing.T) {
	r := newTestRenderer(t)
	if _, ok := r.templates.(*gotemplate.Engine); !ok {
		t.Fatalf("expected go-template engine, got %T", r.templates)
	}

	out, err := r.RenderTable(context.Background(), render.TableView{
		Status:  render.StatusLoading,
		Loading: "Loading customers...",
	})
	if err != nil {
		t.Fatalf("render table: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "... Loading customers..." {
		t.Fatalf("unexpected loading output %q", got)
	}
}
