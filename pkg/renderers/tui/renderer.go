package tui

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	gotemplate "github.com/goliatone/go-template"

	"github.com/goliatone/go-northwind/pkg/render"
	rendertemplate "github.com/goliatone/go-northwind/pkg/render/template"
)

// Name is the registry key of the text renderer.
const Name = "tui"

const ruleWidth = 60

// Renderer implements render.Renderer with plain-text output for terminal
// sessions. Tables are laid out in padded columns; action cells are omitted
// because the CLI offers actions through prompts.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	templateFS fs.FS
	theme      Theme
	gap        int
}

var (
	_ render.Renderer                 = (*Renderer)(nil)
	_ rendertemplate.TemplateRenderer = (*gotemplate.Engine)(nil)
)

// New constructs the text renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		templateFS: TemplatesFS(),
		theme:      DefaultTheme,
		gap:        2,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	engine, err := gotemplate.NewRenderer(
		gotemplate.WithFS(r.templateFS),
		gotemplate.WithExtension(".tpl"),
	)
	if err != nil {
		return nil, fmt.Errorf("tui renderer: configure template renderer: %w", err)
	}
	r.templates = engine
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the output format.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// RenderTable lays the table out in aligned columns.
func (r *Renderer) RenderTable(ctx context.Context, view render.TableView) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data := map[string]any{
		"status":  string(view.Status),
		"loading": view.Loading,
		"notice":  view.Notice,
		"footer":  view.Footer,
		"prefix":  r.theme.ErrorPrefix,
	}
	if view.Status != render.StatusError {
		data["prefix"] = r.theme.InfoPrefix
	}
	if view.Status == render.StatusPopulated {
		header, lines := r.layout(view)
		data["header"] = header
		data["lines"] = lines
		data["rule"] = strings.Repeat("-", utf8.RuneCountInString(header))
	}
	return r.execute("table", data)
}

// RenderDialog prints the dialog title, error, message and current values.
func (r *Renderer) RenderDialog(ctx context.Context, view render.DialogView) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var lines []string
	width := 0
	for _, row := range view.Rows {
		for _, f := range row.Fields {
			if n := utf8.RuneCountInString(f.Label); n > width {
				width = n
			}
		}
	}
	for _, row := range view.Rows {
		for _, f := range row.Fields {
			value := f.Value
			if f.Type == "password" && value != "" {
				value = strings.Repeat("*", utf8.RuneCountInString(value))
			}
			suffix := ""
			if f.ReadOnly {
				suffix = " (read-only)"
			}
			lines = append(lines, pad(f.Label, width)+" : "+value+suffix)
		}
	}
	return r.execute("dialog", map[string]any{
		"dialog": view,
		"lines":  lines,
		"prefix": r.theme.ErrorPrefix,
	})
}

// RenderPage prints the chrome around pre-rendered text sections.
func (r *Renderer) RenderPage(ctx context.Context, page render.Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.execute("page", map[string]any{
		"page":   page,
		"rule":   strings.Repeat("=", ruleWidth),
		"prefix": r.theme.ErrorPrefix,
	})
}

func (r *Renderer) layout(view render.TableView) (string, []string) {
	include := make([]bool, len(view.Columns))
	widths := make([]int, len(view.Columns))
	for i, col := range view.Columns {
		include[i] = true
		widths[i] = utf8.RuneCountInString(col.Label)
	}
	for _, row := range view.Rows {
		for i, cell := range row.Cells {
			if i >= len(widths) {
				break
			}
			if cell.Kind == render.CellActions {
				include[i] = false
				continue
			}
			if n := utf8.RuneCountInString(cellText(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, col := range view.Columns {
		if strings.EqualFold(col.Label, "actions") {
			include[i] = false
		}
	}

	gap := strings.Repeat(" ", r.gap)
	headerCells := make([]string, 0, len(view.Columns))
	for i, col := range view.Columns {
		if include[i] {
			headerCells = append(headerCells, align(col.Label, widths[i], col.Align))
		}
	}
	lines := make([]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		cells := make([]string, 0, len(row.Cells))
		for i, cell := range row.Cells {
			if i >= len(include) || !include[i] {
				continue
			}
			cells = append(cells, align(cellText(cell), widths[i], view.Columns[i].Align))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, gap), " "))
	}
	return strings.TrimRight(strings.Join(headerCells, gap), " "), lines
}

func (r *Renderer) execute(name string, data map[string]any) ([]byte, error) {
	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("tui renderer: render %s: %w", name, err)
	}
	return []byte(out), nil
}

func cellText(cell render.Cell) string {
	if cell.Sub != "" {
		return cell.Text + " (" + cell.Sub + ")"
	}
	return cell.Text
}

func align(text string, width int, alignment string) string {
	switch alignment {
	case "right":
		return strings.Repeat(" ", width-utf8.RuneCountInString(text)) + text
	case "center":
		space := width - utf8.RuneCountInString(text)
		left := space / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", space-left)
	default:
		return pad(text, width)
	}
}

func pad(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}
