package field

import (
	"sync"

	"github.com/goliatone/go-northwind/pkg/render"
)

// Group owns an ordered set of inputs and receives their bubbled events.
type Group struct {
	mu        sync.RWMutex
	inputs    []*Input
	byName    map[string]*Input
	listeners []Listener
}

// NewGroup builds a group from configurations, preserving order.
func NewGroup(configs ...Config) *Group {
	g := &Group{byName: make(map[string]*Input, len(configs))}
	for _, cfg := range configs {
		g.Add(NewInput(cfg))
	}
	return g
}

// Add attaches an input; a later input with the same name replaces the
// earlier lookup entry but both stay in render order.
func (g *Group) Add(in *Input) {
	if in == nil {
		return
	}
	in.mu.Lock()
	in.parent = g
	in.mu.Unlock()

	g.mu.Lock()
	g.inputs = append(g.inputs, in)
	g.byName[in.Name()] = in
	g.mu.Unlock()
}

// Listen registers a listener for every input in the group.
func (g *Group) Listen(fn Listener) {
	if fn == nil {
		return
	}
	g.mu.Lock()
	g.listeners = append(g.listeners, fn)
	g.mu.Unlock()
}

// Input looks an input up by name.
func (g *Group) Input(name string) (*Input, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	in, ok := g.byName[name]
	return in, ok
}

// Inputs returns the inputs in render order.
func (g *Group) Inputs() []*Input {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Input, len(g.inputs))
	copy(out, g.inputs)
	return out
}

// Values collects every input's live value keyed by name.
func (g *Group) Values() map[string]string {
	inputs := g.Inputs()
	out := make(map[string]string, len(inputs))
	for _, in := range inputs {
		name := in.Name()
		if name == "" {
			continue
		}
		out[name] = in.Value()
	}
	return out
}

// Apply sets live values for the named inputs, ignoring unknown names.
func (g *Group) Apply(values map[string]string) {
	for name, value := range values {
		if in, ok := g.Input(name); ok {
			in.SetValue(value)
		}
	}
}

// Rows returns the render model grouped by Config.Row. Consecutive inputs
// sharing a non-empty row end up side by side.
func (g *Group) Rows() []render.FieldRow {
	var rows []render.FieldRow
	for _, in := range g.Inputs() {
		row := in.Config().Row
		view := in.View()
		if row != "" && len(rows) > 0 && rows[len(rows)-1].Key == row {
			rows[len(rows)-1].Fields = append(rows[len(rows)-1].Fields, view)
			continue
		}
		rows = append(rows, render.FieldRow{Key: row, Fields: []render.FieldView{view}})
	}
	return rows
}

func (g *Group) emit(evt Event) {
	g.mu.RLock()
	listeners := make([]Listener, len(g.listeners))
	copy(listeners, g.listeners)
	g.mu.RUnlock()
	for _, fn := range listeners {
		fn(evt)
	}
}
