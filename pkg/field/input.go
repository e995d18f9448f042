package field

import (
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-northwind/pkg/render"
)

// EventKind distinguishes keystroke-level updates from committed changes.
type EventKind string

const (
	EventInput  EventKind = "input"
	EventChange EventKind = "change"
)

// Event carries the current value of the input that emitted it.
type Event struct {
	Kind  EventKind
	Name  string
	Value string
}

// Listener receives events bubbled from inputs.
type Listener func(Event)

// Config mirrors the attributes a field input can be configured with.
type Config struct {
	Label        string
	Name         string
	Value        string
	Placeholder  string
	Required     bool
	MinLength    int
	MaxLength    int
	Masked       bool
	Disabled     bool
	ReadOnly     bool
	Autocomplete string
	// Row groups inputs rendered side by side; empty means a row of its own.
	Row string
}

// Input is a single labeled control.
type Input struct {
	mu     sync.RWMutex
	config Config
	value  string
	parent *Group
}

// NewInput builds a detached input; the live value starts at cfg.Value.
func NewInput(cfg Config) *Input {
	return &Input{config: cfg, value: cfg.Value}
}

// Name returns the configured field name.
func (in *Input) Name() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.config.Name
}

// Config returns a copy of the current configuration.
func (in *Input) Config() Config {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.config
}

// Value returns the live control content.
func (in *Input) Value() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.value
}

// SetValue replaces the live value without emitting events.
func (in *Input) SetValue(v string) {
	in.mu.Lock()
	in.value = v
	in.mu.Unlock()
}

// Type simulates the user editing the control: the value is updated and an
// input event is dispatched. Disabled and read-only inputs ignore edits.
func (in *Input) Type(v string) {
	if !in.update(v) {
		return
	}
	in.dispatch(EventInput, v)
}

// Commit updates the value and dispatches a change event, the equivalent of
// the control losing focus after an edit.
func (in *Input) Commit(v string) {
	if !in.update(v) {
		return
	}
	in.dispatch(EventChange, v)
}

// Reconfigure applies a new configuration. The live value resets to the new
// initial value; the owning group, and with it every listener, is kept.
func (in *Input) Reconfigure(cfg Config) {
	in.mu.Lock()
	in.config = cfg
	in.value = cfg.Value
	in.mu.Unlock()
}

// View returns the render model for the current configuration and value.
func (in *Input) View() render.FieldView {
	in.mu.RLock()
	defer in.mu.RUnlock()

	cfg := in.config
	inputType := "text"
	if cfg.Masked {
		inputType = "password"
	}
	autocomplete := strings.TrimSpace(cfg.Autocomplete)
	if autocomplete == "" {
		autocomplete = "off"
	}
	view := render.FieldView{
		ID:           cfg.Name,
		Name:         cfg.Name,
		Label:        cfg.Label,
		Type:         inputType,
		Value:        in.value,
		Placeholder:  cfg.Placeholder,
		Required:     cfg.Required,
		Disabled:     cfg.Disabled,
		ReadOnly:     cfg.ReadOnly,
		Autocomplete: autocomplete,
	}
	if cfg.MinLength > 0 {
		view.MinLength = strconv.Itoa(cfg.MinLength)
	}
	if cfg.MaxLength > 0 {
		view.MaxLength = strconv.Itoa(cfg.MaxLength)
	}
	return view
}

func (in *Input) update(v string) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.config.Disabled || in.config.ReadOnly {
		return false
	}
	in.value = v
	return true
}

func (in *Input) dispatch(kind EventKind, v string) {
	in.mu.RLock()
	parent := in.parent
	name := in.config.Name
	in.mu.RUnlock()
	if parent == nil {
		return
	}
	parent.emit(Event{Kind: kind, Name: name, Value: v})
}
