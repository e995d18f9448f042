package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-northwind/pkg/customers"
	"github.com/goliatone/go-northwind/pkg/field"
)

// Layout supplies the field configurations for a dialog mode.
type Layout interface {
	Fields(mode Mode) []field.Config
}

// Saver persists a draft. recordID is zero for creates.
type Saver func(ctx context.Context, mode Mode, recordID int, draft customers.Draft) error

// Finder resolves an identifier against the currently displayed collection.
type Finder func(id int) (customers.Customer, bool)

// Options configures a Manager.
type Options struct {
	Logger  zerolog.Logger
	OnSaved func(ctx context.Context)
	NewID   func() string
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the manager logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithOnSaved registers the hook run after a successful submit.
func WithOnSaved(fn func(ctx context.Context)) Option {
	return func(o *Options) {
		o.OnSaved = fn
	}
}

// WithDialogID overrides the dialog id generator.
func WithDialogID(fn func() string) Option {
	return func(o *Options) {
		if fn != nil {
			o.NewID = fn
		}
	}
}

// Manager holds at most one open dialog.
type Manager struct {
	mu      sync.Mutex
	layout  Layout
	save    Saver
	opts    Options
	current *Dialog
}

// NewManager builds a manager. Both layout and save are required.
func NewManager(layout Layout, save Saver, options ...Option) (*Manager, error) {
	if layout == nil {
		return nil, fmt.Errorf("editor: layout is required")
	}
	if save == nil {
		return nil, fmt.Errorf("editor: saver is required")
	}
	opts := Options{
		Logger: zerolog.Nop(),
		NewID:  uuid.NewString,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	return &Manager{layout: layout, save: save, opts: opts}, nil
}

// OpenEdit replaces any open dialog with an edit dialog prefilled from
// record.
func (m *Manager) OpenEdit(record customers.Customer) *Dialog {
	fields := field.NewGroup(m.layout.Fields(ModeEdit)...)
	fields.Apply(record.Attributes())
	return m.open(&Dialog{Mode: ModeEdit, RecordID: record.CustomerID, Fields: fields})
}

// OpenEditByID looks the identifier up through find. When the record is
// absent nothing is opened, the miss is logged, and ErrRecordNotFound is
// returned.
func (m *Manager) OpenEditByID(id int, find Finder) (*Dialog, error) {
	if find != nil {
		if record, ok := find(id); ok {
			return m.OpenEdit(record), nil
		}
	}
	m.opts.Logger.Warn().Int("customer_id", id).Msg("edit requested for unknown customer")
	return nil, fmt.Errorf("%w: customer %d", ErrRecordNotFound, id)
}

// OpenCreate replaces any open dialog with an empty create dialog.
func (m *Manager) OpenCreate() *Dialog {
	fields := field.NewGroup(m.layout.Fields(ModeCreate)...)
	return m.open(&Dialog{Mode: ModeCreate, Fields: fields})
}

// Current returns the open dialog, if any.
func (m *Manager) Current() (*Dialog, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.current != nil
}

// Cancel discards the open dialog and its draft.
func (m *Manager) Cancel() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// Submit sends the open dialog's draft through the saver. On success the
// dialog closes and OnSaved runs. On failure the dialog stays open with Err
// set and the error is returned.
func (m *Manager) Submit(ctx context.Context) error {
	m.mu.Lock()
	dialog := m.current
	m.mu.Unlock()
	if dialog == nil {
		return ErrNoDialog
	}

	draft := dialog.Draft()
	if err := m.save(ctx, dialog.Mode, dialog.RecordID, draft); err != nil {
		m.mu.Lock()
		if m.current == dialog {
			dialog.Err = err
		}
		m.mu.Unlock()
		m.opts.Logger.Warn().
			Err(err).
			Str("dialog", dialog.ID).
			Str("mode", string(dialog.Mode)).
			Msg("save failed")
		return err
	}

	m.mu.Lock()
	if m.current == dialog {
		m.current = nil
	}
	m.mu.Unlock()

	if m.opts.OnSaved != nil {
		m.opts.OnSaved(ctx)
	}
	return nil
}

func (m *Manager) open(dialog *Dialog) *Dialog {
	dialog.ID = m.opts.NewID()
	m.mu.Lock()
	m.current = dialog
	m.mu.Unlock()
	return dialog
}
