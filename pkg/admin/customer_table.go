package admin

import (
	"context"
	"fmt"

	"github.com/goliatone/go-northwind/pkg/customers"
	"github.com/goliatone/go-northwind/pkg/editor"
	"github.com/goliatone/go-northwind/pkg/render"
	"github.com/goliatone/go-northwind/pkg/table"
)

// CustomerTable is the customer list with its editor and delete flow.
type CustomerTable struct {
	opts   Options
	store  Store
	table  *table.Table[customers.Customer]
	editor *editor.Manager
}

// NewCustomerTable wires a table and an editor against store. layout
// supplies the dialog fields.
func NewCustomerTable(store Store, layout editor.Layout, options ...Option) (*CustomerTable, error) {
	if store == nil {
		return nil, fmt.Errorf("admin: store is required")
	}
	opts := newOptions(options...)
	ct := &CustomerTable{opts: opts, store: store}

	tbl, err := table.New(store.ListCustomers,
		table.WithName[customers.Customer]("customers"),
		table.WithLogger[customers.Customer](opts.Logger),
		table.WithTimeout[customers.Customer](opts.Timeout),
	)
	if err != nil {
		return nil, err
	}
	ct.table = tbl

	editorOpts := []editor.Option{
		editor.WithLogger(opts.Logger),
		editor.WithOnSaved(func(ctx context.Context) { ct.table.Refresh(ctx) }),
	}
	if opts.DialogID != nil {
		editorOpts = append(editorOpts, editor.WithDialogID(opts.DialogID))
	}
	manager, err := editor.NewManager(layout, ct.save, editorOpts...)
	if err != nil {
		return nil, err
	}
	ct.editor = manager
	return ct, nil
}

// Refresh refetches the collection.
func (ct *CustomerTable) Refresh(ctx context.Context) table.State[customers.Customer] {
	return ct.table.Refresh(ctx)
}

// State returns the current table state.
func (ct *CustomerTable) State() table.State[customers.Customer] {
	return ct.table.State()
}

// View renders the current state.
func (ct *CustomerTable) View() render.TableView {
	return CustomerView(ct.table.State(), ct.opts.Paths)
}

// Paths returns the URL builder.
func (ct *CustomerTable) Paths() Paths {
	return ct.opts.Paths
}

// Edit opens the edit dialog for id. The record must be part of the last
// displayed collection; otherwise editor.ErrRecordNotFound is returned.
func (ct *CustomerTable) Edit(id int) (*editor.Dialog, error) {
	return ct.editor.OpenEditByID(id, func(id int) (customers.Customer, bool) {
		return ct.table.Lookup(func(c customers.Customer) bool { return c.CustomerID == id })
	})
}

// Create opens an empty create dialog.
func (ct *CustomerTable) Create() *editor.Dialog {
	return ct.editor.OpenCreate()
}

// Dialog returns the open dialog, if any.
func (ct *CustomerTable) Dialog() (*editor.Dialog, bool) {
	return ct.editor.Current()
}

// DialogView renders the open dialog.
func (ct *CustomerTable) DialogView() (render.DialogView, bool) {
	d, ok := ct.editor.Current()
	if !ok {
		return render.DialogView{}, false
	}
	return DialogView(d, ct.opts.Paths), true
}

// Submit saves the open dialog. On failure the dialog stays open, the
// notifier receives the alert, and the collection is left untouched.
func (ct *CustomerTable) Submit(ctx context.Context) error {
	d, ok := ct.editor.Current()
	if !ok {
		return editor.ErrNoDialog
	}
	if err := ct.editor.Submit(ctx); err != nil {
		ct.opts.Notifier.Alert(ctx, dialogError(&editor.Dialog{Mode: d.Mode, Err: err}))
		return err
	}
	return nil
}

// Cancel discards the open dialog.
func (ct *CustomerTable) Cancel() {
	ct.editor.Cancel()
}

// Delete asks the confirmer first and issues nothing when declined. A
// confirmed delete sends exactly one request; success refreshes the table
// and failure alerts. The boolean reports whether the delete was attempted.
func (ct *CustomerTable) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := ct.opts.Confirmer.Confirm(ctx, DeletePrompt(id))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := ct.store.DeleteCustomer(ctx, id); err != nil {
		ct.opts.Logger.Warn().Err(err).Int("customer_id", id).Msg("delete failed")
		ct.opts.Notifier.Alert(ctx, DeleteError(err))
		return true, err
	}
	ct.table.Refresh(ctx)
	return true, nil
}

func (ct *CustomerTable) save(ctx context.Context, mode editor.Mode, id int, draft customers.Draft) error {
	if mode == editor.ModeCreate {
		return ct.store.CreateCustomer(ctx, draft)
	}
	return ct.store.UpdateCustomer(ctx, id, draft)
}
