package editor

import (
	"github.com/goliatone/go-northwind/pkg/customers"
	"github.com/goliatone/go-northwind/pkg/field"
)

// Mode distinguishes editing an existing record from creating a new one.
type Mode string

const (
	ModeEdit   Mode = "edit"
	ModeCreate Mode = "create"
)

// Dialog is the single modal form. RecordID is zero in create mode.
type Dialog struct {
	ID       string
	Mode     Mode
	RecordID int
	Fields   *field.Group
	Err      error
}

// Title returns the dialog heading.
func (d *Dialog) Title() string {
	if d.Mode == ModeCreate {
		return "Create Customer"
	}
	return "Edit Customer"
}

// Icon returns the heading icon name.
func (d *Dialog) Icon() string {
	if d.Mode == ModeCreate {
		return "plus"
	}
	return "edit"
}

// Draft assembles the flat payload from every field's live value. Create
// drafts never carry the identifier.
func (d *Dialog) Draft() customers.Draft {
	draft := customers.Draft(d.Fields.Values())
	if d.Mode == ModeCreate {
		return draft.WithoutID()
	}
	return draft
}
