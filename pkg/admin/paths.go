package admin

import (
	"fmt"
	"strings"
)

// Paths builds the URLs rows and dialogs link to, relative to a mount point.
type Paths struct {
	Base string
}

func (p Paths) join(suffix string) string {
	base := strings.TrimRight(p.Base, "/")
	return base + suffix
}

// Home is the page listing both tables.
func (p Paths) Home() string { return p.join("/") }

// New opens the create dialog.
func (p Paths) New() string { return p.join("/customers/new") }

// Create receives the create form.
func (p Paths) Create() string { return p.join("/customers") }

// Edit opens the edit dialog for id.
func (p Paths) Edit(id int) string { return p.join(fmt.Sprintf("/customers/%d/edit", id)) }

// Update receives the edit form for id.
func (p Paths) Update(id int) string { return p.join(fmt.Sprintf("/customers/%d", id)) }

// Delete opens (GET) and receives (POST) the delete confirmation for id.
func (p Paths) Delete(id int) string { return p.join(fmt.Sprintf("/customers/%d/delete", id)) }
