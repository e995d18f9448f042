package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goliatone/go-northwind/pkg/admin"
	"github.com/goliatone/go-northwind/pkg/customers"
	"github.com/goliatone/go-northwind/pkg/render"
	"github.com/goliatone/go-northwind/pkg/renderers/tui"
	"github.com/goliatone/go-northwind/pkg/table"
)

const (
	actionList    = "List customers"
	actionRevenue = "Top customers by revenue"
	actionCreate  = "Create customer"
	actionEdit    = "Edit customer"
	actionDelete  = "Delete customer"
	actionQuit    = "Quit"
)

var menu = []string{actionList, actionRevenue, actionCreate, actionEdit, actionDelete, actionQuit}

// console drives the admin tables from a terminal.
type console struct {
	customers *admin.CustomerTable
	revenue   *admin.RevenueTable
	prompts   *tui.Prompts
	renderer  render.Renderer
	out       io.Writer
}

// run shows the menu until the user quits or aborts.
func (c *console) run(ctx context.Context) error {
	for {
		idx, err := c.prompts.Choose(ctx, "What would you like to do?", menu)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		}
		if menu[idx] == actionQuit {
			return nil
		}
		if err := c.dispatch(ctx, menu[idx]); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		}
	}
}

func (c *console) dispatch(ctx context.Context, action string) error {
	switch action {
	case actionList:
		c.customers.Refresh(ctx)
		return c.table(ctx, c.customers.View())
	case actionRevenue:
		return c.showRevenue(ctx)
	case actionCreate:
		return c.create(ctx)
	case actionEdit:
		return c.edit(ctx)
	case actionDelete:
		return c.delete(ctx)
	}
	return fmt.Errorf("unknown action %q", action)
}

func (c *console) showRevenue(ctx context.Context) error {
	answer, err := c.prompts.Driver().Input(ctx, tui.InputConfig{
		Message: "How many customers?",
		Default: strconv.Itoa(c.revenue.Limit()),
	})
	if err != nil {
		return err
	}
	limit := admin.ParseLimit(answer)
	if limit == c.revenue.Limit() {
		c.revenue.Refresh(ctx)
	} else {
		c.revenue.SetLimit(ctx, limit)
	}
	return c.table(ctx, c.revenue.View())
}

func (c *console) create(ctx context.Context) error {
	d := c.customers.Create()
	if err := c.dialog(ctx); err != nil {
		return err
	}
	if err := c.prompts.Fill(ctx, d.Fields); err != nil {
		c.customers.Cancel()
		return err
	}
	return c.submit(ctx, "Customer created.")
}

func (c *console) edit(ctx context.Context) error {
	record, ok, err := c.pick(ctx, "Edit which customer?")
	if err != nil || !ok {
		return err
	}
	d, err := c.customers.Edit(record.CustomerID)
	if err != nil {
		c.prompts.Alert(ctx, err.Error())
		return nil
	}
	if err := c.dialog(ctx); err != nil {
		return err
	}
	if err := c.prompts.Fill(ctx, d.Fields); err != nil {
		c.customers.Cancel()
		return err
	}
	return c.submit(ctx, "Customer saved.")
}

func (c *console) delete(ctx context.Context) error {
	record, ok, err := c.pick(ctx, "Delete which customer?")
	if err != nil || !ok {
		return err
	}
	attempted, err := c.customers.Delete(ctx, record.CustomerID)
	if err != nil || !attempted {
		// Failures were already alerted.
		return nil
	}
	return c.prompts.Info(ctx, "Customer deleted.")
}

// submit saves the open dialog. A failed save was alerted by the table; the
// user may retry with the same draft or discard it.
func (c *console) submit(ctx context.Context, done string) error {
	for {
		if err := c.customers.Submit(ctx); err == nil {
			return c.prompts.Info(ctx, done)
		}
		retry, err := c.prompts.Confirm(ctx, "Retry?")
		if err != nil {
			c.customers.Cancel()
			return err
		}
		if !retry {
			c.customers.Cancel()
			return nil
		}
	}
}

// pick lists the current customers and returns the chosen one. ok is false
// when there is nothing to choose from.
func (c *console) pick(ctx context.Context, message string) (customers.Customer, bool, error) {
	state := c.customers.Refresh(ctx)
	if state.Status != table.Populated {
		if err := c.table(ctx, c.customers.View()); err != nil {
			return customers.Customer{}, false, err
		}
		return customers.Customer{}, false, nil
	}
	options := make([]string, 0, len(state.Records))
	for _, record := range state.Records {
		options = append(options, fmt.Sprintf("%d  %s", record.CustomerID, render.TextOr(record.CustomerName, "N/A")))
	}
	idx, err := c.prompts.Choose(ctx, message, options)
	if err != nil {
		return customers.Customer{}, false, err
	}
	return state.Records[idx], true, nil
}

func (c *console) dialog(ctx context.Context) error {
	view, ok := c.customers.DialogView()
	if !ok {
		return nil
	}
	out, err := c.renderer.RenderDialog(ctx, view)
	if err != nil {
		return err
	}
	_, err = c.out.Write(out)
	return err
}

func (c *console) table(ctx context.Context, view render.TableView) error {
	out, err := c.renderer.RenderTable(ctx, view)
	if err != nil {
		return err
	}
	_, err = c.out.Write(out)
	return err
}
