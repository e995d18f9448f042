package admin

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-northwind/pkg/customers"
	"github.com/goliatone/go-northwind/pkg/editor"
	"github.com/goliatone/go-northwind/pkg/render"
	"github.com/goliatone/go-northwind/pkg/table"
)

const (
	CustomerTableID = "customers-table"
	RevenueTableID  = "revenue-table"

	notAvailable = "N/A"
)

// CustomerColumns are the customer table headers.
var CustomerColumns = []render.Column{
	{Label: "Customer ID", Icon: "hashtag"},
	{Label: "Company Name", Icon: "building"},
	{Label: "Contact Name", Icon: "user"},
	{Label: "City", Icon: "map marker alternate"},
	{Label: "Country", Icon: "globe"},
	{Label: "Actions", Icon: "cog", Align: "center"},
}

// RevenueColumns are the revenue table headers.
var RevenueColumns = []render.Column{
	{Label: "Customer ID", Icon: "hashtag"},
	{Label: "Customer Name", Icon: "building"},
	{Label: "Order Count", Icon: "shopping cart", Align: "center"},
	{Label: "Total Revenue", Icon: "dollar", Align: "right"},
}

// CustomerView maps a customer table state onto its render model.
func CustomerView(state table.State[customers.Customer], paths Paths) render.TableView {
	view := render.TableView{
		ID:     CustomerTableID,
		Status: state.Status.Render(),
		PageActions: []render.Action{{
			Name: "create", Label: "New Customer", Icon: "plus", Href: paths.New(), Class: "green",
		}},
	}

	switch state.Status {
	case table.Loading:
		view.Loading = "Loading customers..."
	case table.Error:
		view.Notice = &render.Notice{Header: "Error Loading Customers", Lines: []string{state.Message}}
	case table.Empty:
		view.Notice = &render.Notice{Header: "No Customers Found", Lines: []string{"There are no customers in the system."}}
	case table.Populated:
		view.Columns = CustomerColumns
		view.Rows = make([]render.Row, 0, len(state.Records))
		for _, c := range state.Records {
			view.Rows = append(view.Rows, customerRow(c, paths))
		}
		view.Footer = showing(len(state.Records))
		view.FooterIcon = "database"
	}
	return view
}

func customerRow(c customers.Customer, paths Paths) render.Row {
	id := strconv.Itoa(c.CustomerID)
	return render.Row{
		ID: id,
		Cells: []render.Cell{
			{Kind: render.CellLabel, Text: id},
			{Kind: render.CellStrong, Text: render.TextOr(c.CustomerName, notAvailable)},
			{Kind: render.CellPlain, Text: render.TextOr(c.ContactName, notAvailable)},
			{Kind: render.CellPlain, Text: render.TextOr(c.City, notAvailable)},
			{Kind: render.CellPlain, Text: render.TextOr(c.Country, notAvailable)},
			{Kind: render.CellActions, Actions: []render.Action{
				{Name: "edit", Label: "Edit", Icon: "edit", Href: paths.Edit(c.CustomerID), Class: "primary"},
				{Name: "delete", Label: "Delete", Icon: "trash", Href: paths.Delete(c.CustomerID), Class: "red"},
			}},
		},
	}
}

// RevenueView maps a revenue table state onto its render model. Amounts are
// formatted here; records keep the raw values.
func RevenueView(state table.State[customers.CustomerRevenue], money *render.MoneyFormatter) render.TableView {
	if money == nil {
		money = render.USD()
	}
	view := render.TableView{
		ID:     RevenueTableID,
		Status: state.Status.Render(),
	}

	switch state.Status {
	case table.Loading:
		view.Loading = "Loading customer data..."
	case table.Error:
		view.Notice = &render.Notice{
			Header: "Error Loading Data",
			Icon:   "warning",
			Lines:  []string{state.Message, "Failed to fetch customer data from server."},
		}
	case table.Empty:
		view.Notice = &render.Notice{Header: "No Data Available", Lines: []string{"No customers found"}}
	case table.Populated:
		view.Columns = RevenueColumns
		view.Rows = make([]render.Row, 0, len(state.Records))
		for _, item := range state.Records {
			id := strconv.Itoa(item.Customer.CustomerID)
			view.Rows = append(view.Rows, render.Row{
				ID: id,
				Cells: []render.Cell{
					{Kind: render.CellLabel, Text: id},
					{
						Kind:    render.CellHeader,
						Text:    render.TextOr(item.Customer.CustomerName, notAvailable),
						Sub:     render.PlainText(item.Customer.Country),
						SubIcon: subIcon(item.Customer.Country),
					},
					{Kind: render.CellCount, Text: strconv.Itoa(item.TotalOrderCount), Align: "center"},
					{Kind: render.CellCurrency, Text: money.Format(item.TotalRevenue), Align: "right"},
				},
			})
		}
		view.Footer = showing(len(state.Records))
		view.FooterIcon = "users"
	}
	return view
}

// DialogView maps an open editor dialog onto its render model.
func DialogView(d *editor.Dialog, paths Paths) render.DialogView {
	view := render.DialogView{
		ID:          d.ID,
		Kind:        render.DialogForm,
		Title:       d.Title(),
		Icon:        d.Icon(),
		Rows:        d.Fields.Rows(),
		SubmitLabel: "Save",
		CancelLabel: "Cancel",
		CancelHref:  paths.Home(),
		Hidden: render.SortedHiddenFields(render.MergeHiddenFields(nil,
			render.Hidden("dialog", d.ID),
			render.Hidden("mode", d.Mode),
		)),
	}
	if d.Mode == editor.ModeCreate {
		view.Action = paths.Create()
	} else {
		view.Action = paths.Update(d.RecordID)
	}
	if d.Err != nil {
		view.Error = dialogError(d)
	}
	return view
}

// ConfirmDeleteView is the delete confirmation dialog for id.
func ConfirmDeleteView(id int, paths Paths) render.DialogView {
	return render.DialogView{
		ID:          fmt.Sprintf("confirm-delete-%d", id),
		Kind:        render.DialogConfirm,
		Title:       "Delete Customer",
		Icon:        "trash",
		Action:      paths.Delete(id),
		Message:     DeletePrompt(id),
		Hidden:      []render.HiddenField{render.Hidden("confirm", "yes")},
		SubmitLabel: "Delete",
		CancelLabel: "Cancel",
		CancelHref:  paths.Home(),
	}
}

// NoticeView is an informational dialog, used when an edit target is gone.
func NoticeView(title, message string, paths Paths) render.DialogView {
	return render.DialogView{
		ID:          "notice",
		Kind:        render.DialogNotice,
		Title:       title,
		Icon:        "info circle",
		Message:     message,
		CancelLabel: "Close",
		CancelHref:  paths.Home(),
	}
}

func dialogError(d *editor.Dialog) string {
	if d.Mode == editor.ModeCreate {
		return CreateError(d.Err)
	}
	return SaveError(d.Err)
}

func showing(n int) string {
	return fmt.Sprintf("Showing %d customers", n)
}

func subIcon(country string) string {
	if render.PlainText(country) == "" {
		return ""
	}
	return "map marker alternate"
}
