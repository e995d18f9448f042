// Package admin wires the data table, the record editor and the REST client
// into the customer and revenue tables, and maps their states onto render
// view models. View functions are pure: the same state always yields the same
// view.
package admin
