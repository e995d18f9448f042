package admin

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-northwind/pkg/customers"
	"github.com/goliatone/go-northwind/pkg/render"
	"github.com/goliatone/go-northwind/pkg/table"
)

// RevenueTable lists the top customers by revenue, limited to Limit rows.
type RevenueTable struct {
	opts  Options
	store RevenueStore
	table *table.Table[customers.CustomerRevenue]

	mu    sync.RWMutex
	limit int
}

// NewRevenueTable wires a table against store.
func NewRevenueTable(store RevenueStore, options ...Option) (*RevenueTable, error) {
	if store == nil {
		return nil, fmt.Errorf("admin: revenue store is required")
	}
	opts := newOptions(options...)
	rt := &RevenueTable{opts: opts, store: store, limit: NormalizeLimit(opts.Limit)}

	tbl, err := table.New(rt.fetch,
		table.WithName[customers.CustomerRevenue]("revenue"),
		table.WithLogger[customers.CustomerRevenue](opts.Logger),
		table.WithTimeout[customers.CustomerRevenue](opts.Timeout),
	)
	if err != nil {
		return nil, err
	}
	rt.table = tbl
	return rt, nil
}

// NormalizeLimit maps non-positive limits to DefaultRevenueLimit.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultRevenueLimit
	}
	return limit
}

// ParseLimit reads a limit attribute; anything unparsable yields the default.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultRevenueLimit
	}
	return NormalizeLimit(n)
}

// Limit returns the current limit.
func (rt *RevenueTable) Limit() int {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.limit
}

// SetLimit changes the limit and refetches when it changed.
func (rt *RevenueTable) SetLimit(ctx context.Context, limit int) table.State[customers.CustomerRevenue] {
	limit = NormalizeLimit(limit)
	rt.mu.Lock()
	changed := limit != rt.limit
	rt.limit = limit
	rt.mu.Unlock()
	if !changed {
		return rt.table.State()
	}
	return rt.table.Refresh(ctx)
}

// Refresh refetches the collection.
func (rt *RevenueTable) Refresh(ctx context.Context) table.State[customers.CustomerRevenue] {
	return rt.table.Refresh(ctx)
}

// State returns the current table state.
func (rt *RevenueTable) State() table.State[customers.CustomerRevenue] {
	return rt.table.State()
}

// View renders the current state.
func (rt *RevenueTable) View() render.TableView {
	return RevenueView(rt.table.State(), rt.opts.Money)
}

func (rt *RevenueTable) fetch(ctx context.Context) ([]customers.CustomerRevenue, error) {
	return rt.store.ListRevenue(ctx, 0, rt.Limit())
}
