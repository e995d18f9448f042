package admin

import (
	"context"
	"sync"

	"github.com/goliatone/go-northwind/pkg/customers"
)

// Store is the subset of the REST client the customer table needs.
type Store interface {
	ListCustomers(ctx context.Context) ([]customers.Customer, error)
	CreateCustomer(ctx context.Context, draft customers.Draft) error
	UpdateCustomer(ctx context.Context, id int, draft customers.Draft) error
	DeleteCustomer(ctx context.Context, id int) error
}

// RevenueStore is the subset of the REST client the revenue table needs.
type RevenueStore interface {
	ListRevenue(ctx context.Context, skip, take int) ([]customers.CustomerRevenue, error)
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// Notifier surfaces mutation failures to the user.
type Notifier interface {
	Alert(ctx context.Context, message string)
}

// Answer is a Confirmer with a predetermined reply, used when the
// confirmation already happened (for example a posted confirmation form).
type Answer bool

// Confirm returns the predetermined reply.
func (a Answer) Confirm(context.Context, string) (bool, error) {
	return bool(a), nil
}

// AlertLog is a Notifier that keeps alerts for later display.
type AlertLog struct {
	mu     sync.Mutex
	alerts []string
}

// Alert records message.
func (l *AlertLog) Alert(_ context.Context, message string) {
	l.mu.Lock()
	l.alerts = append(l.alerts, message)
	l.mu.Unlock()
}

// Alerts returns the recorded messages in order.
func (l *AlertLog) Alerts() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.alerts...)
}
