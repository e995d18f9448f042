package admin_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-northwind/pkg/admin"
	"github.com/goliatone/go-northwind/pkg/client"
	"github.com/goliatone/go-northwind/pkg/table"
	"github.com/goliatone/go-northwind/pkg/testsupport"
)

const betaRevenue = `[{"customer":{"customerId":2,"customerName":"Beta","country":"FR"},"totalOrderCount":5,"totalRevenue":1234.5}]`

func newRevenueTable(t *testing.T, api *testsupport.FakeAPI, opts ...admin.Option) *admin.RevenueTable {
	t.Helper()
	c, err := client.New(api.BaseURL())
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	rt, err := admin.NewRevenueTable(c, opts...)
	if err != nil {
		t.Fatalf("new revenue table: %v", err)
	}
	return rt
}

func TestRevenueTableFormatsCurrency(t *testing.T) {
	api := testsupport.NewFakeAPI(t)
	api.Respond("GET /public/customers-with-revenue", http.StatusOK, betaRevenue)
	rt := newRevenueTable(t, api)

	state := rt.Refresh(context.Background())
	if state.Status != table.Populated {
		t.Fatalf("expected populated, got %s (%s)", state.Status, state.Message)
	}

	calls := api.CallsTo(http.MethodGet)
	if len(calls) != 1 || calls[0].Query != "skip=0&take=10" {
		t.Fatalf("unexpected calls %+v", calls)
	}

	view := rt.View()
	if len(view.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(view.Rows))
	}
	cells := view.Rows[0].Cells
	got := []string{cells[0].Text, cells[1].Text, cells[1].Sub, cells[2].Text, cells[3].Text}
	want := []string{"2", "Beta", "FR", "5", "$1,234.50"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
	if state.Records[0].TotalRevenue != 1234.5 {
		t.Fatalf("record value mutated: %v", state.Records[0].TotalRevenue)
	}
}

func TestRevenueTableLimit(t *testing.T) {
	api := testsupport.NewFakeAPI(t)
	api.Respond("GET /public/customers-with-revenue", http.StatusOK, `[]`)
	rt := newRevenueTable(t, api, admin.WithLimit(-3))

	if rt.Limit() != admin.DefaultRevenueLimit {
		t.Fatalf("expected default limit, got %d", rt.Limit())
	}
	rt.SetLimit(context.Background(), 25)
	rt.SetLimit(context.Background(), 25)

	calls := api.CallsTo(http.MethodGet)
	if len(calls) != 1 || calls[0].Query != "skip=0&take=25" {
		t.Fatalf("unexpected calls %+v", calls)
	}
	if rt.State().Status != table.Empty {
		t.Fatalf("expected empty, got %s", rt.State().Status)
	}
	if notice := rt.View().Notice; notice == nil || notice.Header != "No Data Available" {
		t.Fatalf("unexpected notice %+v", notice)
	}
}

func TestParseLimit(t *testing.T) {
	cases := map[string]int{
		"":    10,
		"abc": 10,
		"0":   10,
		"-1":  10,
		" 5 ": 5,
		"100": 100,
	}
	for raw, want := range cases {
		if got := admin.ParseLimit(raw); got != want {
			t.Fatalf("ParseLimit(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestRevenueTableErrorNotice(t *testing.T) {
	api := testsupport.NewFakeAPI(t)
	api.Respond("GET /public/customers-with-revenue", http.StatusBadGateway, `{}`)
	rt := newRevenueTable(t, api)
	rt.Refresh(context.Background())

	notice := rt.View().Notice
	if notice == nil {
		t.Fatalf("expected notice")
	}
	want := []string{"HTTP error! status: 502", "Failed to fetch customer data from server."}
	if diff := cmp.Diff(want, notice.Lines); diff != "" {
		t.Fatalf("notice mismatch (-want +got):\n%s", diff)
	}
}
