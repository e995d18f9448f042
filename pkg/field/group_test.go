package field_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-northwind/pkg/field"
)

func TestGroupBubblesEventsFromEveryInput(t *testing.T) {
	group := field.NewGroup(
		field.Config{Name: "customerName"},
		field.Config{Name: "city"},
	)

	var got []field.Event
	group.Listen(func(evt field.Event) { got = append(got, evt) })
	group.Listen(nil)

	name, _ := group.Input("customerName")
	city, _ := group.Input("city")
	name.Type("Ac")
	city.Commit("Oslo")

	want := []field.Event{
		{Kind: field.EventInput, Name: "customerName", Value: "Ac"},
		{Kind: field.EventChange, Name: "city", Value: "Oslo"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupValuesAndApply(t *testing.T) {
	group := field.NewGroup(
		field.Config{Name: "customerName", Value: "Acme"},
		field.Config{Name: "city"},
	)
	group.Apply(map[string]string{"city": "Oslo", "unknown": "x"})

	want := map[string]string{"customerName": "Acme", "city": "Oslo"}
	if diff := cmp.Diff(want, group.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if _, ok := group.Input("unknown"); ok {
		t.Fatalf("apply must not create inputs")
	}
}

func TestGroupRowsPairsSharedRowKeys(t *testing.T) {
	group := field.NewGroup(
		field.Config{Name: "address"},
		field.Config{Name: "city", Row: "locality"},
		field.Config{Name: "region", Row: "locality"},
		field.Config{Name: "phone", Row: "contact"},
		field.Config{Name: "fax", Row: "contact"},
		field.Config{Name: "country"},
	)

	rows := group.Rows()
	var layout [][]string
	for _, row := range rows {
		var names []string
		for _, f := range row.Fields {
			names = append(names, f.Name)
		}
		layout = append(layout, names)
	}

	want := [][]string{
		{"address"},
		{"city", "region"},
		{"phone", "fax"},
		{"country"},
	}
	if diff := cmp.Diff(want, layout); diff != "" {
		t.Fatalf("row layout mismatch (-want +got):\n%s", diff)
	}
}
