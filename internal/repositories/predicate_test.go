package repositories

import (
	"reflect"
	"strings"
	"testing"
)

func TestVehicleSearchTermAndFiltersAnded(t *testing.T) {
	cond := VehicleSearch("civic", VehicleFilters{Brand: "Honda", PriceMin: 1000})
	where, args := cond.Where()

	if !strings.HasPrefix(where, " WHERE (") {
		t.Fatalf("expected OR group first, got %q", where)
	}
	if strings.Count(where, " AND ") != 2 {
		t.Fatalf("expected term ANDed with two filters, got %q", where)
	}
	want := []any{"%civic%", "%civic%", "%Honda%", int64(1000)}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
}

func TestVehicleSearchNumericTermMatchesPriceAndYear(t *testing.T) {
	cond := VehicleSearch("2020", VehicleFilters{})
	where, args := cond.Where()

	if !strings.Contains(where, "v.price = ?") || !strings.Contains(where, "v.year = ?") {
		t.Fatalf("numeric term should add equality alternatives, got %q", where)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %v", args)
	}
	if args[2] != int64(2020) || args[3] != int64(2020) {
		t.Fatalf("expected numeric args, got %v", args)
	}
}

func TestVehicleSearchEmptyTermNoFilters(t *testing.T) {
	cond := VehicleSearch("   ", VehicleFilters{})
	if !cond.Empty() {
		t.Fatalf("expected empty cond")
	}
	where, args := cond.Where()
	if where != "" || args != nil {
		t.Fatalf("expected no WHERE clause, got %q %v", where, args)
	}
}

func TestPurchaseOrderSearchStatusFilter(t *testing.T) {
	cond := PurchaseOrderSearch("budi", OrderFilters{Status: "pending"})
	where, args := cond.Where()

	if !strings.Contains(where, "u.name LIKE ?") {
		t.Fatalf("term should match buyer name, got %q", where)
	}
	if !strings.Contains(where, "o.status = ?") {
		t.Fatalf("status filter missing, got %q", where)
	}
	if args[len(args)-1] != "pending" {
		t.Fatalf("status arg should come last, got %v", args)
	}
}

func TestCondAndIgnoresBlankClause(t *testing.T) {
	var c Cond
	c.And("  ")
	c.And("v.id = ?", 1)
	where, args := c.Where()
	if where != " WHERE v.id = ?" || len(args) != 1 {
		t.Fatalf("got %q %v", where, args)
	}
}

func TestCondMerge(t *testing.T) {
	a := VehicleSearch("civic", VehicleFilters{})
	var b Cond
	b.And("v.dealership_id = ?", 3)
	a.Merge(b)

	where, args := a.Where()
	if !strings.HasSuffix(where, "v.dealership_id = ?") {
		t.Fatalf("merged clause missing, got %q", where)
	}
	if args[len(args)-1] != 3 {
		t.Fatalf("merged arg missing, got %v", args)
	}
}
