package services_test

import (
	"testing"

	"campos/internal/domain"
	"campos/internal/services"
)

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: "a", Name: "Canon EOS R5", Category: "camera", Condition: domain.ConditionNew, Price: 65000000, Stock: 5, Rating: 4.8},
		{ID: "b", Name: "Sony FX3", Category: "camera", Condition: domain.ConditionNew, Price: 85000000, Stock: 3, Rating: 4.9},
		{ID: "c", Name: "Canon RF 24-70mm f/2.8L", Category: "lens", Condition: domain.ConditionNew, Price: 22000000, Stock: 0, Rating: 4.7},
		{ID: "d", Name: "Canon 5D Mark IV", Category: "camera", Condition: domain.ConditionUsed, Price: 18000000, Stock: 2, Rating: 4.5},
		{ID: "e", Name: "Manfrotto Befree Tripod", Category: "tripod", Condition: domain.ConditionNew, Price: 3500000, Stock: 12, Rating: 4.6},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func sameIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyFilterDefaultSpecIsIdentity(t *testing.T) {
	in := catalogFixture()
	out := services.ApplyFilter(in, domain.DefaultFilterSpec())
	if !sameIDs(ids(out), "a", "b", "c", "d", "e") {
		t.Fatalf("default spec changed the catalog: %v", ids(out))
	}
}

func TestApplyFilterCategory(t *testing.T) {
	out := services.ApplyFilter(catalogFixture(), domain.FilterSpec{Category: "camera"})
	if !sameIDs(ids(out), "a", "b", "d") {
		t.Fatalf("want cameras a,b,d got %v", ids(out))
	}
	// "all" and empty behave identically
	if n := len(services.ApplyFilter(catalogFixture(), domain.FilterSpec{Category: "all"})); n != 5 {
		t.Fatalf("category all: want 5, got %d", n)
	}
	if n := len(services.ApplyFilter(catalogFixture(), domain.FilterSpec{})); n != 5 {
		t.Fatalf("empty category: want 5, got %d", n)
	}
}

func TestApplyFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	out := services.ApplyFilter(catalogFixture(), domain.FilterSpec{Search: "canon"})
	if !sameIDs(ids(out), "a", "c", "d") {
		t.Fatalf("want a,c,d got %v", ids(out))
	}
	out = services.ApplyFilter(catalogFixture(), domain.FilterSpec{Search: "24-70"})
	if !sameIDs(ids(out), "c") {
		t.Fatalf("want c got %v", ids(out))
	}
}

func TestApplyFilterCondition(t *testing.T) {
	out := services.ApplyFilter(catalogFixture(), domain.FilterSpec{Conditions: []string{"Used"}})
	if !sameIDs(ids(out), "d") {
		t.Fatalf("want d got %v", ids(out))
	}
	out = services.ApplyFilter(catalogFixture(), domain.FilterSpec{Conditions: []string{"New", "Used"}})
	if len(out) != 5 {
		t.Fatalf("both conditions should match everything, got %v", ids(out))
	}
}

func TestApplyFilterPriceRange(t *testing.T) {
	out := services.ApplyFilter(catalogFixture(), domain.FilterSpec{PriceMin: 18000000, PriceMax: 65000000})
	if !sameIDs(ids(out), "a", "c", "d") {
		t.Fatalf("want a,c,d got %v", ids(out))
	}
	// PriceMax zero means unbounded
	out = services.ApplyFilter(catalogFixture(), domain.FilterSpec{PriceMin: 80000000})
	if !sameIDs(ids(out), "b") {
		t.Fatalf("want b got %v", ids(out))
	}
}

func TestApplyFilterInStockOnly(t *testing.T) {
	out := services.ApplyFilter(catalogFixture(), domain.FilterSpec{InStock: true})
	for _, p := range out {
		if p.Stock == 0 {
			t.Fatalf("out-of-stock product %s passed in-stock filter", p.ID)
		}
	}
	if !sameIDs(ids(out), "a", "b", "d", "e") {
		t.Fatalf("want a,b,d,e got %v", ids(out))
	}
}

func TestApplyFilterBrandUsesFirstNameToken(t *testing.T) {
	out := services.ApplyFilter(catalogFixture(), domain.FilterSpec{Brands: []string{"Sony", "Manfrotto"}})
	if !sameIDs(ids(out), "b", "e") {
		t.Fatalf("want b,e got %v", ids(out))
	}
}

func TestApplyFilterSorting(t *testing.T) {
	cases := []struct {
		sortBy string
		want   []string
	}{
		{"name", []string{"d", "a", "c", "e", "b"}},
		{"price-low", []string{"e", "d", "c", "a", "b"}},
		{"price-high", []string{"b", "a", "c", "d", "e"}},
		{"stock", []string{"e", "a", "b", "d", "c"}},
		{"rating", []string{"a", "b", "c", "d", "e"}}, // unknown key keeps catalog order
		{"", []string{"a", "b", "c", "d", "e"}},
	}
	for _, tc := range cases {
		out := services.ApplyFilter(catalogFixture(), domain.FilterSpec{SortBy: tc.sortBy})
		if !sameIDs(ids(out), tc.want...) {
			t.Errorf("sortBy=%q: want %v got %v", tc.sortBy, tc.want, ids(out))
		}
	}
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	in := catalogFixture()
	services.ApplyFilter(in, domain.FilterSpec{SortBy: "price-high"})
	if !sameIDs(ids(in), "a", "b", "c", "d", "e") {
		t.Fatalf("input slice was reordered: %v", ids(in))
	}
}
