package services

import (
	"sort"
	"strings"

	"campos/internal/domain"
)

// ApplyFilter returns the subset of products matching every predicate in the
// spec, in catalog order unless a known sort key is requested. Pure: the
// input slice is never modified.
func ApplyFilter(products []domain.Product, spec domain.FilterSpec) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(spec.Search))
	for _, p := range products {
		if !matchesCategory(p, spec.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if len(spec.Conditions) > 0 && !member(spec.Conditions, p.Condition.Display()) {
			continue
		}
		if p.Price < spec.PriceMin {
			continue
		}
		if spec.PriceMax > 0 && p.Price > spec.PriceMax {
			continue
		}
		if spec.InStock && p.Stock == 0 {
			continue
		}
		if len(spec.Brands) > 0 && !member(spec.Brands, p.Brand()) {
			continue
		}
		out = append(out, p)
	}

	// Stable sorts keep catalog order for ties; unknown keys keep it outright.
	switch spec.SortBy {
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case "price-low":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-high":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "stock":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Stock > out[j].Stock })
	}
	return out
}

func matchesCategory(p domain.Product, category string) bool {
	return category == "" || category == "all" || p.Category == category
}

func member(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
