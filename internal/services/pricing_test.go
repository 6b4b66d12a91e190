package services_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"campos/internal/domain"
	"campos/internal/services"
)

func TestComputeTotalsEmptyCart(t *testing.T) {
	for _, rate := range []string{"0", "0.1", "0.25"} {
		totals := services.ComputeTotals(nil, decimal.RequireFromString(rate))
		if !totals.Subtotal.IsZero() || !totals.Tax.IsZero() || !totals.Total.IsZero() {
			t.Fatalf("rate %s: empty cart must yield all zeros, got %+v", rate, totals)
		}
	}
}

func TestComputeTotalsZeroRate(t *testing.T) {
	lines := []domain.OrderLine{
		{ProductID: "a", Price: 1500, Quantity: 2},
		{ProductID: "b", Price: 500, Quantity: 1},
	}
	totals := services.ComputeTotals(lines, decimal.Zero)
	if !totals.Subtotal.Equal(decimal.NewFromInt(3500)) {
		t.Fatalf("want subtotal 3500, got %s", totals.Subtotal)
	}
	if !totals.Tax.IsZero() {
		t.Fatalf("zero rate must yield zero tax, got %s", totals.Tax)
	}
	if !totals.Total.Equal(totals.Subtotal) {
		t.Fatalf("total must equal subtotal at zero rate, got %s", totals.Total)
	}
}

func TestComputeTotalsTenPercent(t *testing.T) {
	lines := []domain.OrderLine{{ProductID: "b", Price: 2000, Quantity: 2}}
	totals := services.ComputeTotals(lines, decimal.RequireFromString("0.1"))
	if !totals.Subtotal.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("want subtotal 4000, got %s", totals.Subtotal)
	}
	if !totals.Tax.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("want tax 400, got %s", totals.Tax)
	}
	if !totals.Total.Equal(decimal.NewFromInt(4400)) {
		t.Fatalf("want total 4400, got %s", totals.Total)
	}
}

func TestComputeTotalsKeepsFractionsExact(t *testing.T) {
	// 11% of 999 is 109.89; nothing here may round it.
	lines := []domain.OrderLine{{ProductID: "a", Price: 999, Quantity: 1}}
	totals := services.ComputeTotals(lines, decimal.RequireFromString("0.11"))
	if !totals.Tax.Equal(decimal.RequireFromString("109.89")) {
		t.Fatalf("want exact tax 109.89, got %s", totals.Tax)
	}
	if !totals.Total.Equal(decimal.RequireFromString("1108.89")) {
		t.Fatalf("want exact total 1108.89, got %s", totals.Total)
	}
}
