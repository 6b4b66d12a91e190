package services

import (
	"github.com/shopspring/decimal"

	"campos/internal/domain"
)

// Totals is the derived pricing of an order. Decimal keeps tax exact — no
// rounding happens here; rounding for display is the caller's concern.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives subtotal, tax and total from the order lines and a
// dimensionless tax rate (0.10 for 10%). Pure and O(n); an empty order is a
// valid input and yields all zeros.
func ComputeTotals(lines []domain.OrderLine, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		line := decimal.NewFromInt(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
		subtotal = subtotal.Add(line)
	}
	tax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
