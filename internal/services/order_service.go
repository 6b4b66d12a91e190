package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campos/internal/domain"
	"campos/internal/kv"
	"campos/internal/repos"
)

// FinancialTotals is the cumulative revenue counter kept under pos_financial.
// It is a running tally for the profile page; the dashboard recomputes its
// numbers from the transaction history instead.
type FinancialTotals struct {
	Revenue      decimal.Decimal `json:"revenue"`
	Transactions int             `json:"transactions"`
	ItemsSold    int             `json:"itemsSold"`
}

type OrderService struct {
	Cart     *CartService
	Catalog  *CatalogService
	Settings *SettingsService
	Txns     *repos.TransactionRepo
	Finance  kv.Store
}

func NewOrderService(cart *CartService, catalog *CatalogService, settings *SettingsService, txns *repos.TransactionRepo, finance kv.Store) *OrderService {
	return &OrderService{Cart: cart, Catalog: catalog, Settings: settings, Txns: txns, Finance: finance}
}

// Place snapshots the session's order into a completed transaction: totals
// come from the pricing calculator at the configured tax rate, the history
// row is written, the running financial tally is bumped, and the cart is
// cleared. Payment is recorded, never charged.
func (s *OrderService) Place(sessionID, customer, cashier, payment string) (domain.Transaction, error) {
	lines := s.Cart.Lines(sessionID)
	if len(lines) == 0 {
		return domain.Transaction{}, ErrCartEmpty
	}

	totals := ComputeTotals(lines, s.Settings.TaxRate())

	t := domain.Transaction{
		ID:       uuid.NewString(),
		Customer: customer,
		Cashier:  cashier,
		Payment:  payment,
		Status:   domain.TxCompleted,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}

	items := make([]domain.TransactionItem, 0, len(lines))
	units := 0
	for _, l := range lines {
		it := domain.TransactionItem{
			TransactionID: t.ID,
			ProductID:     l.ProductID,
			Name:          l.Name,
			Qty:           l.Quantity,
			Price:         l.Price,
		}
		// Category and condition are snapshotted so later catalog edits do
		// not rewrite history. A product deleted since add keeps its line data.
		if p, err := s.Catalog.Get(l.ProductID); err == nil {
			it.Category = p.Category
			it.Condition = string(p.Condition)
		}
		items = append(items, it)
		units += l.Quantity
	}

	if err := s.Txns.Create(t, items); err != nil {
		return domain.Transaction{}, err
	}

	s.accumulate(totals.Total, 1, units)
	s.Cart.Clear(sessionID)
	return t, nil
}

// Refund flips a transaction to refunded and backs its total out of the
// running tally. Stock is not restocked automatically; that stays a manual
// stock adjustment.
func (s *OrderService) Refund(id string) (domain.Transaction, error) {
	t, err := s.Txns.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, fmt.Errorf("transaction %s: %w", id, repos.ErrNotFound)
		}
		return domain.Transaction{}, err
	}
	if t.Status == domain.TxRefunded {
		return t, fmt.Errorf("transaction %s already refunded", id)
	}
	if err := s.Txns.UpdateStatus(id, domain.TxRefunded); err != nil {
		return domain.Transaction{}, err
	}
	t.Status = domain.TxRefunded

	// The tally moves all three counters together or not at all; reversing
	// revenue without the unit count would leave it internally inconsistent.
	items, err := s.Txns.Items(id)
	if err != nil {
		log.Printf("[orders] refund %s: items read failed, tally not reversed: %v", id, err)
		return t, nil
	}
	units := 0
	for _, it := range items {
		units += it.Qty
	}
	s.accumulate(t.Total.Neg(), -1, -units)
	return t, nil
}

func (s *OrderService) accumulate(total decimal.Decimal, txns, units int) {
	ctx := context.Background()
	var fin FinancialTotals
	if _, err := s.Finance.Get(ctx, kv.KeyFinancial, &fin); err != nil {
		log.Printf("[orders] financial tally read: %v", err)
		return
	}
	fin.Revenue = fin.Revenue.Add(total)
	fin.Transactions += txns
	fin.ItemsSold += units
	if err := s.Finance.Set(ctx, kv.KeyFinancial, fin); err != nil {
		log.Printf("[orders] financial tally write: %v", err)
	}
}

// FinancialSummary returns the running tally, zero-valued when never written.
func (s *OrderService) FinancialSummary() FinancialTotals {
	var fin FinancialTotals
	if _, err := s.Finance.Get(context.Background(), kv.KeyFinancial, &fin); err != nil {
		log.Printf("[orders] financial tally read: %v", err)
	}
	return fin
}
