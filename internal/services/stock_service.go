package services

import "campos/internal/domain"

// AdjustStock applies a bounded delta: stock clamps at zero instead of going
// negative, and the status is re-derived afterwards so it can never drift
// from (stock, minStock). Pure.
func AdjustStock(p domain.Product, delta int) domain.Product {
	stock := p.Stock + delta
	if stock < 0 {
		stock = 0
	}
	p.Stock = stock
	p.Status = domain.StatusFor(p.Stock, p.MinStock)
	return p
}

// StockService is the only writer of Product.stock: it applies adjustments
// to the catalog and snapshots the result.
type StockService struct {
	Catalog *CatalogService
}

func NewStockService(catalog *CatalogService) *StockService {
	return &StockService{Catalog: catalog}
}

// Adjust increments or decrements a product's stock, clamped at zero.
func (s *StockService) Adjust(productID string, delta int) (domain.Product, error) {
	p, err := s.Catalog.Get(productID)
	if err != nil {
		return domain.Product{}, err
	}
	p = AdjustStock(p, delta)
	if err := s.Catalog.replaceProduct(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// SetMinStock changes the low-stock threshold and re-derives the status.
func (s *StockService) SetMinStock(productID string, minStock int) (domain.Product, error) {
	if minStock < 0 {
		minStock = 0
	}
	p, err := s.Catalog.Get(productID)
	if err != nil {
		return domain.Product{}, err
	}
	p.MinStock = minStock
	p.Status = domain.StatusFor(p.Stock, p.MinStock)
	if err := s.Catalog.replaceProduct(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
