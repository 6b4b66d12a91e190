package services

import (
	"fmt"
	"sync"

	"campos/internal/domain"
)

// CartService keeps one in-progress order per session. Lines merge by
// product identity: at every observable point a cart holds at most one line
// per product and no line with a non-positive quantity. Adding to a cart
// never reserves or decrements inventory.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]domain.OrderLine
}

func NewCartService() *CartService {
	return &CartService{carts: map[string][]domain.OrderLine{}}
}

// AddItem merges the product into the session's order: an existing line
// gains one unit, otherwise a new line with quantity 1 is appended.
// Out-of-stock products are rejected and the cart is left untouched.
func (s *CartService) AddItem(sessionID string, p domain.Product) error {
	if p.Stock == 0 {
		return fmt.Errorf("%s: %w", p.ID, ErrOutOfStock)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ProductID == p.ID {
			lines[i].Quantity++
			return nil
		}
	}
	s.carts[sessionID] = append(lines, domain.OrderLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	})
	return nil
}

// SetQuantity sets a line's quantity to exactly qty (absolute, not
// additive). A qty of zero or below removes the line and is a no-op when
// the line is absent; a positive qty for an absent line is a caller error —
// removed lines are never resurrected here, only AddItem creates lines.
func (s *CartService) SetQuantity(sessionID, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		if qty <= 0 {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i].Quantity = qty
		}
		return nil
	}
	if qty <= 0 {
		return nil
	}
	return fmt.Errorf("%s: %w", productID, ErrLineNotFound)
}

// Clear empties the session's order.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// LineCount is the number of distinct lines, not total units.
func (s *CartService) LineCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts[sessionID])
}

// Lines returns a copy of the session's order lines in insertion order.
func (s *CartService) Lines(sessionID string) []domain.OrderLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sessionID]
	out := make([]domain.OrderLine, len(lines))
	copy(out, lines)
	return out
}
