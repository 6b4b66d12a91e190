package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"campos/internal/domain"
	"campos/internal/kv"
)

// CatalogService owns the ordered product list and the category registry.
// Both live in memory and are snapshotted to the key-value store best-effort:
// a missing or failing store degrades to the built-in seed, never crashes.
type CatalogService struct {
	mu         sync.RWMutex
	store      kv.Store
	products   []domain.Product
	index      map[string]int // product id -> position in products
	categories []domain.Category
}

func NewCatalogService(store kv.Store) *CatalogService {
	s := &CatalogService{store: store}
	s.products = seedProducts()
	s.categories = seedCategories()
	s.load()
	s.reindex()
	return s
}

func (s *CatalogService) load() {
	ctx := context.Background()
	var products []domain.Product
	if ok, err := s.store.Get(ctx, kv.KeyProducts, &products); err != nil {
		log.Printf("[catalog] load products: %v (using seed)", err)
	} else if ok && len(products) > 0 {
		s.products = products
	}
	var categories []domain.Category
	if ok, err := s.store.Get(ctx, kv.KeyCategories, &categories); err != nil {
		log.Printf("[catalog] load categories: %v (using seed)", err)
	} else if ok && len(categories) > 0 {
		s.categories = categories
	}
	// Status is derived, never trusted from a snapshot.
	for i := range s.products {
		s.products[i].Status = domain.StatusFor(s.products[i].Stock, s.products[i].MinStock)
	}
}

func (s *CatalogService) reindex() {
	s.index = make(map[string]int, len(s.products))
	for i, p := range s.products {
		s.index[p.ID] = i
	}
}

// persist snapshots the catalog; failures are logged and swallowed because
// the in-memory copy stays authoritative for this session.
func (s *CatalogService) persist() {
	ctx := context.Background()
	if err := s.store.Set(ctx, kv.KeyProducts, s.products); err != nil {
		log.Printf("[catalog] persist products: %v", err)
	}
	if err := s.store.Set(ctx, kv.KeyCategories, s.categories); err != nil {
		log.Printf("[catalog] persist categories: %v", err)
	}
}

// Products returns the catalog in its stable original order.
func (s *CatalogService) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %w", id, ErrProductNotFound)
	}
	return s.products[i], nil
}

// Filtered applies the filter spec to the current catalog.
func (s *CatalogService) Filtered(spec domain.FilterSpec) []domain.Product {
	return ApplyFilter(s.Products(), spec)
}

// replaceProduct swaps the stored product in place and snapshots the catalog.
// Only the stock mutator goes through here.
func (s *CatalogService) replaceProduct(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[p.ID]
	if !ok {
		return fmt.Errorf("%s: %w", p.ID, ErrProductNotFound)
	}
	s.products[i] = p
	s.persist()
	return nil
}

// Categories returns the registry in insertion order.
func (s *CatalogService) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// AddCategory appends a category keyed by a slug of its name.
func (s *CatalogService) AddCategory(name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, fmt.Errorf("category name required")
	}
	id := strings.ToLower(strings.Join(strings.Fields(name), "-"))

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return domain.Category{}, fmt.Errorf("category %s already exists", id)
		}
	}
	cat := domain.Category{ID: id, Name: name}
	s.categories = append(s.categories, cat)
	s.persist()
	return cat, nil
}

// RenameCategory updates the display name, keeping the id and position.
func (s *CatalogService) RenameCategory(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.categories {
		if c.ID == id {
			s.categories[i].Name = name
			s.persist()
			return nil
		}
	}
	return fmt.Errorf("%s: %w", id, ErrCategoryNotFound)
}

// RemoveCategory deletes an unused category, preserving the order of the rest.
func (s *CatalogService) RemoveCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Category == id {
			return fmt.Errorf("%s: %w", id, ErrCategoryInUse)
		}
	}
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			s.persist()
			return nil
		}
	}
	return fmt.Errorf("%s: %w", id, ErrCategoryNotFound)
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "camera", Name: "Camera"},
		{ID: "lens", Name: "Lens"},
		{ID: "accessories", Name: "Accessories"},
		{ID: "tripod", Name: "Tripod"},
		{ID: "flash", Name: "Flash"},
		{ID: "memory", Name: "Memory Card"},
	}
}

func seedProducts() []domain.Product {
	seed := []domain.Product{
		{ID: "cam-eos-r5", Name: "Canon EOS R5", Category: "camera", Condition: domain.ConditionNew, Price: 65000000, Stock: 5, MinStock: 2, Rating: 4.8},
		{ID: "cam-fx3", Name: "Sony FX3", Category: "camera", Condition: domain.ConditionNew, Price: 85000000, Stock: 3, MinStock: 2, Rating: 4.9},
		{ID: "lens-rf2470", Name: "Canon RF 24-70mm f/2.8L", Category: "lens", Condition: domain.ConditionNew, Price: 22000000, Stock: 8, MinStock: 1, Rating: 4.7},
		{ID: "cam-5d4-used", Name: "Canon 5D Mark IV", Category: "camera", Condition: domain.ConditionUsed, Price: 18000000, Stock: 2, MinStock: 1, Rating: 4.5},
		{ID: "acc-manfrotto", Name: "Manfrotto Befree Tripod", Category: "tripod", Condition: domain.ConditionNew, Price: 3500000, Stock: 12, MinStock: 3, Rating: 4.6},
		{ID: "lens-sony85", Name: "Sony 85mm f/1.4 GM", Category: "lens", Condition: domain.ConditionNew, Price: 21000000, Stock: 4, MinStock: 1, Rating: 4.9},
		{ID: "flash-600ex", Name: "Canon Speedlite 600EX II-RT", Category: "flash", Condition: domain.ConditionNew, Price: 7500000, Stock: 0, MinStock: 1, Rating: 4.4},
		{ID: "mem-sd128", Name: "SanDisk Extreme Pro 128GB", Category: "memory", Condition: domain.ConditionNew, Price: 1000000, Stock: 25, MinStock: 5, Rating: 4.8},
	}
	for i := range seed {
		seed[i].Status = domain.StatusFor(seed[i].Stock, seed[i].MinStock)
	}
	return seed
}
