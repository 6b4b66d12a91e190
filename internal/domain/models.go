package domain

import "strings"

// Condition is the sale condition of a product.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// Display maps the stored condition to its user-facing label.
func (c Condition) Display() string {
	switch c {
	case ConditionNew:
		return "New"
	case ConditionUsed:
		return "Used"
	}
	return string(c)
}

// StockStatus is derived from (stock, minStock) and never stored
// independently of them.
type StockStatus string

const (
	StockGood StockStatus = "good"
	StockLow  StockStatus = "low"
	StockOut  StockStatus = "out"
)

// StatusFor derives the stock status: zero is out, at or below the minimum
// threshold is low, anything above is good.
func StatusFor(stock, minStock int) StockStatus {
	switch {
	case stock == 0:
		return StockOut
	case stock <= minStock:
		return StockLow
	}
	return StockGood
}

// Product is a sellable catalog entry. Price is in the smallest currency
// unit. Stock is never negative; adjustments clamp at zero.
type Product struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	Condition Condition   `json:"condition"`
	Price     int64       `json:"price"`
	Stock     int         `json:"stock"`
	MinStock  int         `json:"minStock"`
	Status    StockStatus `json:"status"`
	Rating    float64     `json:"rating"`
}

// Brand is the first whitespace-delimited token of the product name.
func (p Product) Brand() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Category is one entry of the ordered category registry.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderLine is one product's presence in the in-progress order. Quantity is
// always positive; a line driven to zero is removed, not kept.
type OrderLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// FilterSpec captures the active catalog filter criteria. It is a closed
// value object: replaced wholesale on each change, never patched field by
// field from outside its owner.
type FilterSpec struct {
	Category   string   `json:"category"`   // "" or "all" matches everything
	Search     string   `json:"search"`     // case-insensitive substring on name
	Conditions []string `json:"conditions"` // display labels: "New", "Used"
	PriceMin   int64    `json:"priceMin"`
	PriceMax   int64    `json:"priceMax"` // 0 means unbounded
	Brands     []string `json:"brands"`
	InStock    bool     `json:"inStock"`
	SortBy     string   `json:"sortBy"` // name | price-low | price-high | stock
}

// DefaultFilterSpec matches the full catalog in its original order.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{Category: "all"}
}
