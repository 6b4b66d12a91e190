// Package kv is the key-value persistence boundary: the catalog snapshot,
// category registry, settings and cumulative financial totals are stored as
// JSON values under well-known keys. Callers treat every failure here as
// recoverable and degrade to in-memory state.
package kv

import (
	"context"
	"errors"
)

// Keys used by the application.
const (
	KeyProducts   = "pos_products"
	KeyCategories = "pos_categories"
	KeySettings   = "pos_settings"
	KeyFinancial  = "pos_financial"
)

// ErrUnavailable reports that the backing store cannot be reached. It is
// never fatal; callers fall back to defaults or in-memory copies.
var ErrUnavailable = errors.New("kv: store unavailable")

// Store reads and writes JSON-encoded values by key.
type Store interface {
	// Get unmarshals the value at key into out and reports whether the key
	// existed. On a miss out is left untouched so callers keep their default.
	Get(ctx context.Context, key string, out any) (bool, error)
	// Set stores v at key, replacing any previous value.
	Set(ctx context.Context, key string, v any) error
}
