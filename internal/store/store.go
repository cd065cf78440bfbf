// Package store is the persistence bridge between the in-memory session and
// a durable key-value blob store. The full inventory and sale collections
// are serialised as JSON under two fixed keys; on load the store falls back
// to the built-in seed when a key is absent or unparseable.
package store

import (
	"context"

	"github.com/noah-isme/backend-duka/internal/pos"
)

// Store loads and saves the two POS collections.
type Store interface {
	LoadOrSeed(ctx context.Context) ([]pos.Product, []pos.Sale, error)
	SaveInventory(ctx context.Context, products []pos.Product) error
	SaveSales(ctx context.Context, sales []pos.Sale) error
}
