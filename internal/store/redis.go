package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-duka/internal/pos"
)

const (
	// DefaultInventoryKey holds the serialised inventory collection.
	DefaultInventoryKey = "duka:inventory"
	// DefaultSalesKey holds the serialised sale ledger.
	DefaultSalesKey = "duka:sales"
)

// RedisStore persists the POS collections as JSON blobs in redis.
type RedisStore struct {
	Client       *redis.Client
	Seed         func() []pos.Product
	Logger       zerolog.Logger
	InventoryKey string
	SalesKey     string
}

func (s *RedisStore) inventoryKey() string {
	if s.InventoryKey == "" {
		return DefaultInventoryKey
	}
	return s.InventoryKey
}

func (s *RedisStore) salesKey() string {
	if s.SalesKey == "" {
		return DefaultSalesKey
	}
	return s.SalesKey
}

// LoadOrSeed reads both collections. A missing or unparseable inventory blob
// falls back to the seed; a missing or unparseable sales blob falls back to
// an empty ledger. Transport errors are returned.
func (s *RedisStore) LoadOrSeed(ctx context.Context) ([]pos.Product, []pos.Sale, error) {
	if s == nil || s.Client == nil {
		return nil, nil, errors.New("redis store not configured")
	}

	inventory := s.seedInventory()
	data, err := s.Client.Get(ctx, s.inventoryKey()).Bytes()
	switch {
	case err == nil:
		var loaded []pos.Product
		if jsonErr := json.Unmarshal(data, &loaded); jsonErr != nil {
			s.Logger.Warn().Err(jsonErr).Str("key", s.inventoryKey()).Msg("unparseable inventory blob, using seed")
		} else {
			inventory = loaded
		}
	case errors.Is(err, redis.Nil):
		// first run, keep the seed
	default:
		return nil, nil, err
	}

	var sales []pos.Sale
	data, err = s.Client.Get(ctx, s.salesKey()).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, &sales); jsonErr != nil {
			s.Logger.Warn().Err(jsonErr).Str("key", s.salesKey()).Msg("unparseable sales blob, starting empty")
			sales = nil
		}
	case errors.Is(err, redis.Nil):
	default:
		return nil, nil, err
	}

	return inventory, sales, nil
}

// SaveInventory writes the full inventory collection to its fixed key.
func (s *RedisStore) SaveInventory(ctx context.Context, products []pos.Product) error {
	return s.setJSON(ctx, s.inventoryKey(), products)
}

// SaveSales writes the full sale ledger to its fixed key.
func (s *RedisStore) SaveSales(ctx context.Context, sales []pos.Sale) error {
	return s.setJSON(ctx, s.salesKey(), sales)
}

func (s *RedisStore) setJSON(ctx context.Context, key string, v any) error {
	if s == nil || s.Client == nil {
		return errors.New("redis store not configured")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, data, 0).Err()
}

func (s *RedisStore) seedInventory() []pos.Product {
	if s.Seed == nil {
		return nil
	}
	return s.Seed()
}
