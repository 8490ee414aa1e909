// Package distcache persists distance-oracle results across runs.
//
// A colony memoises distances for the lifetime of one run. When the oracle
// is expensive (a routing API, a database query) the same pairs are worth
// keeping between runs too. Oracle wraps a distance function with a Store:
//
//	store, _ := distcache.NewFileStore(dir)
//	o := distcache.NewOracle(store, geo.Haversine, pointKey)
//	problem.Distance = o.Func(ctx)
//
// Stores hold raw bytes keyed by string, the same contract for every
// backend: NullStore (disabled), FileStore (one JSON file per entry) and
// RedisStore (a shared Redis instance).
package distcache

import (
	"context"
	"time"
)

// Store is a byte-oriented key/value cache with optional expiry.
type Store interface {
	// Get returns the data and true on a hit; a miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data; ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// NullStore never stores anything. Every Get is a miss.
type NullStore struct{}

// NewNullStore returns a disabled store.
func NewNullStore() Store { return &NullStore{} }

// Get always misses.
func (s *NullStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set does nothing.
func (s *NullStore) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete does nothing.
func (s *NullStore) Delete(context.Context, string) error { return nil }

// Close does nothing.
func (s *NullStore) Close() error { return nil }

var _ Store = (*NullStore)(nil)
