package distcache

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/antcolony/aco"
)

// Oracle puts a Store in front of a distance function.
//
// The colony already memoises within a run, so the Oracle only sees each
// pair once per run; its job is to skip the underlying function on later
// runs. Store failures never fail the run: they are logged and the
// underlying function is used instead.
type Oracle[P any] struct {
	store     Store
	dist      aco.DistanceFunc[P]
	key       func(P) string
	namespace string
	ttl       time.Duration
	log       *log.Logger

	hits, misses, storeErrors atomic.Int64
}

// OracleOption customises an Oracle.
type OracleOption func(*oracleConfig)

type oracleConfig struct {
	namespace string
	ttl       time.Duration
	logger    *log.Logger
}

// WithNamespace separates keys of different distance functions sharing a store.
func WithNamespace(ns string) OracleOption {
	return func(c *oracleConfig) { c.namespace = ns }
}

// WithTTL sets the expiry of newly stored distances.
func WithTTL(ttl time.Duration) OracleOption {
	return func(c *oracleConfig) { c.ttl = ttl }
}

// WithLogger routes store warnings to l.
func WithLogger(l *log.Logger) OracleOption {
	return func(c *oracleConfig) { c.logger = l }
}

// NewOracle wraps dist with store; key must identify a payload uniquely
// (for points, their formatted coordinates).
func NewOracle[P any](store Store, dist aco.DistanceFunc[P], key func(P) string, opts ...OracleOption) (*Oracle[P], error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if dist == nil {
		return nil, aco.ErrNilDistance
	}
	cfg := oracleConfig{namespace: "default"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	return &Oracle[P]{
		store:     store,
		dist:      dist,
		key:       key,
		namespace: cfg.namespace,
		ttl:       cfg.ttl,
		log:       cfg.logger,
	}, nil
}

// Func returns a DistanceFunc that consults the store under ctx.
func (o *Oracle[P]) Func(ctx context.Context) aco.DistanceFunc[P] {
	return func(a, b P) float64 {
		return o.Distance(ctx, a, b)
	}
}

// Distance returns the cached value for {a, b}, computing and storing it on a miss.
func (o *Oracle[P]) Distance(ctx context.Context, a, b P) float64 {
	k := PairKey(o.namespace, o.key(a), o.key(b))

	data, ok, err := o.store.Get(ctx, k)
	if err != nil {
		o.storeErrors.Add(1)
		o.log.Warn("distance cache read failed", "err", err)
	}
	if ok {
		d, err := decodeDistance(data)
		if err == nil {
			o.hits.Add(1)
			return d
		}
		o.log.Warn("dropping cached distance", "err", err)
		_ = o.store.Delete(ctx, k)
	}

	o.misses.Add(1)
	d := o.dist(a, b)
	// Invalid values are reported by the colony; never persist them.
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return d
	}
	if err := o.store.Set(ctx, k, encodeDistance(d), o.ttl); err != nil {
		o.storeErrors.Add(1)
		o.log.Warn("distance cache write failed", "err", err)
	}

	return d
}

// Stats reports cache hits, misses and store failures so far.
func (o *Oracle[P]) Stats() (hits, misses, storeErrors int64) {
	return o.hits.Load(), o.misses.Load(), o.storeErrors.Load()
}

func encodeDistance(d float64) []byte {
	return strconv.AppendFloat(nil, d, 'g', -1, 64)
}

func decodeDistance(data []byte) (float64, error) {
	d, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0, fmt.Errorf("%q: %w", data, ErrCorruptEntry)
	}

	return d, nil
}
