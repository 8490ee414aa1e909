package distcache

import "errors"

// Sentinel errors.
var (
	// ErrUnknownBackend is returned by Open for a backend name it does not know.
	ErrUnknownBackend = errors.New("distcache: unknown backend")

	// ErrCorruptEntry is returned when a cached value cannot be decoded.
	ErrCorruptEntry = errors.New("distcache: corrupt entry")

	// ErrNilStore is returned when an Oracle is built without a store.
	ErrNilStore = errors.New("distcache: store is nil")
)
