package ports

import "go.trai.ch/strata/internal/core/domain"

// CacheStore is the durable on-disk representation of the compile cache.
// Loading is best effort: a missing, corrupt or version-mismatched store is
// reported as a cold cache, never as a fatal error.
//
//go:generate mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Load reads the persisted cache state from root. It returns nil (cold
	// cache) when no usable state exists or when the persisted options
	// fingerprint does not match the current one.
	Load(root string, options domain.Fingerprint) (*domain.CacheState, error)

	// Flush writes the current cache state to root, replacing any previous
	// checkpoint for the same options fingerprint.
	Flush(root string, options domain.Fingerprint, state *domain.CacheState) error

	// Clean removes all persisted state under root unconditionally.
	Clean(root string) error
}
