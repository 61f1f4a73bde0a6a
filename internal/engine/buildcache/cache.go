// Package buildcache implements the incremental compile cache that decides,
// per file and per round, whether previously computed output and diagnostics
// can be reused.
package buildcache

import (
	"context"
	"sync"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/depgraph"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// EmitFunc computes an emit result on a cache miss, typically by delegating
// to the external compiler service.
type EmitFunc func(ctx context.Context) (domain.EmitResult, error)

// DiagnosticsFunc computes a diagnostics list on a cache miss.
type DiagnosticsFunc func(ctx context.Context) ([]domain.Diagnostic, error)

// Cache tracks file snapshots, compiled artifacts and diagnostics across
// build rounds. Compiled output and syntactic diagnostics are reused purely
// on a fingerprint match; semantic diagnostics are additionally invalidated
// when anything a file transitively imports changes content.
//
// The host bundler normally drives the cache sequentially within a round.
// Concurrent per-file hooks are still safe: singleflight guarantees at most
// one in-flight computation per (path, fingerprint pair).
type Cache struct {
	hasher ports.Hasher
	store  ports.CacheStore
	logger ports.Logger
	graph  *depgraph.Graph

	root    string
	options domain.Fingerprint

	mu      sync.RWMutex
	entries map[domain.InternedString]*domain.FileEntry
	changed map[domain.InternedString]struct{}
	round   int

	emitGroup singleflight.Group
	diagGroup singleflight.Group
}

// New constructs a cache for the given cache root and options fingerprint
// and loads any persisted state. A missing or unusable store is a cold
// cache, not an error.
func New(
	hasher ports.Hasher,
	store ports.CacheStore,
	logger ports.Logger,
	root string,
	options domain.Fingerprint,
) *Cache {
	c := &Cache{
		hasher:  hasher,
		store:   store,
		logger:  logger,
		graph:   depgraph.New(),
		root:    root,
		options: options,
		entries: make(map[domain.InternedString]*domain.FileEntry),
		changed: make(map[domain.InternedString]struct{}),
	}

	state, err := store.Load(root, options)
	if err != nil {
		logger.Debug("cache store unusable, starting cold", "error", err.Error())
		return c
	}
	if state == nil {
		return c
	}

	for path, entry := range state.Entries {
		c.entries[domain.NewInternedString(path)] = entry
	}
	c.graph.Restore(state.Edges)
	return c
}

// Graph exposes the dependency graph for queries.
func (c *Cache) Graph() *depgraph.Graph {
	return c.graph
}

// OptionsFingerprint returns the options fingerprint the cache was built for.
func (c *Cache) OptionsFingerprint() domain.Fingerprint {
	return c.options
}

// entryLocked returns the entry for key, creating a placeholder if needed.
// Callers must hold the write lock.
func (c *Cache) entryLocked(key domain.InternedString) *domain.FileEntry {
	entry, ok := c.entries[key]
	if !ok {
		entry = &domain.FileEntry{Path: key.String()}
		c.entries[key] = entry
	}
	return entry
}

// GetCompiled returns the cached artifact for the snapshot, or invokes
// compute on a miss. A skipped emit is returned to the caller but never
// cached, so the next round retries compilation instead of reusing a broken
// result.
func (c *Cache) GetCompiled(ctx context.Context, snap domain.Snapshot, compute EmitFunc) (domain.EmitResult, error) {
	key := domain.Key{Content: snap.Content, Options: c.options}

	c.mu.RLock()
	entry, ok := c.entries[snap.Path]
	if ok && entry.Artifact != nil && entry.ArtifactKey.Matches(key.Content, key.Options) {
		artifact := *entry.Artifact
		c.mu.RUnlock()
		return domain.EmitSuccess(artifact), nil
	}
	c.mu.RUnlock()

	flightKey := snap.Path.String() + "\x00" + string(key.Content) + "\x00" + string(key.Options)
	v, err, _ := c.emitGroup.Do(flightKey, func() (any, error) {
		// Re-check: another caller may have completed between the read
		// lock release and the singleflight admission.
		c.mu.RLock()
		if entry, ok := c.entries[snap.Path]; ok && entry.Artifact != nil && entry.ArtifactKey.Matches(key.Content, key.Options) {
			artifact := *entry.Artifact
			c.mu.RUnlock()
			return domain.EmitSuccess(artifact), nil
		}
		c.mu.RUnlock()

		result, err := compute(ctx)
		if err != nil {
			return domain.EmitResult{}, zerr.With(zerr.Wrap(err, domain.ErrEmitCompute.Error()), "path", snap.Path.String())
		}
		if result.Skipped() {
			return result, nil
		}

		artifact, _ := result.Artifact()
		c.mu.Lock()
		e := c.entryLocked(snap.Path)
		e.Artifact = &artifact
		e.ArtifactKey = key
		c.mu.Unlock()
		return result, nil
	})
	if err != nil {
		return domain.EmitResult{}, err
	}
	return v.(domain.EmitResult), nil
}

// GetSyntacticDiagnostics returns cached parse diagnostics for the snapshot,
// recomputing only when the file's own fingerprint pair changed.
func (c *Cache) GetSyntacticDiagnostics(ctx context.Context, snap domain.Snapshot, compute DiagnosticsFunc) ([]domain.Diagnostic, error) {
	return c.getDiagnostics(ctx, snap, compute, false)
}

// GetSemanticDiagnostics returns cached type diagnostics for the snapshot.
// Unlike syntactic diagnostics, a cached list is also discarded when any
// transitively imported file changed content since it was computed, even if
// the file's own text is byte-identical.
func (c *Cache) GetSemanticDiagnostics(ctx context.Context, snap domain.Snapshot, compute DiagnosticsFunc) ([]domain.Diagnostic, error) {
	return c.getDiagnostics(ctx, snap, compute, true)
}

func (c *Cache) getDiagnostics(ctx context.Context, snap domain.Snapshot, compute DiagnosticsFunc, semantic bool) ([]domain.Diagnostic, error) {
	key := domain.Key{Content: snap.Content, Options: c.options}

	c.mu.RLock()
	if entry, ok := c.entries[snap.Path]; ok {
		if cached := cachedDiagnostics(entry, key, semantic); cached != nil {
			items := append([]domain.Diagnostic(nil), cached.Items...)
			c.mu.RUnlock()
			return items, nil
		}
	}
	c.mu.RUnlock()

	kind := "syn"
	if semantic {
		kind = "sem"
	}
	flightKey := kind + "\x00" + snap.Path.String() + "\x00" + string(key.Content) + "\x00" + string(key.Options)
	v, err, _ := c.diagGroup.Do(flightKey, func() (any, error) {
		c.mu.RLock()
		if entry, ok := c.entries[snap.Path]; ok {
			if cached := cachedDiagnostics(entry, key, semantic); cached != nil {
				items := append([]domain.Diagnostic(nil), cached.Items...)
				c.mu.RUnlock()
				return items, nil
			}
		}
		c.mu.RUnlock()

		items, err := compute(ctx)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDiagnosticsCompute.Error()), "path", snap.Path.String())
		}

		set := &domain.DiagnosticSet{Key: key, Items: items}
		c.mu.Lock()
		e := c.entryLocked(snap.Path)
		if semantic {
			e.Semantic = set
			e.SemanticStale = false
		} else {
			e.Syntactic = set
		}
		c.mu.Unlock()
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return v.([]domain.Diagnostic), nil
}

// cachedDiagnostics returns the reusable diagnostics set for the key, or nil
// on a miss. Callers must hold at least the read lock.
func cachedDiagnostics(entry *domain.FileEntry, key domain.Key, semantic bool) *domain.DiagnosticSet {
	if semantic {
		if entry.SemanticStale || entry.Semantic == nil {
			return nil
		}
		if !entry.Semantic.Key.Matches(key.Content, key.Options) {
			return nil
		}
		return entry.Semantic
	}
	if entry.Syntactic == nil || !entry.Syntactic.Key.Matches(key.Content, key.Options) {
		return nil
	}
	return entry.Syntactic
}

// Done flushes the in-memory state to the persistent store. It is invoked at
// the end of a round; a flush failure is logged and reported but leaves the
// in-memory cache intact.
func (c *Cache) Done(_ context.Context) error {
	c.mu.RLock()
	state := domain.NewCacheState()
	for key, entry := range c.entries {
		state.Entries[key.String()] = entry
	}
	c.mu.RUnlock()
	state.Edges = c.graph.Edges()

	if err := c.store.Flush(c.root, c.options, state); err != nil {
		c.logger.Error(zerr.Wrap(err, "failed to persist compile cache"))
		return err
	}
	return nil
}

// Clean discards all in-memory and persisted cache state unconditionally.
func (c *Cache) Clean() error {
	c.mu.Lock()
	c.entries = make(map[domain.InternedString]*domain.FileEntry)
	c.changed = make(map[domain.InternedString]struct{})
	c.mu.Unlock()
	c.graph.Reset()

	return c.store.Clean(c.root)
}

// Stats summarizes the tracked state, for the CLI.
type Stats struct {
	Files     int
	Artifacts int
	Edges     int
}

// CurrentStats returns counts over the current in-memory state.
func (c *Cache) CurrentStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Stats{Files: len(c.entries), Edges: c.graph.EdgeCount()}
	for _, entry := range c.entries {
		if entry.Artifact != nil {
			s.Artifacts++
		}
	}
	return s
}
