package buildcache

import "go.trai.ch/strata/internal/core/domain"

// SetSnapshot records the latest known text for a path and returns the
// snapshot to key subsequent cache queries with. Resubmitting identical text
// is a no-op: the fingerprint is unchanged and nothing is invalidated.
//
// When the content did change, the semantic diagnostics of every transitive
// dependent are proactively marked stale, so the round walker can enumerate
// exactly the files needing re-diagnosis without touching their own caches.
func (c *Cache) SetSnapshot(path string, text []byte) domain.Snapshot {
	normalized := domain.NormalizePath(path)
	key := domain.NewInternedString(normalized)
	fingerprint := c.hasher.ContentFingerprint(text)

	c.mu.Lock()
	entry := c.entryLocked(key)
	if entry.Content == fingerprint {
		c.mu.Unlock()
		return domain.Snapshot{Path: key, Content: fingerprint}
	}
	entry.Content = fingerprint
	c.changed[key] = struct{}{}
	c.mu.Unlock()

	c.markDependentsStale(normalized)

	return domain.Snapshot{Path: key, Content: fingerprint}
}

// SetDependency records that dependent imports dependency, creating
// placeholder entries for paths that have never been snapshotted. Redundant
// calls are absorbed by the graph.
func (c *Cache) SetDependency(dependency, dependent string) {
	dep := domain.NormalizePath(dependency)
	by := domain.NormalizePath(dependent)

	c.mu.Lock()
	c.entryLocked(domain.NewInternedString(dep))
	c.entryLocked(domain.NewInternedString(by))
	c.mu.Unlock()

	c.graph.SetDependency(dep, by)
}

// Snapshot returns the latest recorded snapshot for a path, if any.
func (c *Cache) Snapshot(path string) (domain.Snapshot, bool) {
	key := domain.NewInternedString(domain.NormalizePath(path))

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || entry.Content.IsZero() {
		return domain.Snapshot{}, false
	}
	return domain.Snapshot{Path: key, Content: entry.Content}, true
}

// markDependentsStale raises the semantic staleness flag on every transitive
// dependent of path. Cycle safety comes from the graph traversal itself.
func (c *Cache) markDependentsStale(path string) {
	dependents := c.graph.AllDependents(path)
	if len(dependents) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, dependent := range dependents {
		entry := c.entryLocked(domain.NewInternedString(dependent))
		entry.SemanticStale = true
	}
}
