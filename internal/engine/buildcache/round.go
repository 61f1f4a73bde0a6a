package buildcache

import (
	"sort"

	"go.trai.ch/strata/internal/core/domain"
)

// BeginRound starts the next build round and returns its number. The first
// round is the initial build; subsequent rounds are watch-mode rebuilds. The
// changed-this-round set is reset so the walker only considers edits made
// within the new round.
func (c *Cache) BeginRound() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.round++
	c.changed = make(map[domain.InternedString]struct{})
	return c.round
}

// Round returns the current round number. Zero means no round has started.
func (c *Cache) Round() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.round
}

// WalkTree visits every tracked file whose diagnostics need refreshing this
// round: files marked semantically stale by a dependency edit, and files
// whose own content changed. It runs after the bundler's per-file hooks,
// which only cover resubmitted files, never the dependents of an edit.
//
// During the initial build the walk visits nothing; diagnostics for round
// one are reported through the per-file hooks themselves.
func (c *Cache) WalkTree(visit func(path string) error) error {
	c.mu.RLock()
	if c.round <= 1 {
		c.mu.RUnlock()
		return nil
	}

	include := make([]string, 0, len(c.changed))
	for key, entry := range c.entries {
		if c.includeInWalk(key, entry) {
			include = append(include, key.String())
		}
	}
	c.mu.RUnlock()

	// Deterministic visit order keeps diagnostics output stable across runs.
	sort.Strings(include)

	for _, path := range include {
		if err := visit(path); err != nil {
			return err
		}
	}
	return nil
}

// includeInWalk decides whether a file passes the walk inclusion filter.
// Callers must hold at least the read lock.
func (c *Cache) includeInWalk(key domain.InternedString, entry *domain.FileEntry) bool {
	if entry.SemanticStale {
		return true
	}
	if _, ok := c.changed[key]; ok {
		return true
	}
	// Content drifted from the cached semantic result without a resubmission
	// this round (e.g. restored from a stale persisted checkpoint).
	if entry.Semantic != nil && !entry.Content.IsZero() &&
		!entry.Semantic.Key.Matches(entry.Content, c.options) {
		return true
	}
	return false
}
