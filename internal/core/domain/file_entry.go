// Package domain contains the core value types for the strata compile cache.
package domain

// DiagnosticSet is a cached diagnostics list together with the fingerprint
// pair it was computed at.
type DiagnosticSet struct {
	Key   Key          `msgpack:"key"`
	Items []Diagnostic `msgpack:"items"`
}

// FileEntry is the cache record for one tracked file. Entries are created the
// first time a path is observed, either through a snapshot submission or
// through dependency resolution (in which case the content fingerprint stays
// zero until the file is snapshotted).
//
// The compiled artifact and the syntactic diagnostics are valid purely as a
// function of the entry's own fingerprint pair. Semantic diagnostics are
// additionally gated by SemanticStale, which is raised whenever any file
// reachable through the dependency graph changes content.
type FileEntry struct {
	Path    string      `msgpack:"path"`
	Content Fingerprint `msgpack:"content"`

	Artifact    *CompiledArtifact `msgpack:"artifact,omitempty"`
	ArtifactKey Key               `msgpack:"artifact_key"`

	Syntactic *DiagnosticSet `msgpack:"syntactic,omitempty"`
	Semantic  *DiagnosticSet `msgpack:"semantic,omitempty"`

	SemanticStale bool `msgpack:"semantic_stale"`
}

// Edge is one directed "dependent imports dependency" relation, persisted so
// that staleness propagation survives process restarts.
type Edge struct {
	Dependency string `msgpack:"dependency"`
	Dependent  string `msgpack:"dependent"`
}

// CacheState is the full cache content exchanged with the persistence layer.
type CacheState struct {
	Entries map[string]*FileEntry `msgpack:"entries"`
	Edges   []Edge                `msgpack:"edges"`
}

// NewCacheState creates an empty cache state.
func NewCacheState() *CacheState {
	return &CacheState{Entries: make(map[string]*FileEntry)}
}
