package domain

// Snapshot identifies one observed version of a file's text. It is returned
// by the snapshot store and passed back into cache queries, so a query is
// always answered relative to a specific content version rather than
// whatever happens to be current.
type Snapshot struct {
	Path    InternedString
	Content Fingerprint
}
