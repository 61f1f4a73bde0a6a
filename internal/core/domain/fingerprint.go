package domain

import "path/filepath"

// Fingerprint is a content hash rendered as a fixed-width hex string. It
// detects whether a file's text (or the active compiler options) changed
// since a result was cached. The zero value means "never fingerprinted".
type Fingerprint string

// IsZero reports whether the fingerprint has never been computed.
func (f Fingerprint) IsZero() bool {
	return f == ""
}

// Key is the pair of fingerprints a cached result is valid for. A cached
// artifact or diagnostics list may only be reused while both the file's
// content fingerprint and the build's options fingerprint still match.
type Key struct {
	Content Fingerprint `msgpack:"content"`
	Options Fingerprint `msgpack:"options"`
}

// Matches reports whether the key is valid for the given current fingerprints.
func (k Key) Matches(content, options Fingerprint) bool {
	return !k.Content.IsZero() && k.Content == content && k.Options == options
}

// NormalizePath canonicalizes a file path for use as a cache and graph key.
// Separators are normalized to forward slashes so that persisted state is
// portable across hosts.
func NormalizePath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}
