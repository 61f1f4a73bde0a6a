// Package fs provides content fingerprinting for the compile cache.
package fs

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash fingerprints over file text and compiler options.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ContentFingerprint hashes a file's text content.
func (h *Hasher) ContentFingerprint(text []byte) domain.Fingerprint {
	return domain.Fingerprint(fmt.Sprintf("%016x", xxhash.Sum64(text)))
}

// OptionsFingerprint hashes the effective compiler options. Keys are sorted
// so the fingerprint is stable regardless of map iteration order.
func (h *Hasher) OptionsFingerprint(options domain.CompilerOptions) domain.Fingerprint {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	hasher := xxhash.New()
	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(options[k])
		_, _ = hasher.Write([]byte{0})
	}

	return domain.Fingerprint(fmt.Sprintf("%016x", hasher.Sum64()))
}
