package ports

import "go.trai.ch/strata/internal/core/domain"

// Hasher computes the fingerprints that gate cache reuse.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ContentFingerprint hashes a file's text.
	ContentFingerprint(text []byte) domain.Fingerprint

	// OptionsFingerprint hashes the effective compiler options in a
	// deterministic order.
	OptionsFingerprint(options domain.CompilerOptions) domain.Fingerprint
}
