package ports

import "go.trai.ch/strata/internal/core/domain"

// ModuleResolver resolves an import specifier to a file path. The cache calls
// it to discover new dependency edges; it never implements resolution itself.
//
//go:generate mockgen -source=module_resolver.go -destination=mocks/mock_module_resolver.go -package=mocks
type ModuleResolver interface {
	// Resolve maps a specifier as written in importer's source to an absolute
	// file path. ok is false when the specifier cannot be resolved; an
	// unresolved import is not an error for the cache.
	Resolve(specifier, importer string, options domain.CompilerOptions) (path string, ok bool)
}
