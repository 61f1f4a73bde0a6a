// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/strata/internal/core/domain"
)

// CompilerService is the external incremental compiler front-end the cache
// delegates to on a miss. Implementations must be deterministic for a given
// (snapshot, options) pair.
//
//go:generate mockgen -source=compiler_service.go -destination=mocks/mock_compiler_service.go -package=mocks
type CompilerService interface {
	// Emit compiles a single file and returns its output, or a skipped result
	// when a fatal error prevented output from being produced.
	Emit(ctx context.Context, path string) (domain.EmitResult, error)

	// SyntacticDiagnostics returns parse-level diagnostics for a file. They
	// are a pure function of the file's own text.
	SyntacticDiagnostics(ctx context.Context, path string) ([]domain.Diagnostic, error)

	// SemanticDiagnostics returns type-level diagnostics for a file. They
	// depend on everything the file transitively imports.
	SemanticDiagnostics(ctx context.Context, path string) ([]domain.Diagnostic, error)
}
