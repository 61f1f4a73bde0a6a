// Package app implements the application layer for strata.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/buildcache"
	"go.trai.ch/zerr"
)

// Session is the bundler-facing surface of the cache. A host drives it in
// rounds: record snapshots and dependency edges as files are parsed, query
// compiled output and diagnostics, then walk the affected tree and flush.
//
// The compiler service and module resolver are attachments rather than hard
// dependencies, so a session can be built and inspected (stats, clean)
// without a compiler present.
type Session struct {
	config   *domain.BuildConfig
	cache    *buildcache.Cache
	logger   ports.Logger
	compiler ports.CompilerService
	resolver ports.ModuleResolver
}

// Option configures optional session collaborators.
type Option func(*Session)

// WithCompiler attaches the compiler front-end used to compute cache misses.
func WithCompiler(compiler ports.CompilerService) Option {
	return func(s *Session) {
		s.compiler = compiler
	}
}

// WithResolver attaches the module resolver used to map import specifiers to
// file paths.
func WithResolver(resolver ports.ModuleResolver) Option {
	return func(s *Session) {
		s.resolver = resolver
	}
}

// New creates a session over an already-constructed cache.
func New(cfg *domain.BuildConfig, cache *buildcache.Cache, logger ports.Logger, opts ...Option) *Session {
	s := &Session{
		config: cfg,
		cache:  cache,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the resolved build configuration for this session.
func (s *Session) Config() *domain.BuildConfig {
	return s.config
}

// BeginRound starts a new editing round and returns its number.
func (s *Session) BeginRound() int {
	round := s.cache.BeginRound()
	s.logger.Debug("round started", "round", round)
	return round
}

// SetSnapshot records the current text of a file and returns the snapshot
// identifying that version.
func (s *Session) SetSnapshot(path string, text []byte) domain.Snapshot {
	return s.cache.SetSnapshot(path, text)
}

// SetDependency records that dependent imports dependency.
func (s *Session) SetDependency(dependency, dependent string) {
	s.cache.SetDependency(dependency, dependent)
}

// ResolveImport maps an import specifier found in importer to a file path and
// records the resulting dependency edge. ok is false when no resolver is
// attached or the specifier cannot be resolved; an unresolved import is left
// for the compiler to diagnose.
func (s *Session) ResolveImport(specifier, importer string) (string, bool) {
	if s.resolver == nil {
		return "", false
	}
	path, ok := s.resolver.Resolve(specifier, importer, s.config.Options)
	if !ok {
		s.logger.Debug("unresolved import", "specifier", specifier, "importer", importer)
		return "", false
	}
	s.cache.SetDependency(path, importer)
	return path, true
}

// GetCompiled returns the compiled output for a snapshot, computing it with
// compute on a miss.
func (s *Session) GetCompiled(ctx context.Context, snap domain.Snapshot, compute buildcache.EmitFunc) (domain.EmitResult, error) {
	return s.cache.GetCompiled(ctx, snap, compute)
}

// GetSyntacticDiagnostics returns parse-level diagnostics for a snapshot,
// computing them with compute on a miss.
func (s *Session) GetSyntacticDiagnostics(ctx context.Context, snap domain.Snapshot, compute buildcache.DiagnosticsFunc) ([]domain.Diagnostic, error) {
	return s.cache.GetSyntacticDiagnostics(ctx, snap, compute)
}

// GetSemanticDiagnostics returns type-level diagnostics for a snapshot,
// computing them with compute on a miss.
func (s *Session) GetSemanticDiagnostics(ctx context.Context, snap domain.Snapshot, compute buildcache.DiagnosticsFunc) ([]domain.Diagnostic, error) {
	return s.cache.GetSemanticDiagnostics(ctx, snap, compute)
}

// Compile returns the compiled output for a snapshot through the attached
// compiler service.
func (s *Session) Compile(ctx context.Context, snap domain.Snapshot) (domain.EmitResult, error) {
	if s.compiler == nil {
		return domain.EmitResult{}, domain.ErrNoCompilerService
	}
	return s.cache.GetCompiled(ctx, snap, func(ctx context.Context) (domain.EmitResult, error) {
		return s.compiler.Emit(ctx, snap.Path.String())
	})
}

// SyntacticDiagnostics returns parse-level diagnostics for a snapshot through
// the attached compiler service.
func (s *Session) SyntacticDiagnostics(ctx context.Context, snap domain.Snapshot) ([]domain.Diagnostic, error) {
	if s.compiler == nil {
		return nil, domain.ErrNoCompilerService
	}
	return s.cache.GetSyntacticDiagnostics(ctx, snap, func(ctx context.Context) ([]domain.Diagnostic, error) {
		return s.compiler.SyntacticDiagnostics(ctx, snap.Path.String())
	})
}

// SemanticDiagnostics returns type-level diagnostics for a snapshot through
// the attached compiler service.
func (s *Session) SemanticDiagnostics(ctx context.Context, snap domain.Snapshot) ([]domain.Diagnostic, error) {
	if s.compiler == nil {
		return nil, domain.ErrNoCompilerService
	}
	return s.cache.GetSemanticDiagnostics(ctx, snap, func(ctx context.Context) ([]domain.Diagnostic, error) {
		return s.compiler.SemanticDiagnostics(ctx, snap.Path.String())
	})
}

// WalkTree visits every file whose semantic results may have changed since
// the previous round.
func (s *Session) WalkTree(visit func(path string) error) error {
	return s.cache.WalkTree(visit)
}

// Report applies the configured strictness policy to a round's collected
// diagnostics. Under "error" strictness any error diagnostic fails the
// round; under "warn" everything is logged and the round completes.
func (s *Session) Report(diags []domain.Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}

	errorCount := 0
	for _, d := range diags {
		if d.Severity == domain.SeverityError {
			errorCount++
		}
		s.logger.Warn(fmt.Sprintf("%s:%d:%d %s: %s", d.Path, d.Line, d.Column, d.Code, d.Message))
	}

	if errorCount > 0 && s.config.Strictness == domain.StrictnessError {
		return zerr.With(domain.ErrBuildFailed, "errors", errorCount)
	}
	return nil
}

// Done flushes the cache to disk. The session stays usable afterwards.
func (s *Session) Done(ctx context.Context) error {
	return s.cache.Done(ctx)
}

// Clean discards all cached state, in memory and on disk.
func (s *Session) Clean() error {
	return s.cache.Clean()
}

// Stats returns a point-in-time summary of the cache contents.
func (s *Session) Stats() buildcache.Stats {
	return s.cache.CurrentStats()
}
