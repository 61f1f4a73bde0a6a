package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/fs"
	"go.trai.ch/strata/internal/adapters/logger"
	"go.trai.ch/strata/internal/adapters/store"
	"go.trai.ch/strata/internal/app"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports/mocks"
	"go.trai.ch/strata/internal/engine/buildcache"
	"go.uber.org/mock/gomock"
)

func newSession(t *testing.T, strictness domain.Strictness, opts ...app.Option) *app.Session {
	t.Helper()

	hasher := fs.NewHasher()
	cfg := &domain.BuildConfig{
		CacheRoot:  t.TempDir(),
		Options:    domain.CompilerOptions{"target": "es2022"},
		Strictness: strictness,
	}
	cache := buildcache.New(hasher, store.NewStore(), logger.New(), cfg.CacheRoot, hasher.OptionsFingerprint(cfg.Options))
	return app.New(cfg, cache, logger.New(), opts...)
}

func TestSession_Compile_UsesAttachedCompiler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompilerService(ctrl)
	session := newSession(t, domain.StrictnessError, app.WithCompiler(compiler))

	snap := session.SetSnapshot("src/a.ts", []byte("export const a = 1"))
	artifact := domain.CompiledArtifact{Code: "const a = 1;"}
	compiler.EXPECT().Emit(gomock.Any(), "src/a.ts").Return(domain.EmitSuccess(artifact), nil).Times(1)

	// Second call must be served from cache without touching the compiler.
	for range 2 {
		result, err := session.Compile(context.Background(), snap)
		require.NoError(t, err)
		got, ok := result.Artifact()
		require.True(t, ok)
		assert.Equal(t, artifact, got)
	}
}

func TestSession_Compile_NoCompilerAttached(t *testing.T) {
	t.Parallel()

	session := newSession(t, domain.StrictnessError)
	snap := session.SetSnapshot("src/a.ts", []byte("export const a = 1"))

	_, err := session.Compile(context.Background(), snap)
	require.ErrorIs(t, err, domain.ErrNoCompilerService)

	_, err = session.SyntacticDiagnostics(context.Background(), snap)
	require.ErrorIs(t, err, domain.ErrNoCompilerService)

	_, err = session.SemanticDiagnostics(context.Background(), snap)
	require.ErrorIs(t, err, domain.ErrNoCompilerService)
}

func TestSession_SemanticDiagnostics_DependencyEdit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompilerService(ctrl)
	session := newSession(t, domain.StrictnessError, app.WithCompiler(compiler))

	session.SetSnapshot("src/dep.ts", []byte("export const n = 1"))
	mainSnap := session.SetSnapshot("src/main.ts", []byte("import { n } from './dep'"))
	session.SetDependency("src/dep.ts", "src/main.ts")

	compiler.EXPECT().SemanticDiagnostics(gomock.Any(), "src/main.ts").Return(nil, nil).Times(2)

	_, err := session.SemanticDiagnostics(context.Background(), mainSnap)
	require.NoError(t, err)

	// Editing the dependency invalidates the dependent's semantic results
	// even though the dependent's own text is unchanged.
	session.BeginRound()
	session.SetSnapshot("src/dep.ts", []byte("export const n = 2"))

	_, err = session.SemanticDiagnostics(context.Background(), mainSnap)
	require.NoError(t, err)
}

func TestSession_ResolveImport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockModuleResolver(ctrl)
	session := newSession(t, domain.StrictnessError, app.WithResolver(resolver))

	session.SetSnapshot("src/main.ts", []byte("import { n } from './dep'"))
	resolver.EXPECT().
		Resolve("./dep", "src/main.ts", session.Config().Options).
		Return("src/dep.ts", true)

	path, ok := session.ResolveImport("./dep", "src/main.ts")
	require.True(t, ok)
	assert.Equal(t, "src/dep.ts", path)

	// The resolved edge is recorded in the graph.
	assert.Equal(t, 1, session.Stats().Edges)
}

func TestSession_ResolveImport_Unresolved(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockModuleResolver(ctrl)
	session := newSession(t, domain.StrictnessError, app.WithResolver(resolver))

	resolver.EXPECT().Resolve("missing", "src/main.ts", gomock.Any()).Return("", false)

	_, ok := session.ResolveImport("missing", "src/main.ts")
	assert.False(t, ok)
	assert.Equal(t, 0, session.Stats().Edges)
}

func TestSession_ResolveImport_NoResolver(t *testing.T) {
	t.Parallel()

	session := newSession(t, domain.StrictnessError)
	_, ok := session.ResolveImport("./dep", "src/main.ts")
	assert.False(t, ok)
}

func TestSession_Report_Strict(t *testing.T) {
	t.Parallel()

	session := newSession(t, domain.StrictnessError)
	diags := []domain.Diagnostic{
		{Path: "src/a.ts", Line: 3, Code: "TS2304", Message: "cannot find name 'x'", Severity: domain.SeverityError},
		{Path: "src/a.ts", Line: 9, Code: "TS6133", Message: "'y' is declared but never read", Severity: domain.SeverityWarning},
	}

	err := session.Report(diags)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestSession_Report_Warn(t *testing.T) {
	t.Parallel()

	session := newSession(t, domain.StrictnessWarn)
	diags := []domain.Diagnostic{
		{Path: "src/a.ts", Line: 3, Code: "TS2304", Message: "cannot find name 'x'", Severity: domain.SeverityError},
	}

	require.NoError(t, session.Report(diags))
	require.NoError(t, session.Report(nil))
}

func TestSession_Report_WarningsOnlyUnderStrict(t *testing.T) {
	t.Parallel()

	session := newSession(t, domain.StrictnessError)
	diags := []domain.Diagnostic{
		{Path: "src/a.ts", Line: 9, Code: "TS6133", Message: "'y' is declared but never read", Severity: domain.SeverityWarning},
	}

	require.NoError(t, session.Report(diags))
}

func TestSession_DoneAndClean(t *testing.T) {
	t.Parallel()

	session := newSession(t, domain.StrictnessError)
	session.SetSnapshot("src/a.ts", []byte("export const a = 1"))
	session.SetDependency("src/b.ts", "src/a.ts")

	require.NoError(t, session.Done(context.Background()))

	stats := session.Stats()
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 1, stats.Edges)

	require.NoError(t, session.Clean())
	stats = session.Stats()
	assert.Equal(t, 0, stats.Files)
	assert.Equal(t, 0, stats.Edges)
}
