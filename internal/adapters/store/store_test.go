package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/store"
	"go.trai.ch/strata/internal/core/domain"
)

func sampleState() *domain.CacheState {
	state := domain.NewCacheState()
	state.Entries["/src/a.ts"] = &domain.FileEntry{
		Path:    "/src/a.ts",
		Content: "aaaaaaaaaaaaaaaa",
		Artifact: &domain.CompiledArtifact{
			Code:      "var a = 1;",
			SourceMap: "{}",
		},
		ArtifactKey: domain.Key{Content: "aaaaaaaaaaaaaaaa", Options: "oooooooooooooooo"},
		Syntactic: &domain.DiagnosticSet{
			Key: domain.Key{Content: "aaaaaaaaaaaaaaaa", Options: "oooooooooooooooo"},
		},
	}
	state.Entries["/src/b.ts"] = &domain.FileEntry{
		Path:          "/src/b.ts",
		Content:       "bbbbbbbbbbbbbbbb",
		SemanticStale: true,
	}
	state.Edges = []domain.Edge{{Dependency: "/src/b.ts", Dependent: "/src/a.ts"}}
	return state
}

func TestStore_FlushLoad(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.NewStore()
	options := domain.Fingerprint("oooooooooooooooo")

	require.NoError(t, s.Flush(root, options, sampleState()))

	got, err := s.Load(root, options)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Len(t, got.Entries, 2)
	a := got.Entries["/src/a.ts"]
	require.NotNil(t, a)
	require.NotNil(t, a.Artifact)
	assert.Equal(t, "var a = 1;", a.Artifact.Code)
	assert.True(t, a.ArtifactKey.Matches("aaaaaaaaaaaaaaaa", options))

	b := got.Entries["/src/b.ts"]
	require.NotNil(t, b)
	assert.True(t, b.SemanticStale)

	assert.Equal(t, []domain.Edge{{Dependency: "/src/b.ts", Dependent: "/src/a.ts"}}, got.Edges)
}

func TestStore_Load_Missing(t *testing.T) {
	t.Parallel()

	s := store.NewStore()
	got, err := s.Load(t.TempDir(), "oooooooooooooooo")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Load_OptionsMismatch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.NewStore()

	require.NoError(t, s.Flush(root, "oooooooooooooooo", sampleState()))

	got, err := s.Load(root, "xxxxxxxxxxxxxxxx")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Load_CorruptManifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.NewStore()
	options := domain.Fingerprint("oooooooooooooooo")

	require.NoError(t, s.Flush(root, options, sampleState()))

	manifest := filepath.Join(domain.StorePath(root), "manifest.mp")
	require.NoError(t, os.WriteFile(manifest, []byte("not msgpack"), 0o600))

	got, err := s.Load(root, options)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Load_SkipsCorruptEntry(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.NewStore()
	options := domain.Fingerprint("oooooooooooooooo")

	require.NoError(t, s.Flush(root, options, sampleState()))

	entriesDir := filepath.Join(domain.StorePath(root), "entries")
	names, err := os.ReadDir(entriesDir)
	require.NoError(t, err)
	require.Len(t, names, 2)
	require.NoError(t, os.WriteFile(filepath.Join(entriesDir, names[0].Name()), []byte("garbage"), 0o600))

	got, err := s.Load(root, options)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Entries, 1)
}

func TestStore_Clean(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.NewStore()
	options := domain.Fingerprint("oooooooooooooooo")

	require.NoError(t, s.Flush(root, options, sampleState()))
	require.NoError(t, s.Clean(root))

	got, err := s.Load(root, options)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = os.Stat(domain.StorePath(root))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_Clean_Missing(t *testing.T) {
	t.Parallel()

	s := store.NewStore()
	assert.NoError(t, s.Clean(t.TempDir()))
}
