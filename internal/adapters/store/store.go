// Package store implements the durable on-disk representation of the
// compile cache using a manifest plus one msgpack file per tracked file.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// schemaVersion is bumped whenever the persisted payload format changes.
// A mismatch is treated as a cold cache, never as an error.
const schemaVersion uint16 = 1

// flushParallelism bounds concurrent entry writes during a checkpoint.
const flushParallelism = 8

var _ ports.CacheStore = (*Store)(nil)

// manifest versions the whole store. The options fingerprint is part of the
// version: changing compiler options invalidates the store wholesale rather
// than risking per-file misdetection.
type manifest struct {
	Schema  uint16             `msgpack:"schema"`
	Options domain.Fingerprint `msgpack:"options"`
	Edges   []domain.Edge      `msgpack:"edges"`
}

// Store implements ports.CacheStore with a file-per-entry strategy.
type Store struct{}

// NewStore creates a new cache store.
func NewStore() *Store {
	return &Store{}
}

// Load reads persisted state from root. Missing, corrupt or
// version-mismatched data yields a nil (cold) state; individual unreadable
// entries are skipped rather than failing the load.
func (s *Store) Load(root string, options domain.Fingerprint) (*domain.CacheState, error) {
	m, err := s.readManifest(root)
	if err != nil || m == nil {
		return nil, err
	}
	if m.Schema != schemaVersion || m.Options != options {
		return nil, nil
	}

	names, err := os.ReadDir(s.entriesDir(root))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to list cache entries")
	}

	state := domain.NewCacheState()
	state.Edges = m.Edges
	for _, name := range names {
		if name.IsDir() {
			continue
		}
		var entry domain.FileEntry
		if err := decodeFile(filepath.Join(s.entriesDir(root), name.Name()), &entry); err != nil {
			// A torn or concurrent write corrupted this entry; reuse is
			// gated by fingerprints, so dropping it is always safe.
			continue
		}
		state.Entries[entry.Path] = &entry
	}
	return state, nil
}

// Flush checkpoints the state under root, replacing the manifest last so a
// crashed flush is detected as a version mismatch instead of read as
// half-written state.
func (s *Store) Flush(root string, options domain.Fingerprint, state *domain.CacheState) error {
	if err := os.MkdirAll(s.entriesDir(root), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	var g errgroup.Group
	g.SetLimit(flushParallelism)
	for _, entry := range state.Entries {
		g.Go(func() error {
			target := filepath.Join(s.entriesDir(root), entryFilename(entry.Path))
			return encodeFile(target, entry)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	m := manifest{Schema: schemaVersion, Options: options, Edges: state.Edges}
	return encodeFile(s.manifestPath(root), &m)
}

// Clean removes every persisted artifact under root.
func (s *Store) Clean(root string) error {
	if err := os.RemoveAll(domain.StorePath(root)); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCleanFailed.Error())
	}
	return nil
}

func (s *Store) readManifest(root string) (*manifest, error) {
	var m manifest
	err := decodeFile(s.manifestPath(root), &m)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		// Corrupt manifest: cold cache.
		return nil, nil
	}
	return &m, nil
}

func (s *Store) manifestPath(root string) string {
	return filepath.Join(domain.StorePath(root), "manifest.mp")
}

func (s *Store) entriesDir(root string) string {
	return filepath.Join(domain.StorePath(root), "entries")
}

func entryFilename(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:]) + ".mp"
}

// encodeFile writes v atomically via a temp file and rename, so concurrent
// builds against the same cache root see either the old or the new payload.
func encodeFile(target string, v any) error {
	f, err := os.CreateTemp(filepath.Dir(target), "tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	tmpName := f.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := msgpack.NewEncoder(f).Encode(v); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, domain.ErrStoreEncodeFailed.Error())
	}
	if err := f.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmpName, target); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path) //nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	return msgpack.NewDecoder(f).Decode(v)
}
