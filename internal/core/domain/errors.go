package domain

import "go.trai.ch/zerr"

var (
	// ErrNoCompilerService is returned when a compile or diagnosis operation is
	// requested but no compiler service has been attached to the session.
	ErrNoCompilerService = zerr.New("no compiler service attached")

	// ErrBuildFailed is returned when diagnostics were reported and the
	// configured strictness policy is set to fail the build.
	ErrBuildFailed = zerr.New("build failed with diagnostics")

	// ErrSnapshotMismatch is returned when a snapshot passed to a cache query
	// does not match the latest recorded snapshot for that path.
	ErrSnapshotMismatch = zerr.New("snapshot does not match latest recorded content")

	// ErrInvalidStrictness is returned when the configured strictness policy is
	// neither "error" nor "warn".
	ErrInvalidStrictness = zerr.New("invalid strictness, expected 'error' or 'warn'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no strata.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find strata.yaml")

	// ErrStoreCreateFailed is returned when the cache store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache store directory")

	// ErrStoreEncodeFailed is returned when a cache entry cannot be encoded.
	ErrStoreEncodeFailed = zerr.New("failed to encode cache entry")

	// ErrStoreWriteFailed is returned when a cache entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrStoreCleanFailed is returned when the cache store cannot be removed.
	ErrStoreCleanFailed = zerr.New("failed to clean cache store")

	// ErrEmitCompute is returned when the compute function for a compile
	// request fails outright (as opposed to reporting a skipped emit).
	ErrEmitCompute = zerr.New("emit computation failed")

	// ErrDiagnosticsCompute is returned when the compute function for a
	// diagnostics request fails.
	ErrDiagnosticsCompute = zerr.New("diagnostics computation failed")
)
