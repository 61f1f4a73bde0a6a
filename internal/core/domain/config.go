package domain

// Strictness controls whether compiler diagnostics abort a round or are
// reported as warnings.
type Strictness string

const (
	// StrictnessError aborts the build when error diagnostics are reported.
	StrictnessError Strictness = "error"
	// StrictnessWarn reports diagnostics but lets the round complete.
	StrictnessWarn Strictness = "warn"
)

// CompilerOptions is the already-parsed, opaque option set supplied by the
// configuration loader. The cache never interprets individual options; it
// only fingerprints the map as a whole.
type CompilerOptions map[string]string

// BuildConfig is the resolved strata configuration for one build session.
type BuildConfig struct {
	// CacheRoot is the directory the persistent cache store lives under.
	CacheRoot string
	// Options are the effective compiler options for the session.
	Options CompilerOptions
	// Files is the set of files initially in scope.
	Files []string
	// Strictness decides whether error diagnostics abort the round.
	Strictness Strictness
}
