package domain

import "path/filepath"

const (
	// DirPerm is the permission used for created cache directories.
	DirPerm = 0o755
	// FilePerm is the permission used for written cache files.
	FilePerm = 0o644

	// ConfigFileName is the strata configuration file name.
	ConfigFileName = "strata.yaml"

	// storeDir is the directory the persistent cache lives under, relative
	// to the configured cache root.
	storeDir = ".strata"
)

// StorePath returns the cache store directory under the given cache root.
func StorePath(root string) string {
	return filepath.Join(root, storeDir)
}
