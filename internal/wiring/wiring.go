// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/strata/internal/adapters/config"
	_ "go.trai.ch/strata/internal/adapters/fs"
	_ "go.trai.ch/strata/internal/adapters/logger"
	_ "go.trai.ch/strata/internal/adapters/store"
	// Register app and engine nodes.
	_ "go.trai.ch/strata/internal/app"
	_ "go.trai.ch/strata/internal/engine/buildcache"
)
