package app

import (
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/buildcache"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	Session *Session
	Cache   *buildcache.Cache
	Logger  ports.Logger
	Store   ports.CacheStore
}
