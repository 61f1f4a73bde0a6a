package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/adapters/store"  //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/buildcache"
)

const (
	// SessionNodeID is the unique identifier for the Session Graft node.
	SessionNodeID graft.ID = "app.session"
	// ComponentsNodeID is the unique identifier for the app components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// Session Node
	graft.Register(graft.Node[*Session]{
		ID:        SessionNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.BuildConfigNodeID,
			buildcache.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Session, error) {
			cfg, err := graft.Dep[*domain.BuildConfig](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[*buildcache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg, cache, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			SessionNodeID,
			buildcache.NodeID,
			logger.NodeID,
			store.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	session, err := graft.Dep[*Session](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*buildcache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cacheStore, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		Session: session,
		Cache:   cache,
		Logger:  log,
		Store:   cacheStore,
	}, nil
}
