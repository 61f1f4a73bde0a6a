package buildcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/adapters/config"
	"go.trai.ch/strata/internal/adapters/fs"
	"go.trai.ch/strata/internal/adapters/logger"
	"go.trai.ch/strata/internal/adapters/store"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
)

// NodeID is the unique identifier for the build cache Graft node.
const NodeID graft.ID = "engine.build_cache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.BuildConfigNodeID,
			fs.HasherNodeID,
			store.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			cfg, err := graft.Dep[*domain.BuildConfig](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			cacheStore, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			options := hasher.OptionsFingerprint(cfg.Options)
			return New(hasher, cacheStore, log, cfg.CacheRoot, options), nil
		},
	})
}
