package config

import (
	"context"
	"errors"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/adapters/logger"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// BuildConfigNodeID is the unique identifier for the resolved build
	// configuration Graft node.
	BuildConfigNodeID graft.ID = "adapter.build_config"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	// Resolved configuration for the current working directory. Kept as its
	// own node so the cache and the session share one Load. A missing
	// strata.yaml is not fatal: commands like version and stats should work
	// anywhere, so an in-place default configuration is used instead.
	graft.Register(graft.Node[*domain.BuildConfig]{
		ID:        BuildConfigNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*domain.BuildConfig, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := loader.Load(".")
			if errors.Is(err, domain.ErrConfigNotFound) {
				log.Debug("no strata.yaml found, using defaults")
				return &domain.BuildConfig{
					CacheRoot:  ".",
					Options:    domain.CompilerOptions{},
					Strictness: domain.StrictnessError,
				}, nil
			}
			return cfg, err
		},
	})
}
