package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/srcdeb/srcdeb/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/srcdeb/srcdeb/internal/adapters/debuild" //nolint:depguard // Wired in app layer
	"github.com/srcdeb/srcdeb/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"github.com/srcdeb/srcdeb/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/srcdeb/srcdeb/internal/adapters/perl"    //nolint:depguard // Wired in app layer
	"github.com/srcdeb/srcdeb/internal/adapters/prove"   //nolint:depguard // Wired in app layer
	"github.com/srcdeb/srcdeb/internal/adapters/vcs"     //nolint:depguard // Wired in app layer
	"github.com/srcdeb/srcdeb/internal/core/ports"
	"github.com/srcdeb/srcdeb/internal/engine/render"
	"github.com/srcdeb/srcdeb/internal/engine/resolve"
	"github.com/srcdeb/srcdeb/internal/engine/scan"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application with the pieces main needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			vcs.NodeID,
			fs.NodeID,
			config.NodeID,
			scan.NodeID,
			resolve.NodeID,
			render.NodeID,
			perl.ExtractorNodeID,
			prove.NodeID,
			debuild.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	fetcher, err := graft.Dep[ports.SourceFetcher](ctx)
	if err != nil {
		return nil, err
	}
	inspector, err := graft.Dep[*fs.Inspector](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[*config.Loader](ctx)
	if err != nil {
		return nil, err
	}
	scanner, err := graft.Dep[*scan.Scanner](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[*resolve.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	generator, err := graft.Dep[*render.Generator](ctx)
	if err != nil {
		return nil, err
	}
	extractor, err := graft.Dep[ports.ImportExtractor](ctx)
	if err != nil {
		return nil, err
	}
	tests, err := graft.Dep[ports.TestRunner](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(fetcher, inspector, loader, scanner, resolver, generator, extractor, tests, builder, log), nil
}
