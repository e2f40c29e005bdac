package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/srcdeb/srcdeb/internal/adapters/dpkg"
	"github.com/srcdeb/srcdeb/internal/adapters/logger"
	"github.com/srcdeb/srcdeb/internal/adapters/perl"
	"github.com/srcdeb/srcdeb/internal/core/ports"
)

// NodeID is the unique identifier for the Resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{perl.LocatorNodeID, dpkg.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			locator, err := graft.Dep[ports.ModuleLocator](ctx)
			if err != nil {
				return nil, err
			}
			owner, err := graft.Dep[ports.PackageOwner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(locator, owner, log), nil
		},
	})
}
