package perl

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/srcdeb/srcdeb/internal/adapters/shell"
	"github.com/srcdeb/srcdeb/internal/core/ports"
)

const (
	// ExtractorNodeID is the unique identifier for the import extractor Graft node.
	ExtractorNodeID graft.ID = "adapter.perl_extractor"
	// LocatorNodeID is the unique identifier for the module locator Graft node.
	LocatorNodeID graft.ID = "adapter.perl_locator"
)

func init() {
	graft.Register(graft.Node[ports.ImportExtractor]{
		ID:        ExtractorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ImportExtractor, error) {
			return NewExtractor(), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ModuleLocator, error) {
			cmd, err := graft.Dep[ports.Commander](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(cmd), nil
		},
	})
}
