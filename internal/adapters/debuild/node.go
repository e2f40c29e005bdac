package debuild

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/srcdeb/srcdeb/internal/adapters/logger"
	"github.com/srcdeb/srcdeb/internal/adapters/shell"
	"github.com/srcdeb/srcdeb/internal/core/ports"
)

// NodeID is the unique identifier for the package builder Graft node.
const NodeID graft.ID = "adapter.deb_builder"

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Builder, error) {
			cmd, err := graft.Dep[ports.Commander](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(cmd, log), nil
		},
	})
}
