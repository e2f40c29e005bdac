package dpkg

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/srcdeb/srcdeb/internal/adapters/shell"
	"github.com/srcdeb/srcdeb/internal/core/ports"
)

// NodeID is the unique identifier for the package owner Graft node.
const NodeID graft.ID = "adapter.dpkg_owner"

func init() {
	graft.Register(graft.Node[ports.PackageOwner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageOwner, error) {
			cmd, err := graft.Dep[ports.Commander](ctx)
			if err != nil {
				return nil, err
			}
			return NewOwner(cmd), nil
		},
	})
}
