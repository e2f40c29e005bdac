package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the manifest loader Graft node.
const NodeID graft.ID = "adapter.manifest_loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Loader, error) {
			return NewLoader(), nil
		},
	})
}
