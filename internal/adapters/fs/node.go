package fs

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the layout inspector Graft node.
const NodeID graft.ID = "adapter.layout_inspector"

func init() {
	graft.Register(graft.Node[*Inspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Inspector, error) {
			return NewInspector(), nil
		},
	})
}
