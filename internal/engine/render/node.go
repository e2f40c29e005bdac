package render

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the Generator Graft node.
const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Generator, error) {
			return NewGenerator(), nil
		},
	})
}
