package scan

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/srcdeb/srcdeb/internal/adapters/perl"
	"github.com/srcdeb/srcdeb/internal/core/ports"
)

// NodeID is the unique identifier for the Scanner Graft node.
const NodeID graft.ID = "engine.scanner"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{perl.ExtractorNodeID},
		Run: func(ctx context.Context) (*Scanner, error) {
			extractor, err := graft.Dep[ports.ImportExtractor](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(extractor), nil
		},
	})
}
