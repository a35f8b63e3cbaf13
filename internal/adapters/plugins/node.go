package plugins

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/core/ports"
)

// NodeID is the unique identifier for the asset lookup Graft node.
const NodeID graft.ID = "adapter.asset_lookup"

func init() {
	graft.Register(graft.Node[ports.AssetLookupFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AssetLookupFactory, error) {
			return NewFactory(), nil
		},
	})
}
