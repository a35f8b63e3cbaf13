package static

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/core/ports"
)

// NodeID is the unique identifier for the static files Graft node.
const NodeID graft.ID = "adapter.static_files"

func init() {
	graft.Register(graft.Node[ports.StaticFilesFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StaticFilesFactory, error) {
			return NewFactory(), nil
		},
	})
}
