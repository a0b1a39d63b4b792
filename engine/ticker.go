package engine

import (
	"context"

	"github.com/ftahirops/edtop/model"
)

// Ticker abstracts a data source that can produce snapshots. The TUI and
// watch mode consume this rather than the engine directly.
type Ticker interface {
	Tick(ctx context.Context) *model.Snapshot
}
