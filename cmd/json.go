package cmd

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/ftahirops/edtop/engine"
)

// runJSON outputs a single snapshot as JSON and exits. Two ticks one
// interval apart so rate estimates have a prior sample to difference
// against.
func runJSON(eng *engine.Engine, interval time.Duration) error {
	ctx := context.Background()
	eng.Tick(ctx)
	time.Sleep(interval)
	snap := eng.Tick(ctx)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
