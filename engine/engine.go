package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ftahirops/edtop/collector"
	"github.com/ftahirops/edtop/model"
)

// Engine orchestrates one inventory + attributes + throughput + estimate
// pass per polling cycle.
type Engine struct {
	inventory *collector.Inventory
	attrs     *collector.Attributes
	sampler   *collector.Sampler
	estimator *RateEstimator
	now       func() time.Time
	tickMu    sync.Mutex // serializes Tick() calls to prevent concurrent collection
}

// NewEngine creates an engine over the given runner.
func NewEngine(run collector.Runner) *Engine {
	return &Engine{
		inventory: collector.NewInventory(run),
		attrs:     collector.NewAttributes(run),
		sampler:   collector.NewSampler(run),
		estimator: NewRateEstimator(DebounceWindow),
		now:       time.Now,
	}
}

// Tick performs one collection cycle and returns the snapshot. Devices are
// visited sequentially; each external tool call carries its own deadline, so
// a hung device stalls the cycle by at most its timeout. Per-device failures
// degrade to sentinel values and the cycle continues.
func (e *Engine) Tick(ctx context.Context) *model.Snapshot {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	snap := &model.Snapshot{
		Timestamp: e.now(),
		Devices:   make(map[model.DeviceID]model.DeviceReport),
	}

	snap.Groups = e.inventory.GroupDevices(ctx)
	if len(snap.Groups) == 0 {
		snap.Errors = append(snap.Errors, "no external disks found")
		return snap
	}

	for _, g := range snap.Groups {
		for _, id := range g.Members {
			if ctx.Err() != nil {
				snap.Errors = append(snap.Errors, fmt.Sprintf("cycle interrupted: %v", ctx.Err()))
				return snap
			}
			sample := e.sampler.Sample(ctx, id)
			snap.Devices[id] = model.DeviceReport{
				ID:     id,
				Attrs:  e.attrs.Fetch(ctx, id),
				Temp:   e.attrs.Temperature(ctx, id),
				Rate:   e.estimator.Estimate(id, sample),
				Sample: sample,
			}
		}
	}
	return snap
}
