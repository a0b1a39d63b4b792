package collector

import (
	"context"
	"strings"
	"time"

	"github.com/ftahirops/edtop/model"
	"github.com/ftahirops/edtop/util"
)

// Sampler reads the cumulative megabytes-transferred counter for one device
// from `iostat -Id`. Stateless; rate derivation lives in the engine.
type Sampler struct {
	run Runner
	now func() time.Time
}

// NewSampler creates a throughput sampler over the given runner.
func NewSampler(run Runner) *Sampler {
	return &Sampler{run: run, now: time.Now}
}

// Sample returns the current cumulative transfer counter, or nil on timeout
// or malformed output. Callers must treat nil distinctly from a zero sample.
func (s *Sampler) Sample(ctx context.Context, id model.DeviceID) *model.ThroughputSample {
	ctx, cancel := context.WithTimeout(ctx, IostatTimeout)
	defer cancel()

	out, err := s.run.Output(ctx, "iostat", "-Id", string(id))
	if err != nil {
		return nil
	}
	total, ok := parseIostatTotalMB(string(out))
	if !ok {
		return nil
	}
	return &model.ThroughputSample{TotalMB: total, ObservedAt: s.now()}
}

// parseIostatTotalMB extracts the cumulative MB column (3rd whitespace field)
// from the last row of iostat's tabular output. The output must carry the
// two header rows plus at least one stats row.
func parseIostatTotalMB(out string) (float64, bool) {
	rows := util.Lines(strings.TrimSpace(out))
	if len(rows) < 3 {
		return 0, false
	}
	return util.ParseFloat64(util.FieldsAt(rows[len(rows)-1], 2))
}
