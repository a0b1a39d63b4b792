package engine

import (
	"time"

	"github.com/ftahirops/edtop/model"
	"github.com/ftahirops/edtop/util"
)

// DebounceWindow is the minimum time between two accepted rate
// recomputations for the same device. Polling faster than iostat's own
// refresh granularity would otherwise read as zero or jitter wildly.
const DebounceWindow = 2 * time.Second

// idleFloorMBs is the noise floor below which activity reads as Idle.
// Negative rates (counter reset or wrap) land here too; a negative speed is
// never surfaced.
const idleFloorMBs = 0.01

// deviceState is the estimator's only persisted state: the last accepted
// sample, the last computed estimate, and when that estimate was computed.
type deviceState struct {
	lastSample   *model.ThroughputSample
	lastEstimate model.RateEstimate
	estimatedAt  time.Time
}

// RateEstimator derives a smoothed per-device transfer rate from successive
// cumulative-counter samples. State is keyed by device; entries for devices
// that disappear from the inventory are kept (they are tiny, churn is
// human-scale, and a disk mid-reconnect keeps its prior sample). The polling
// loop is single-threaded, so no locking is needed.
type RateEstimator struct {
	states map[model.DeviceID]*deviceState
	window time.Duration
	now    func() time.Time
}

// NewRateEstimator creates an estimator with the given debounce window.
func NewRateEstimator(window time.Duration) *RateEstimator {
	return &RateEstimator{
		states: make(map[model.DeviceID]*deviceState),
		window: window,
		now:    time.Now,
	}
}

// Estimate folds one sample (nil when sampling failed) into the device's
// state and returns the current estimate. Within the debounce window the
// cached estimate is returned unchanged and the sample is not consulted.
func (e *RateEstimator) Estimate(id model.DeviceID, sample *model.ThroughputSample) model.RateEstimate {
	now := e.now()

	st, ok := e.states[id]
	if ok && now.Sub(st.estimatedAt) < e.window {
		return st.lastEstimate
	}
	if !ok {
		st = &deviceState{}
		e.states[id] = st
	}

	// A failed sample is not cached as data, but it still refreshes the
	// debounce clock so a burst of failures cannot defeat the window.
	if sample == nil {
		st.lastEstimate = model.RateEstimate{Kind: model.RateUnavailable}
		st.estimatedAt = now
		return st.lastEstimate
	}

	if st.lastSample == nil {
		st.lastSample = sample
		st.lastEstimate = model.RateEstimate{Kind: model.RateWarmingUp}
		st.estimatedAt = now
		return st.lastEstimate
	}

	elapsed := sample.ObservedAt.Sub(st.lastSample.ObservedAt)
	if elapsed <= 0 {
		// Clock anomaly or duplicate sample; leave state untouched.
		return model.RateEstimate{Kind: model.RateWarmingUp}
	}

	rate := util.MBPerSec(st.lastSample.TotalMB, sample.TotalMB, elapsed)
	st.lastSample = sample
	if rate < idleFloorMBs {
		st.lastEstimate = model.RateEstimate{Kind: model.RateIdle}
	} else {
		st.lastEstimate = model.RateEstimate{Kind: model.RateActive, MBPerSec: rate}
	}
	st.estimatedAt = now
	return st.lastEstimate
}
