package model

import (
	"fmt"
	"time"
)

// DeviceID identifies one physical external device (e.g. "disk4") for the
// lifetime of a monitoring session. Not stable across reboots or replugs.
type DeviceID string

// Dev returns the /dev path for the device.
func (d DeviceID) Dev() string { return "/dev/" + string(d) }

// DeviceAttributes holds static-ish identity info, re-fetched every cycle.
type DeviceAttributes struct {
	Name string // "Device / Media Name" as reported by diskutil
	Size string // "Disk Size" with the byte-count parenthetical stripped
}

// DefaultAttributes is the degraded fallback when diskutil fails.
func DefaultAttributes(id DeviceID) DeviceAttributes {
	return DeviceAttributes{Name: string(id), Size: "Unknown"}
}

// TempKind classifies a temperature reading.
type TempKind int

const (
	TempUnavailable TempKind = iota // tool ran but no temperature found
	TempCelsius                     // valid reading in Celsius
	TempToolMissing                 // smartctl not installed
	TempTimedOut                    // smartctl exceeded its deadline
)

// TemperatureReading is the outcome of one temperature query. It is always
// one of the four kinds; fetching never fails with an error.
type TemperatureReading struct {
	Kind    TempKind
	Celsius int
}

func (t TemperatureReading) String() string {
	switch t.Kind {
	case TempCelsius:
		return fmt.Sprintf("%d°C", t.Celsius)
	case TempToolMissing:
		return "N/A (smartctl required)"
	case TempTimedOut:
		return "Timeout"
	}
	return "N/A"
}

// ThroughputSample is one observation of the cumulative transfer counter
// reported by iostat. The counter is monotonic in theory but may reset when
// the tool re-initializes; consumers must treat negative deltas as a
// discontinuity, not a negative rate.
type ThroughputSample struct {
	TotalMB    float64
	ObservedAt time.Time
}

// RateKind classifies a rate estimate.
type RateKind int

const (
	RateWarmingUp   RateKind = iota // fewer than two usable samples so far
	RateIdle                        // below the noise floor (or counter reset)
	RateActive                      // meaningful throughput
	RateUnavailable                 // last sampling attempt failed
)

// RateEstimate is the derived per-device transfer speed.
type RateEstimate struct {
	Kind     RateKind
	MBPerSec float64
}

func (r RateEstimate) String() string {
	switch r.Kind {
	case RateActive:
		return fmt.Sprintf("%.2f MB/s", r.MBPerSec)
	case RateIdle:
		return "Idle"
	case RateWarmingUp:
		return "Measuring..."
	}
	return "N/A"
}
