package collector

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/ftahirops/edtop/model"
	"github.com/ftahirops/edtop/util"
)

// Attributes fetches per-device identity and temperature. Both paths degrade
// to sentinel values; neither ever returns an error to the caller.
type Attributes struct {
	run Runner
}

// NewAttributes creates an attribute fetcher over the given runner.
func NewAttributes(run Runner) *Attributes {
	return &Attributes{run: run}
}

// Fetch returns the device's display name and size from `diskutil info`.
// Any invocation or parse failure yields the degraded default.
func (a *Attributes) Fetch(ctx context.Context, id model.DeviceID) model.DeviceAttributes {
	ctx, cancel := context.WithTimeout(ctx, DiskutilTimeout)
	defer cancel()

	out, err := a.run.Output(ctx, "diskutil", "info", string(id))
	if err != nil {
		return model.DefaultAttributes(id)
	}
	return parseDeviceInfo(id, string(out))
}

// parseDeviceInfo scans `diskutil info` output for the two labeled fields.
// Missing fields keep their defaults.
func parseDeviceInfo(id model.DeviceID, out string) model.DeviceAttributes {
	attrs := model.DefaultAttributes(id)
	for _, line := range util.Lines(out) {
		switch {
		case strings.Contains(line, "Device / Media Name:"):
			if v := util.LabelValue(line); v != "" {
				attrs.Name = v
			}
		case strings.Contains(line, "Disk Size:"):
			if v := util.TrimParenthetical(util.LabelValue(line)); v != "" {
				attrs.Size = v
			}
		}
	}
	return attrs
}

var tempPattern = regexp.MustCompile(`(\d+)\s*C`)

// Temperature reads the device temperature via smartctl. Outcomes:
// tool not installed -> ToolMissing; deadline exceeded -> TimedOut; a line
// mentioning "temperature" with an integer followed by the C unit marker ->
// Celsius; anything else, including permission failures -> Unavailable.
func (a *Attributes) Temperature(ctx context.Context, id model.DeviceID) model.TemperatureReading {
	path, err := a.run.LookPath("smartctl")
	if err != nil {
		return model.TemperatureReading{Kind: model.TempToolMissing}
	}

	ctx, cancel := context.WithTimeout(ctx, SmartctlTimeout)
	defer cancel()

	out, err := a.run.Output(ctx, path, "-a", id.Dev())
	if errors.Is(err, context.DeadlineExceeded) {
		return model.TemperatureReading{Kind: model.TempTimedOut}
	}
	// smartctl exits non-zero for many non-error reasons (attribute
	// thresholds, pending warnings); scan whatever it printed.
	if err != nil && len(out) == 0 {
		return model.TemperatureReading{Kind: model.TempUnavailable}
	}
	return parseTemperature(string(out))
}

// parseTemperature scans a smartctl dump for the first temperature line
// carrying a Celsius value.
func parseTemperature(out string) model.TemperatureReading {
	for _, line := range util.Lines(out) {
		if !strings.Contains(strings.ToLower(line), "temperature") {
			continue
		}
		if m := tempPattern.FindStringSubmatch(line); m != nil {
			c, err := strconv.Atoi(m[1])
			if err == nil {
				return model.TemperatureReading{Kind: model.TempCelsius, Celsius: c}
			}
		}
	}
	return model.TemperatureReading{Kind: model.TempUnavailable}
}
