package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ftahirops/edtop/engine"
	"github.com/ftahirops/edtop/model"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

const (
	R = "\033[0m" // reset
	B = "\033[1m" // bold
	D = "\033[2m" // dim

	FCyn  = "\033[36m"
	FBGrn = "\033[92m"
	FBYel = "\033[93m"
	FBRed = "\033[91m"
	FBCyn = "\033[96m"
	FOrg  = "\033[33m"
)

// Temperature display thresholds (°C).
const (
	tTempWarn = 45
	tTempCrit = 55
)

func clearScreen() {
	fmt.Print("\033[2J\033[H")
}

func ctemp(t model.TemperatureReading) string {
	if t.Kind != model.TempCelsius {
		return fmt.Sprintf("%s%s%s", D, t.String(), R)
	}
	switch {
	case t.Celsius >= tTempCrit:
		return fmt.Sprintf("%s%s%s%s", B, FBRed, t.String(), R)
	case t.Celsius >= tTempWarn:
		return fmt.Sprintf("%s%s%s", FBYel, t.String(), R)
	default:
		return fmt.Sprintf("%s%s%s", FBGrn, t.String(), R)
	}
}

func crate(r model.RateEstimate) string {
	if r.Kind == model.RateActive {
		return fmt.Sprintf("%s%s%s", FBCyn, r.String(), R)
	}
	return fmt.Sprintf("%s%s%s", D, r.String(), R)
}

func renderDeviceBox(sb *strings.Builder, rep model.DeviceReport, indent string) {
	sb.WriteString(fmt.Sprintf("%s┌─ %s%s%s ─────────────────────────────────────────\n",
		indent, FCyn, rep.ID.Dev(), R))
	sb.WriteString(fmt.Sprintf("%s│  Name:  %s\n", indent, rep.Attrs.Name))
	sb.WriteString(fmt.Sprintf("%s│  Size:  %s\n", indent, rep.Attrs.Size))
	sb.WriteString(fmt.Sprintf("%s│  Temp:  %s\n", indent, ctemp(rep.Temp)))
	sb.WriteString(fmt.Sprintf("%s│  Speed: %s\n", indent, crate(rep.Rate)))
	sb.WriteString(indent + "└──────────────────────────────────────────────────\n")
}

func renderWatch(snap *model.Snapshot, interval time.Duration) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 70) + "\n")
	sb.WriteString(fmt.Sprintf("%sExternal Disk Monitor%s — %s\n",
		B, R, snap.Timestamp.Format("2006-01-02 15:04:05")))
	sb.WriteString(strings.Repeat("=", 70) + "\n\n")

	if len(snap.Groups) == 0 {
		sb.WriteString("No external disks found.\n")
	}
	for _, g := range snap.Groups {
		indent := ""
		if g.RAID {
			sb.WriteString(fmt.Sprintf("%s%sRAID: %s%s\n", B, FOrg, g.Name, R))
			indent = "  "
		}
		for _, id := range g.Members {
			if rep, ok := snap.Devices[id]; ok {
				renderDeviceBox(&sb, rep, indent)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("%sNext update in %ds... (Ctrl+C to quit)%s\n",
		D, int(interval.Seconds()), R))
	return sb.String()
}

// runWatch runs the plain-terminal refresh loop until interrupted or the
// iteration count is reached. Interrupt exits cleanly with status 0.
func runWatch(eng *engine.Engine, opts Options) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	iterations := 0
	for {
		snap := eng.Tick(context.Background())
		clearScreen()
		fmt.Print(renderWatch(snap, opts.Interval))

		iterations++
		if opts.WatchCount > 0 && iterations >= opts.WatchCount {
			return nil
		}

		select {
		case <-sig:
			fmt.Println("\nMonitoring stopped.")
			return nil
		case <-ticker.C:
		}
	}
}
