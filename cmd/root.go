package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ftahirops/edtop/collector"
	"github.com/ftahirops/edtop/config"
	"github.com/ftahirops/edtop/engine"
	"github.com/ftahirops/edtop/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Options holds CLI configuration after flags and config file are merged.
type Options struct {
	Interval   time.Duration
	WatchMode  bool
	WatchCount int
	JSONMode   bool
	Compact    bool
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `edtop v%s — external disk temperature & throughput monitor

Usage:
  edtop [OPTIONS] [INTERVAL]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            CLI output mode — prints to terminal with auto-refresh
  -json             Single JSON snapshot to stdout, then exit
  -version          Print version and exit

Options:
  -interval N       Polling interval in seconds (default: 2)
  -count N          Number of iterations for -watch mode (0 = infinite)
  -compact          Start the TUI in compact layout

Positional:
  INTERVAL          First positional arg sets interval: edtop 5 = edtop -interval 5

Notes:
  Temperature readings require smartctl (brew install smartmontools) and may
  need elevated privilege; missing tooling degrades to "N/A", never an error.

Examples:
  edtop                     Interactive TUI, 2s refresh
  edtop 5                   Interactive TUI, 5s refresh
  edtop -watch              Terminal refresh mode
  edtop -watch -count 10    Ten iterations, then exit
  edtop -json | jq .
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	cfg := config.Load()

	var opts Options
	var intervalSec int
	var showVersion bool

	flag.IntVar(&intervalSec, "interval", cfg.IntervalSec, "Polling interval in seconds")
	flag.BoolVar(&opts.WatchMode, "watch", false, "CLI output mode (no TUI, prints to terminal)")
	flag.IntVar(&opts.WatchCount, "count", 0, "Number of iterations for -watch (0=infinite)")
	flag.BoolVar(&opts.JSONMode, "json", false, "Output a single JSON snapshot and exit")
	flag.BoolVar(&opts.Compact, "compact", cfg.Compact, "Start the TUI in compact layout")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("edtop v%s\n", Version)
		return nil
	}

	// Support positional arg for interval: `edtop 5` = `edtop -interval 5`
	if args := flag.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			intervalSec = n
		}
	}
	if intervalSec <= 0 {
		intervalSec = config.Default().IntervalSec
	}
	opts.Interval = time.Duration(intervalSec) * time.Second

	eng := engine.NewEngine(collector.NewRunner())

	if opts.JSONMode {
		return runJSON(eng, opts.Interval)
	}
	if opts.WatchMode {
		return runWatch(eng, opts)
	}

	model := ui.NewModel(eng, opts.Interval, opts.Compact)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
