package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ftahirops/edtop/engine"
	"github.com/ftahirops/edtop/model"
)

type tickMsg time.Time

type collectMsg struct {
	snap *model.Snapshot
}

// Model is the bubbletea model.
type Model struct {
	ticker   engine.Ticker
	interval time.Duration
	width    int
	height   int

	snap    *model.Snapshot
	paused  bool
	compact bool
}

// NewModel creates a new TUI model.
func NewModel(ticker engine.Ticker, interval time.Duration, compact bool) Model {
	return Model{ticker: ticker, interval: interval, compact: compact}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), collectOnce(m.ticker))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func collectOnce(ticker engine.Ticker) tea.Cmd {
	return func() tea.Msg {
		return collectMsg{snap: ticker.Tick(context.Background())}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.paused = !m.paused
			if !m.paused {
				return m, tea.Batch(tick(m.interval), collectOnce(m.ticker))
			}
		case "c":
			m.compact = !m.compact
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		if m.paused {
			return m, nil
		}
		return m, tea.Batch(tick(m.interval), collectOnce(m.ticker))
	case collectMsg:
		m.snap = msg.snap
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	header := titleStyle.Render("External Disk Monitor")
	if m.snap != nil {
		header += dimStyle.Render("  " + m.snap.Timestamp.Format("2006-01-02 15:04:05"))
	}
	if m.paused {
		header += dimStyle.Render("  [paused]")
	}
	b.WriteString(header + "\n\n")

	b.WriteString(renderSnapshot(m.snap, m.compact))

	b.WriteString("\n\n" + helpStyle.Render(fmt.Sprintf(
		"q quit · a pause · c compact · refresh %ds", int(m.interval.Seconds()))))
	return b.String()
}
