package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/ftahirops/edtop/model"
)

// shortName truncates a device name for the compact layout.
func shortName(name string, max int) string {
	if len(name) > max {
		return name[:max-3] + "..."
	}
	return name
}

// renderTemp formats a temperature reading with threshold coloring.
func renderTemp(t model.TemperatureReading) string {
	if t.Kind == model.TempCelsius {
		return tempStyle(t.Celsius).Render(t.String())
	}
	return dimStyle.Render(t.String())
}

// renderRate formats a rate estimate; only active rates get emphasis.
func renderRate(r model.RateEstimate) string {
	if r.Kind == model.RateActive {
		return valueStyle.Render(r.String())
	}
	return dimStyle.Render(r.String())
}

// renderDevicePanel renders one standalone device as a full panel.
func renderDevicePanel(rep model.DeviceReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(rep.ID.Dev()) + "\n")
	b.WriteString(labelStyle.Render("Name:  ") + valueStyle.Render(rep.Attrs.Name) + "\n")
	b.WriteString(labelStyle.Render("Size:  ") + valueStyle.Render(rep.Attrs.Size) + "\n")
	b.WriteString(labelStyle.Render("Temp:  ") + renderTemp(rep.Temp) + "\n")
	b.WriteString(labelStyle.Render("Speed: ") + renderRate(rep.Rate))
	if rep.Sample != nil {
		b.WriteString("\n" + labelStyle.Render("Moved: ") +
			dimStyle.Render(humanize.CommafWithDigits(rep.Sample.TotalMB, 0)+" MB"))
	}
	return panelStyle.Render(b.String())
}

// renderRAIDPanel renders a RAID group with one row per member.
func renderRAIDPanel(g model.DeviceGroup, devices map[model.DeviceID]model.DeviceReport) string {
	var b strings.Builder
	b.WriteString(raidTitleStyle.Render("RAID: "+g.Name) + "\n")
	for _, id := range g.Members {
		rep, ok := devices[id]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			valueStyle.Render("• "+shortName(rep.Attrs.Name, 24)),
			renderTemp(rep.Temp),
			renderRate(rep.Rate)))
	}
	return raidPanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderCompactLine renders one device as a single line (widget mode).
func renderCompactLine(rep model.DeviceReport, indent string) string {
	return fmt.Sprintf("%s%s  %s  %s",
		indent,
		valueStyle.Render(shortName(rep.Attrs.Name, 14)),
		renderTemp(rep.Temp),
		renderRate(rep.Rate))
}

// renderSnapshot renders a full snapshot for the TUI.
func renderSnapshot(snap *model.Snapshot, compact bool) string {
	if snap == nil {
		return dimStyle.Render("Collecting...")
	}
	if len(snap.Groups) == 0 {
		return dimStyle.Render("No external disks found.")
	}

	var sections []string
	for _, g := range snap.Groups {
		if compact {
			var b strings.Builder
			if g.RAID {
				b.WriteString(raidTitleStyle.Render(g.Name) + "\n")
			}
			indent := ""
			if g.RAID {
				indent = "  "
			}
			for _, id := range g.Members {
				if rep, ok := snap.Devices[id]; ok {
					b.WriteString(renderCompactLine(rep, indent) + "\n")
				}
			}
			sections = append(sections, strings.TrimRight(b.String(), "\n"))
			continue
		}
		if g.RAID {
			sections = append(sections, renderRAIDPanel(g, snap.Devices))
		} else {
			for _, id := range g.Members {
				if rep, ok := snap.Devices[id]; ok {
					sections = append(sections, renderDevicePanel(rep))
				}
			}
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
