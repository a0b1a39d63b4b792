package collector

import (
	"context"
	"regexp"
	"strings"

	"github.com/ftahirops/edtop/model"
	"github.com/ftahirops/edtop/util"
)

// Inventory enumerates external devices and their RAID memberships by
// scraping diskutil. Every failure degrades to an empty result; a cycle
// with no data shows "no external disks" rather than crashing.
type Inventory struct {
	run Runner
}

// NewInventory creates an inventory collector over the given runner.
func NewInventory(run Runner) *Inventory {
	return &Inventory{run: run}
}

var devicePattern = regexp.MustCompile(`/dev/(disk\d+)`)

// ListExternalDevices returns the external physical devices currently
// attached, in diskutil's reporting order. Nil on any failure.
func (inv *Inventory) ListExternalDevices(ctx context.Context) []model.DeviceID {
	ctx, cancel := context.WithTimeout(ctx, DiskutilTimeout)
	defer cancel()

	out, err := inv.run.Output(ctx, "diskutil", "list")
	if err != nil {
		return nil
	}
	return parseExternalDisks(string(out))
}

// parseExternalDisks extracts device tokens from `diskutil list` output.
// Only whole devices marked "external, physical" count.
func parseExternalDisks(out string) []model.DeviceID {
	var disks []model.DeviceID
	for _, line := range util.Lines(out) {
		if !strings.Contains(line, "external, physical") {
			continue
		}
		if m := devicePattern.FindStringSubmatch(line); m != nil {
			disks = append(disks, model.DeviceID(m[1]))
		}
	}
	return disks
}

// RAIDSet is one RAID declaration: a name and its member devices in the
// order the volume manager lists them.
type RAIDSet struct {
	Name    string
	Members []model.DeviceID
}

var raidMemberPattern = regexp.MustCompile(`^\d+\s+(disk\d+)`)

// ListRAIDMemberships returns the declared RAID sets in declaration order.
// Nil on any failure (including no RAID support on the host).
func (inv *Inventory) ListRAIDMemberships(ctx context.Context) []RAIDSet {
	ctx, cancel := context.WithTimeout(ctx, DiskutilTimeout)
	defer cancel()

	out, err := inv.run.Output(ctx, "diskutil", "appleRAID", "list")
	if err != nil {
		return nil
	}
	return parseRAIDSets(string(out))
}

// parseRAIDSets extracts RAID declarations from `diskutil appleRAID list`
// output: a "Name:" header line followed by numbered member rows.
func parseRAIDSets(out string) []RAIDSet {
	var sets []RAIDSet
	var current *RAIDSet
	for _, line := range util.Lines(out) {
		if strings.Contains(line, "Name:") {
			if current != nil && len(current.Members) > 0 {
				sets = append(sets, *current)
			}
			name := strings.TrimSpace(line[strings.Index(line, "Name:")+len("Name:"):])
			current = &RAIDSet{Name: name}
			continue
		}
		if current == nil {
			continue
		}
		if m := raidMemberPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			current.Members = append(current.Members, model.DeviceID(m[1]))
		}
	}
	if current != nil && len(current.Members) > 0 {
		sets = append(sets, *current)
	}
	return sets
}

// GroupDevices partitions the current external devices against RAID
// memberships. A device appearing in both a RAID's member list and the
// external list joins that RAID group, preserving declaration order; every
// other external device becomes standalone. RAID sets with no
// currently-external member are omitted.
func (inv *Inventory) GroupDevices(ctx context.Context) []model.DeviceGroup {
	devices := inv.ListExternalDevices(ctx)
	if len(devices) == 0 {
		return nil
	}
	sets := inv.ListRAIDMemberships(ctx)
	return groupDevices(devices, sets)
}

func groupDevices(devices []model.DeviceID, sets []RAIDSet) []model.DeviceGroup {
	external := make(map[model.DeviceID]bool, len(devices))
	for _, d := range devices {
		external[d] = true
	}

	var groups []model.DeviceGroup
	claimed := make(map[model.DeviceID]bool)
	for _, set := range sets {
		var members []model.DeviceID
		for _, d := range set.Members {
			if external[d] {
				members = append(members, d)
				claimed[d] = true
			}
		}
		if len(members) > 0 {
			groups = append(groups, model.RAIDGroup(set.Name, members))
		}
	}
	for _, d := range devices {
		if !claimed[d] {
			groups = append(groups, model.Standalone(d))
		}
	}
	return groups
}
