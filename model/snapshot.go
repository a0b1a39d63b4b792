package model

import "time"

// DeviceGroup is either a standalone device or a named RAID set. Membership
// is recomputed every cycle from the current inventory.
type DeviceGroup struct {
	RAID    bool
	Name    string // RAID set name; empty for standalone
	Members []DeviceID
}

// Standalone builds a single-device group.
func Standalone(id DeviceID) DeviceGroup {
	return DeviceGroup{Members: []DeviceID{id}}
}

// RAIDGroup builds a named group from member devices in declaration order.
func RAIDGroup(name string, members []DeviceID) DeviceGroup {
	return DeviceGroup{RAID: true, Name: name, Members: members}
}

// DeviceReport is the per-device view handed to presentation.
type DeviceReport struct {
	ID     DeviceID
	Attrs  DeviceAttributes
	Temp   TemperatureReading
	Rate   RateEstimate
	Sample *ThroughputSample // raw cumulative counter; nil if sampling failed
}

// Snapshot is the read-only result of one polling cycle.
type Snapshot struct {
	Timestamp time.Time
	Groups    []DeviceGroup
	Devices   map[DeviceID]DeviceReport
	Errors    []string
}

// DeviceCount returns the number of devices across all groups.
func (s *Snapshot) DeviceCount() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Members)
	}
	return n
}
