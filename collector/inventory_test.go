package collector

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ftahirops/edtop/model"
)

// fakeRunner serves canned tool output keyed by the full command line.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	missing map[string]bool
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	if err, ok := f.errs[key]; ok {
		// Output and error can coexist, as with smartctl's non-zero exits.
		return []byte(f.outputs[key]), err
	}
	out, ok := f.outputs[key]
	if !ok {
		return nil, errors.New("command failed: " + key)
	}
	return []byte(out), nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/sbin/" + name, nil
}

func TestParseExternalDisks(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []model.DeviceID
	}{
		{
			"internal and external mixed",
			`/dev/disk0 (internal, physical):
   0:      GUID_partition_scheme                        *500.3 GB   disk0
/dev/disk4 (external, physical):
   0:     FDisk_partition_scheme                        *2.0 TB     disk4
/dev/disk5 (external, physical):
   0:      GUID_partition_scheme                        *4.0 TB     disk5
`,
			[]model.DeviceID{"disk4", "disk5"},
		},
		{
			"synthesized images excluded",
			`/dev/disk6 (synthesized):
   0:      APFS Container Scheme -                      +2.0 TB     disk6
`,
			nil,
		},
		{"empty output", "", nil},
		{
			"external marker without device node",
			"something external, physical but no token\n",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseExternalDisks(tt.out)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseExternalDisks() = %v, want %v", got, tt.want)
			}
		})
	}
}

const appleRAIDOut = `AppleRAID sets (1 found)
===============================================================================
Name:                 Media Vault
Unique ID:            8A111111-2222-3333-4444-555555555555
Type:                 Stripe
Status:               Online
Size:                 4.0 TB
Device Node:          disk7

#  DevNode   UUID                                  Status     Size
-------------------------------------------------------------------------------
0  disk4s2   11111111-1111-1111-1111-111111111111  Online     2000398934016
1  disk5s2   22222222-2222-2222-2222-222222222222  Online     2000398934016
===============================================================================
`

func TestParseRAIDSets(t *testing.T) {
	got := parseRAIDSets(appleRAIDOut)
	want := []RAIDSet{{Name: "Media Vault", Members: []model.DeviceID{"disk4", "disk5"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseRAIDSets() = %+v, want %+v", got, want)
	}
}

func TestParseRAIDSetsMultiple(t *testing.T) {
	out := `Name:                 Alpha
0  disk2s2   aaaa  Online  1
1  disk3s2   bbbb  Online  1
Name:                 Beta
0  disk6s2   cccc  Online  1
Name:                 Empty
`
	got := parseRAIDSets(out)
	want := []RAIDSet{
		{Name: "Alpha", Members: []model.DeviceID{"disk2", "disk3"}},
		{Name: "Beta", Members: []model.DeviceID{"disk6"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseRAIDSets() = %+v, want %+v", got, want)
	}
}

func TestGroupDevices(t *testing.T) {
	tests := []struct {
		name    string
		devices []model.DeviceID
		sets    []RAIDSet
		want    []model.DeviceGroup
	}{
		{
			"single standalone, no raid data",
			[]model.DeviceID{"disk4"},
			nil,
			[]model.DeviceGroup{model.Standalone("disk4")},
		},
		{
			"raid members grouped, rest standalone",
			[]model.DeviceID{"disk4", "disk5", "disk6"},
			[]RAIDSet{{Name: "Vault", Members: []model.DeviceID{"disk5", "disk4"}}},
			[]model.DeviceGroup{
				model.RAIDGroup("Vault", []model.DeviceID{"disk5", "disk4"}),
				model.Standalone("disk6"),
			},
		},
		{
			"raid with no external members omitted",
			[]model.DeviceID{"disk4"},
			[]RAIDSet{{Name: "Ghost", Members: []model.DeviceID{"disk8", "disk9"}}},
			[]model.DeviceGroup{model.Standalone("disk4")},
		},
		{
			"raid member not external excluded from group",
			[]model.DeviceID{"disk4", "disk5"},
			[]RAIDSet{{Name: "Vault", Members: []model.DeviceID{"disk4", "disk9"}}},
			[]model.DeviceGroup{
				model.RAIDGroup("Vault", []model.DeviceID{"disk4"}),
				model.Standalone("disk5"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupDevices(tt.devices, tt.sets)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("groupDevices() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGroupDevicesIdempotent(t *testing.T) {
	devices := []model.DeviceID{"disk3", "disk4", "disk5"}
	sets := []RAIDSet{{Name: "Vault", Members: []model.DeviceID{"disk5", "disk3"}}}

	first := groupDevices(devices, sets)
	second := groupDevices(devices, sets)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("groupDevices not deterministic: %+v vs %+v", first, second)
	}
}

func TestGroupDevicesViaRunner(t *testing.T) {
	run := &fakeRunner{
		outputs: map[string]string{
			"diskutil list": `/dev/disk4 (external, physical):
   0:     FDisk_partition_scheme                        *2.0 TB     disk4
`,
		},
		errs: map[string]error{
			"diskutil appleRAID list": errors.New("not supported"),
		},
	}

	inv := NewInventory(run)
	got := inv.GroupDevices(context.Background())
	want := []model.DeviceGroup{model.Standalone("disk4")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GroupDevices() = %+v, want %+v", got, want)
	}
}

func TestGroupDevicesInventoryFailure(t *testing.T) {
	run := &fakeRunner{
		errs: map[string]error{"diskutil list": errors.New("boom")},
	}

	inv := NewInventory(run)
	if got := inv.GroupDevices(context.Background()); got != nil {
		t.Errorf("GroupDevices() = %+v, want nil on failure", got)
	}
}
