package charts

import (
	"encoding/json"
	"reflect"
	"testing"
)

func snapshotStatuses() []StatusRecord {
	return []StatusRecord{
		{ID: 1, Available: true},
		{ID: 2, Available: false}, // rented
		{ID: 3, Available: false}, // maintenance
	}
}

// Two classes of five vehicles each, three rented in A and one in B.
func TestSnapshotSplitsAvailability(t *testing.T) {
	classes := []ClassRecord{
		{ID: 1, Name: "Compact", KeyName: "compact", Color: "#2563eb"},
		{ID: 2, Name: "Van", KeyName: "van", Color: "#16a34a"},
	}

	var vehicles []VehicleRecord
	for i := 0; i < 5; i++ {
		status := uint(1)
		if i < 3 {
			status = 2
		}
		vehicles = append(vehicles, VehicleRecord{ID: uint(i + 1), VehicleClassID: 1, VehicleStatusID: status})
	}
	for i := 0; i < 5; i++ {
		status := uint(1)
		if i < 1 {
			status = 2
		}
		vehicles = append(vehicles, VehicleRecord{ID: uint(i + 6), VehicleClassID: 2, VehicleStatusID: status})
	}

	result := BuildSnapshot(vehicles, classes, snapshotStatuses())

	if len(result.ChartData) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.ChartData))
	}

	a := result.ChartData[0]
	if a.Total != 5 || a.Available != 2 || a.Unavailable != 3 {
		t.Fatalf("class A: %+v", a)
	}
	b := result.ChartData[1]
	if b.Total != 5 || b.Available != 4 || b.Unavailable != 1 {
		t.Fatalf("class B: %+v", b)
	}
	if result.GrandTotalAvailableVehicles != 6 {
		t.Fatalf("grand total %d, want 6", result.GrandTotalAvailableVehicles)
	}
}

func TestSnapshotInvariants(t *testing.T) {
	classes := []ClassRecord{
		{ID: 1, KeyName: "compact"},
		{ID: 2, KeyName: "van"},
		{ID: 3, KeyName: "luxury"},
	}
	vehicles := []VehicleRecord{
		{ID: 1, VehicleClassID: 1, VehicleStatusID: 1},
		{ID: 2, VehicleClassID: 1, VehicleStatusID: 3},
		{ID: 3, VehicleClassID: 2, VehicleStatusID: 2},
	}

	result := BuildSnapshot(vehicles, classes, snapshotStatuses())

	sumAvailable := 0
	for _, item := range result.ChartData {
		if item.Available+item.Unavailable != item.Total {
			t.Fatalf("class %s: available %d + unavailable %d != total %d",
				item.VehicleClassKey, item.Available, item.Unavailable, item.Total)
		}
		sumAvailable += item.Available
	}
	if result.GrandTotalAvailableVehicles != sumAvailable {
		t.Fatalf("grand total %d, want %d", result.GrandTotalAvailableVehicles, sumAvailable)
	}
}

// Classes with no vehicles still show up zero-filled so the dashboard can
// render "0 in stock" per category.
func TestSnapshotIncludesEmptyClasses(t *testing.T) {
	classes := []ClassRecord{
		{ID: 1, Name: "Compact", KeyName: "compact", Color: "#2563eb"},
		{ID: 2, Name: "Van", KeyName: "van", Color: "#16a34a"},
		{ID: 3, Name: "Luxury", KeyName: "luxury", Color: "#9333ea"},
	}

	result := BuildSnapshot(nil, classes, snapshotStatuses())

	if len(result.ChartData) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(result.ChartData))
	}
	for _, item := range result.ChartData {
		if item.Total != 0 || item.Available != 0 || item.Unavailable != 0 {
			t.Fatalf("expected zero-filled entry, got %+v", item)
		}
	}
	if result.GrandTotalAvailableVehicles != 0 {
		t.Fatalf("grand total %d, want 0", result.GrandTotalAvailableVehicles)
	}
	if len(result.VehicleClassIDToKeyName) != 3 || result.VehicleClassIDToKeyName[3] != "luxury" {
		t.Fatalf("key name map wrong: %v", result.VehicleClassIDToKeyName)
	}
}

func TestSnapshotNoClassesYieldsEmptyResult(t *testing.T) {
	result := BuildSnapshot([]VehicleRecord{{ID: 1, VehicleClassID: 1, VehicleStatusID: 1}}, nil, snapshotStatuses())

	if len(result.ChartData) != 0 {
		t.Fatalf("expected empty chart data, got %+v", result.ChartData)
	}
	if result.GrandTotalAvailableVehicles != 0 {
		t.Fatalf("grand total %d, want 0", result.GrandTotalAvailableVehicles)
	}
}

func TestSnapshotFillIsClassColor(t *testing.T) {
	classes := []ClassRecord{
		{ID: 1, Name: "Compact", KeyName: "compact", Color: "#2563eb"},
	}

	result := BuildSnapshot(nil, classes, nil)

	if result.ChartData[0].Fill != "#2563eb" {
		t.Fatalf("fill %q, want the class color", result.ChartData[0].Fill)
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	classes := []ClassRecord{{ID: 1, KeyName: "compact"}, {ID: 2, KeyName: "van"}}
	vehicles := []VehicleRecord{
		{ID: 1, VehicleClassID: 1, VehicleStatusID: 1},
		{ID: 2, VehicleClassID: 2, VehicleStatusID: 2},
	}

	first := BuildSnapshot(vehicles, classes, snapshotStatuses())
	second := BuildSnapshot(vehicles, classes, snapshotStatuses())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between identical runs:\n%+v\n%+v", first, second)
	}
}

// The id -> key name map must serialize with numeric-string keys, which is
// what the frontend store indexes by.
func TestSnapshotResultJSONShape(t *testing.T) {
	classes := []ClassRecord{{ID: 7, Name: "Van", KeyName: "van", Color: "#16a34a"}}

	raw, err := json.Marshal(BuildSnapshot(nil, classes, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		ChartData               []map[string]interface{} `json:"chartData"`
		VehicleClassIDToKeyName map[string]string        `json:"vehicleClassIdToKeyName"`
		GrandTotal              int                      `json:"grandTotalAvailableVehicles"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.VehicleClassIDToKeyName["7"] != "van" {
		t.Fatalf("key name map: %v", decoded.VehicleClassIDToKeyName)
	}
	item := decoded.ChartData[0]
	for _, field := range []string{"id", "label", "total", "available", "unavailable", "vehicle_class_key", "fill"} {
		if _, ok := item[field]; !ok {
			t.Fatalf("missing field %q in %v", field, item)
		}
	}
}
