package charts

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func testClasses() []ClassRecord {
	return []ClassRecord{
		{ID: 1, Name: "Compact", KeyName: "compact", Color: "#2563eb"},
		{ID: 2, Name: "Van", KeyName: "van", Color: "#16a34a"},
	}
}

func TestHistoricalMonthlyBuckets(t *testing.T) {
	vehicles := []VehicleRecord{
		{ID: 1, VehicleClassID: 1, RegisteredAt: date(2022, time.June, 1)},
		{ID: 2, VehicleClassID: 1, RegisteredAt: date(2022, time.June, 1)},
		{ID: 3, VehicleClassID: 2, RegisteredAt: date(2022, time.June, 1)},
	}
	rentals := []RentalRecord{
		// covers the January boundary only
		{VehicleID: 1, VehicleClassID: 1, StartDate: date(2023, time.January, 10), EndDate: datePtr(2023, time.February, 2)},
		// open-ended, covers every boundary from February on
		{VehicleID: 3, VehicleClassID: 2, StartDate: date(2023, time.February, 5)},
	}

	result, err := BuildHistorical(HistoricalInput{
		Rentals:  rentals,
		Vehicles: vehicles,
		Classes:  testClasses(),
		From:     date(2023, time.January, 1),
		To:       date(2023, time.April, 1),
	})
	if err != nil {
		t.Fatalf("BuildHistorical: %v", err)
	}

	if len(result.ChartData) != 3 {
		t.Fatalf("expected 3 periods, got %d", len(result.ChartData))
	}
	if len(result.VehicleClasses) != 2 {
		t.Fatalf("expected 2 classes in result, got %d", len(result.VehicleClasses))
	}

	wantLabels := []string{"Jan '23", "Feb '23", "Mar '23"}
	wantKeys := []string{"2023-01", "2023-02", "2023-03"}
	wantRented := []int{1, 1, 1}
	wantCompact := []int{1, 0, 0}
	wantVan := []int{0, 1, 1}

	for i, p := range result.ChartData {
		if p.Label != wantLabels[i] {
			t.Fatalf("period %d: label %q, want %q", i, p.Label, wantLabels[i])
		}
		if p.DateKey != wantKeys[i] {
			t.Fatalf("period %d: date key %q, want %q", i, p.DateKey, wantKeys[i])
		}
		if p.TotalFleet != 3 {
			t.Fatalf("period %d: fleet %d, want 3", i, p.TotalFleet)
		}
		if p.TotalRented != wantRented[i] {
			t.Fatalf("period %d: rented %d, want %d", i, p.TotalRented, wantRented[i])
		}
		if p.RentedByClass["compact"] != wantCompact[i] || p.RentedByClass["van"] != wantVan[i] {
			t.Fatalf("period %d: class split %v", i, p.RentedByClass)
		}
	}
}

// At every boundary totalStock must equal max(0, fleet-rented) and the class
// counts must partition totalRented.
func TestHistoricalInvariants(t *testing.T) {
	vehicles := []VehicleRecord{
		{ID: 1, VehicleClassID: 1, RegisteredAt: date(2022, time.January, 1)},
		{ID: 2, VehicleClassID: 2, RegisteredAt: date(2023, time.February, 15)},
	}
	rentals := []RentalRecord{
		{VehicleID: 1, VehicleClassID: 1, StartDate: date(2023, time.January, 1)},
		{VehicleID: 2, VehicleClassID: 2, StartDate: date(2023, time.February, 20), EndDate: datePtr(2023, time.March, 10)},
	}

	result, err := BuildHistorical(HistoricalInput{
		Rentals:  rentals,
		Vehicles: vehicles,
		Classes:  testClasses(),
		From:     date(2023, time.January, 1),
		To:       date(2023, time.May, 1),
	})
	if err != nil {
		t.Fatalf("BuildHistorical: %v", err)
	}

	for i, p := range result.ChartData {
		wantStock := p.TotalFleet - p.TotalRented
		if wantStock < 0 {
			wantStock = 0
		}
		if p.TotalStock != wantStock {
			t.Fatalf("period %d: stock %d, want %d", i, p.TotalStock, wantStock)
		}

		classSum := 0
		for _, n := range p.RentedByClass {
			classSum += n
		}
		if classSum != p.TotalRented {
			t.Fatalf("period %d: class counts sum to %d, rented is %d", i, classSum, p.TotalRented)
		}
	}
}

func TestHistoricalStockClampedAtZero(t *testing.T) {
	// Vehicle registered after the boundary but its rental already counted:
	// fleet 0, rented 1 -> stock clamps to 0 instead of going negative.
	vehicles := []VehicleRecord{
		{ID: 1, VehicleClassID: 1, RegisteredAt: date(2023, time.March, 1)},
	}
	rentals := []RentalRecord{
		{VehicleID: 1, VehicleClassID: 1, StartDate: date(2023, time.January, 1)},
	}

	result, err := BuildHistorical(HistoricalInput{
		Rentals:  rentals,
		Vehicles: vehicles,
		Classes:  testClasses(),
		From:     date(2023, time.January, 1),
		To:       date(2023, time.February, 1),
	})
	if err != nil {
		t.Fatalf("BuildHistorical: %v", err)
	}

	p := result.ChartData[0]
	if p.TotalFleet != 0 || p.TotalRented != 1 {
		t.Fatalf("unexpected counts: fleet %d rented %d", p.TotalFleet, p.TotalRented)
	}
	if p.TotalStock != 0 {
		t.Fatalf("stock %d, want clamped 0", p.TotalStock)
	}
}

// A rental ending exactly on a period boundary still counts as rented at that
// boundary, and no longer at the next one.
func TestHistoricalInclusiveEndBoundary(t *testing.T) {
	vehicles := []VehicleRecord{
		{ID: 1, VehicleClassID: 1, RegisteredAt: date(2022, time.January, 1)},
	}
	rentals := []RentalRecord{
		// January's boundary instant is Jan 31 00:00
		{VehicleID: 1, VehicleClassID: 1, StartDate: date(2023, time.January, 10), EndDate: datePtr(2023, time.January, 31)},
	}

	result, err := BuildHistorical(HistoricalInput{
		Rentals:  rentals,
		Vehicles: vehicles,
		Classes:  testClasses(),
		From:     date(2023, time.January, 1),
		To:       date(2023, time.March, 1),
	})
	if err != nil {
		t.Fatalf("BuildHistorical: %v", err)
	}

	if got := result.ChartData[0].TotalRented; got != 1 {
		t.Fatalf("January rented %d, want 1 (inclusive end)", got)
	}
	if got := result.ChartData[1].TotalRented; got != 0 {
		t.Fatalf("February rented %d, want 0", got)
	}
}

// Zero vehicles with configured classes still yields labelled periods with
// all-zero counts, not an empty chart.
func TestHistoricalZeroVehiclesStillEmitsPeriods(t *testing.T) {
	classes := []ClassRecord{
		{ID: 1, Name: "Compact", KeyName: "compact"},
		{ID: 2, Name: "Van", KeyName: "van"},
		{ID: 3, Name: "Luxury", KeyName: "luxury"},
	}

	result, err := BuildHistorical(HistoricalInput{
		Classes: classes,
		From:    date(2023, time.January, 1),
		To:      date(2023, time.April, 1),
	})
	if err != nil {
		t.Fatalf("BuildHistorical: %v", err)
	}

	if len(result.ChartData) != 3 {
		t.Fatalf("expected 3 periods, got %d", len(result.ChartData))
	}
	for i, p := range result.ChartData {
		if p.TotalFleet != 0 || p.TotalRented != 0 || p.TotalStock != 0 {
			t.Fatalf("period %d: expected all-zero counts, got %+v", i, p)
		}
		if len(p.RentedByClass) != 3 {
			t.Fatalf("period %d: expected 3 zero class entries, got %v", i, p.RentedByClass)
		}
		for key, n := range p.RentedByClass {
			if n != 0 {
				t.Fatalf("period %d: class %s count %d, want 0", i, key, n)
			}
		}
	}
}

func TestHistoricalNoClassesYieldsEmptyResult(t *testing.T) {
	result, err := BuildHistorical(HistoricalInput{
		Vehicles: []VehicleRecord{{ID: 1, VehicleClassID: 1, RegisteredAt: date(2022, time.January, 1)}},
		From:     date(2023, time.January, 1),
		To:       date(2023, time.April, 1),
	})
	if err != nil {
		t.Fatalf("BuildHistorical: %v", err)
	}
	if len(result.ChartData) != 0 || len(result.VehicleClasses) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestHistoricalInvalidRange(t *testing.T) {
	for _, to := range []time.Time{date(2023, time.January, 1), date(2022, time.December, 1)} {
		_, err := BuildHistorical(HistoricalInput{
			Classes: testClasses(),
			From:    date(2023, time.January, 1),
			To:      to,
		})
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("to=%v: expected ErrInvalidRange, got %v", to, err)
		}
	}
}

// Rentals without a class id (or with an unknown one) are skipped rather than
// aborting the aggregation.
func TestHistoricalSkipsMalformedRentals(t *testing.T) {
	vehicles := []VehicleRecord{
		{ID: 1, VehicleClassID: 1, RegisteredAt: date(2022, time.January, 1)},
	}
	rentals := []RentalRecord{
		{VehicleID: 1, VehicleClassID: 0, StartDate: date(2023, time.January, 1)},  // no class
		{VehicleID: 1, VehicleClassID: 99, StartDate: date(2023, time.January, 1)}, // unknown class
		{VehicleID: 1, VehicleClassID: 1, StartDate: date(2023, time.January, 1)},
	}

	result, err := BuildHistorical(HistoricalInput{
		Rentals:  rentals,
		Vehicles: vehicles,
		Classes:  testClasses(),
		From:     date(2023, time.January, 1),
		To:       date(2023, time.February, 1),
	})
	if err != nil {
		t.Fatalf("BuildHistorical: %v", err)
	}

	if got := result.ChartData[0].TotalRented; got != 1 {
		t.Fatalf("rented %d, want 1 (malformed rows skipped)", got)
	}
}

func TestHistoricalFleetMembershipWindow(t *testing.T) {
	vehicles := []VehicleRecord{
		// in the fleet the whole range
		{ID: 1, VehicleClassID: 1, RegisteredAt: date(2022, time.January, 1)},
		// joins mid-range
		{ID: 2, VehicleClassID: 1, RegisteredAt: date(2023, time.February, 10)},
		// retired before the February boundary
		{ID: 3, VehicleClassID: 2, RegisteredAt: date(2022, time.January, 1), RetiredAt: datePtr(2023, time.February, 1)},
	}

	result, err := BuildHistorical(HistoricalInput{
		Vehicles: vehicles,
		Classes:  testClasses(),
		From:     date(2023, time.January, 1),
		To:       date(2023, time.March, 1),
	})
	if err != nil {
		t.Fatalf("BuildHistorical: %v", err)
	}

	if got := result.ChartData[0].TotalFleet; got != 2 {
		t.Fatalf("January fleet %d, want 2", got)
	}
	if got := result.ChartData[1].TotalFleet; got != 2 {
		t.Fatalf("February fleet %d, want 2 (one joined, one retired)", got)
	}
}

func TestHistoricalCustomFleetPolicy(t *testing.T) {
	vehicles := []VehicleRecord{
		{ID: 1, VehicleClassID: 1, RegisteredAt: date(2023, time.June, 1)},
	}

	result, err := BuildHistorical(HistoricalInput{
		Vehicles:  vehicles,
		Classes:   testClasses(),
		From:      date(2023, time.January, 1),
		To:        date(2023, time.February, 1),
		InFleetAt: func(VehicleRecord, time.Time) bool { return true },
	})
	if err != nil {
		t.Fatalf("BuildHistorical: %v", err)
	}

	if got := result.ChartData[0].TotalFleet; got != 1 {
		t.Fatalf("fleet %d, want 1 under the always-in policy", got)
	}
}

func TestHistoricalIdempotent(t *testing.T) {
	input := HistoricalInput{
		Rentals: []RentalRecord{
			{VehicleID: 1, VehicleClassID: 1, StartDate: date(2023, time.January, 5), EndDate: datePtr(2023, time.March, 3)},
		},
		Vehicles: []VehicleRecord{
			{ID: 1, VehicleClassID: 1, RegisteredAt: date(2022, time.January, 1)},
		},
		Classes: testClasses(),
		From:    date(2023, time.January, 1),
		To:      date(2023, time.April, 1),
	}

	first, err := BuildHistorical(input)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := BuildHistorical(input)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between identical runs:\n%+v\n%+v", first, second)
	}
}

func TestHistoricalWeeklyGranularity(t *testing.T) {
	vehicles := []VehicleRecord{
		{ID: 1, VehicleClassID: 1, RegisteredAt: date(2022, time.January, 1)},
	}

	// 2023-01-02 is a Monday
	result, err := BuildHistorical(HistoricalInput{
		Vehicles:    vehicles,
		Classes:     testClasses(),
		Granularity: GranularityWeek,
		From:        date(2023, time.January, 2),
		To:          date(2023, time.January, 16),
	})
	if err != nil {
		t.Fatalf("BuildHistorical: %v", err)
	}

	if len(result.ChartData) != 2 {
		t.Fatalf("expected 2 weekly periods, got %d", len(result.ChartData))
	}
	if result.ChartData[0].DateKey != "2023-01-02" || result.ChartData[1].DateKey != "2023-01-09" {
		t.Fatalf("unexpected weekly keys: %s, %s", result.ChartData[0].DateKey, result.ChartData[1].DateKey)
	}
}

// Class counts appear as top-level JSON fields alongside the fixed ones, which
// is the shape the frontend chart binds its series to.
func TestChartDataPointFlattensClassKeys(t *testing.T) {
	p := ChartDataPoint{
		Label:       "Jan '23",
		DateKey:     "2023-01",
		TotalFleet:  5,
		TotalRented: 2,
		TotalStock:  3,
		RentedByClass: map[string]int{
			"compact": 1,
			"van":     1,
		},
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded["label"] != "Jan '23" || decoded["date_key"] != "2023-01" {
		t.Fatalf("fixed fields wrong: %v", decoded)
	}
	if decoded["compact"] != float64(1) || decoded["van"] != float64(1) {
		t.Fatalf("class keys not flattened: %v", decoded)
	}
	if decoded["totalFleet"] != float64(5) || decoded["totalRented"] != float64(2) || decoded["totalStock"] != float64(3) {
		t.Fatalf("totals wrong: %v", decoded)
	}
	if _, ok := decoded["RentedByClass"]; ok {
		t.Fatalf("internal map leaked into JSON: %v", decoded)
	}
}
