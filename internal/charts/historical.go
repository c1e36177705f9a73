package charts

import (
	"encoding/json"
	"errors"
	"time"
)

// Granularity selects the period size of the historical series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ErrInvalidRange flags a zero-or-negative-length date range; callers must
// reject it before rendering, not swallow it as an empty chart.
var ErrInvalidRange = errors.New("chart range must end after it starts")

// HistoricalInput bundles the records and options for one series build.
type HistoricalInput struct {
	Rentals  []RentalRecord
	Vehicles []VehicleRecord
	Classes  []ClassRecord

	Granularity Granularity // defaults to GranularityMonth
	From, To    time.Time

	// InFleetAt overrides the fleet-membership policy at a boundary instant.
	// The default counts a vehicle from its registration date (inclusive)
	// until its retirement date (exclusive).
	InFleetAt func(VehicleRecord, time.Time) bool
}

// ChartDataPoint is one period bucket of the historical series. RentedByClass
// is keyed by class KeyName and is flattened into top-level JSON fields so the
// payload matches what the dashboard charts bind series to.
type ChartDataPoint struct {
	Label         string
	DateKey       string
	TotalFleet    int
	TotalRented   int
	TotalStock    int
	RentedByClass map[string]int
}

func (p ChartDataPoint) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 5+len(p.RentedByClass))
	out["label"] = p.Label
	out["date_key"] = p.DateKey
	out["totalFleet"] = p.TotalFleet
	out["totalRented"] = p.TotalRented
	out["totalStock"] = p.TotalStock
	for key, count := range p.RentedByClass {
		out[key] = count
	}
	return json.Marshal(out)
}

// HistoricalResult is the /rental-chart response body.
type HistoricalResult struct {
	ChartData      []ChartDataPoint `json:"chartData"`
	VehicleClasses []ClassRecord    `json:"vehicleClasses"`
}

// BuildHistorical walks [From, To) in Granularity-sized periods and evaluates
// fleet size, rented count and stock at each period's end boundary. Periods
// with no activity still appear with zero counts. With no classes configured
// there is nothing to chart, so the result is empty rather than an error.
func BuildHistorical(in HistoricalInput) (*HistoricalResult, error) {
	if !in.To.After(in.From) {
		return nil, ErrInvalidRange
	}

	if len(in.Classes) == 0 {
		return &HistoricalResult{ChartData: []ChartDataPoint{}, VehicleClasses: []ClassRecord{}}, nil
	}

	gran := in.Granularity
	if gran == "" {
		gran = GranularityMonth
	}

	inFleet := in.InFleetAt
	if inFleet == nil {
		inFleet = defaultInFleetAt
	}

	classKeys := make(map[uint]string, len(in.Classes))
	for _, c := range in.Classes {
		classKeys[c.ID] = c.KeyName
	}

	var points []ChartDataPoint
	for start := truncateToPeriod(in.From, gran); start.Before(in.To); start = nextPeriod(start, gran) {
		boundary := periodBoundary(start, gran)

		fleet := 0
		for _, v := range in.Vehicles {
			if v.RegisteredAt.IsZero() {
				continue // malformed row, degrade instead of blanking the chart
			}
			if inFleet(v, boundary) {
				fleet++
			}
		}

		rented := 0
		byClass := make(map[string]int, len(in.Classes))
		for _, key := range classKeys {
			byClass[key] = 0
		}
		for _, r := range in.Rentals {
			key, known := classKeys[r.VehicleClassID]
			if r.VehicleClassID == 0 || !known {
				continue
			}
			if rentedAt(r, boundary) {
				rented++
				byClass[key]++
			}
		}

		stock := fleet - rented
		if stock < 0 {
			stock = 0
		}

		points = append(points, ChartDataPoint{
			Label:         periodLabel(start, gran),
			DateKey:       periodDateKey(start, gran),
			TotalFleet:    fleet,
			TotalRented:   rented,
			TotalStock:    stock,
			RentedByClass: byClass,
		})
	}

	if points == nil {
		points = []ChartDataPoint{}
	}

	classes := make([]ClassRecord, len(in.Classes))
	copy(classes, in.Classes)

	return &HistoricalResult{ChartData: points, VehicleClasses: classes}, nil
}

// rentedAt reports whether the rental interval covers the boundary instant.
// An end date equal to the boundary still counts as rented (inclusive end).
func rentedAt(r RentalRecord, boundary time.Time) bool {
	if r.StartDate.After(boundary) {
		return false
	}
	return r.EndDate == nil || !r.EndDate.Before(boundary)
}

func defaultInFleetAt(v VehicleRecord, t time.Time) bool {
	if v.RegisteredAt.After(t) {
		return false
	}
	return v.RetiredAt == nil || v.RetiredAt.After(t)
}

func truncateToPeriod(t time.Time, g Granularity) time.Time {
	switch g {
	case GranularityWeek:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		// back up to Monday
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case GranularityDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
}

func nextPeriod(start time.Time, g Granularity) time.Time {
	switch g {
	case GranularityWeek:
		return start.AddDate(0, 0, 7)
	case GranularityDay:
		return start.AddDate(0, 0, 1)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// periodBoundary is the instant counts are evaluated at: midnight of the
// period's last day.
func periodBoundary(start time.Time, g Granularity) time.Time {
	switch g {
	case GranularityDay:
		return start
	default:
		return nextPeriod(start, g).AddDate(0, 0, -1)
	}
}

func periodLabel(start time.Time, g Granularity) string {
	switch g {
	case GranularityWeek, GranularityDay:
		return start.Format("Jan 2")
	default:
		return start.Format("Jan '06")
	}
}

func periodDateKey(start time.Time, g Granularity) string {
	switch g {
	case GranularityWeek, GranularityDay:
		return start.Format("2006-01-02")
	default:
		return start.Format("2006-01")
	}
}
