package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleet_rental/internal/charts"
	"fleet_rental/internal/config"
)

// Chart responses are cached with a freshness window so the dashboard can poll
// without re-aggregating on every hit. Only the default view goes through the
// cache; explicit from/to requests are computed directly.
var (
	rentalChartCache = charts.NewCache[*charts.HistoricalResult](charts.DefaultCacheTTL)
	stockChartCache  = charts.NewCache[*charts.SnapshotResult](charts.DefaultCacheTTL)
)

const chartDateLayout = "2006-01-02"

// RentalChart serves GET /rental-chart: the historical fleet/rented/stock
// series, bucketed by granularity (month by default, trailing 12 months).
func RentalChart(c *gin.Context) {
	gran := charts.Granularity(c.DefaultQuery("granularity", string(charts.GranularityMonth)))
	switch gran {
	case charts.GranularityDay, charts.GranularityWeek, charts.GranularityMonth:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "granularity must be day, week or month"})
		return
	}

	now := time.Now()
	defaultView := c.Query("from") == "" && c.Query("to") == ""

	// Default window: the trailing 12 months, current month included.
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	from := to.AddDate(-1, 0, 0)

	if !defaultView {
		var err error
		if from, err = time.Parse(chartDateLayout, c.Query("from")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be formatted as YYYY-MM-DD"})
			return
		}
		if to, err = time.Parse(chartDateLayout, c.Query("to")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be formatted as YYYY-MM-DD"})
			return
		}
	}
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": charts.ErrInvalidRange.Error()})
		return
	}

	build := func() (*charts.HistoricalResult, error) {
		return buildHistoricalChart(from, to, gran)
	}

	var result *charts.HistoricalResult
	var err error
	if defaultView && gran == charts.GranularityMonth {
		result, err = rentalChartCache.Get(now, build)
	} else {
		result, err = build()
	}
	if err != nil {
		logrus.WithError(err).Error("rental chart aggregation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load chart data."})
		return
	}

	c.JSON(http.StatusOK, result)
}

func buildHistoricalChart(from, to time.Time, gran charts.Granularity) (*charts.HistoricalResult, error) {
	src := charts.GormSource{DB: config.DB}

	rentals, err := src.Rentals(from, to)
	if err != nil {
		return nil, err
	}
	vehicles, err := src.Vehicles()
	if err != nil {
		return nil, err
	}
	classes, err := src.Classes()
	if err != nil {
		return nil, err
	}

	return charts.BuildHistorical(charts.HistoricalInput{
		Rentals:     rentals,
		Vehicles:    vehicles,
		Classes:     classes,
		Granularity: gran,
		From:        from,
		To:          to,
	})
}

// VehicleStockChart serves GET /vehicle-stock-chart: the point-in-time
// available/unavailable breakdown per vehicle class.
func VehicleStockChart(c *gin.Context) {
	result, err := stockChartCache.Get(time.Now(), func() (*charts.SnapshotResult, error) {
		src := charts.GormSource{DB: config.DB}

		vehicles, err := src.Vehicles()
		if err != nil {
			return nil, err
		}
		classes, err := src.Classes()
		if err != nil {
			return nil, err
		}
		statuses, err := src.Statuses()
		if err != nil {
			return nil, err
		}

		return charts.BuildSnapshot(vehicles, classes, statuses), nil
	})
	if err != nil {
		logrus.WithError(err).Error("vehicle stock aggregation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load chart data."})
		return
	}

	c.JSON(http.StatusOK, result)
}

// invalidateChartCaches is called by the write paths that change what the
// dashboards show.
func invalidateChartCaches() {
	rentalChartCache.Invalidate()
	stockChartCache.Invalidate()
}
