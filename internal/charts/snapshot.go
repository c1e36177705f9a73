package charts

// StockSnapshotItem is one vehicle class in the point-in-time stock chart.
type StockSnapshotItem struct {
	ID              uint   `json:"id"`
	Label           string `json:"label"`
	Total           int    `json:"total"`
	Available       int    `json:"available"`
	Unavailable     int    `json:"unavailable"`
	VehicleClassKey string `json:"vehicle_class_key"`
	Fill            string `json:"fill"`
}

// SnapshotResult is the /vehicle-stock-chart response body.
type SnapshotResult struct {
	ChartData                   []StockSnapshotItem `json:"chartData"`
	VehicleClassIDToKeyName     map[uint]string     `json:"vehicleClassIdToKeyName"`
	GrandTotalAvailableVehicles int                 `json:"grandTotalAvailableVehicles"`
}

// BuildSnapshot counts vehicles per class and splits them into available and
// unavailable by their current status. Classes with no vehicles still get a
// zero-filled entry so the dashboard can show "0 in stock" per category.
func BuildSnapshot(vehicles []VehicleRecord, classes []ClassRecord, statuses []StatusRecord) *SnapshotResult {
	result := &SnapshotResult{
		ChartData:               []StockSnapshotItem{},
		VehicleClassIDToKeyName: map[uint]string{},
	}
	if len(classes) == 0 {
		return result
	}

	availableStatus := make(map[uint]bool, len(statuses))
	for _, st := range statuses {
		availableStatus[st.ID] = st.Available
	}

	totals := make(map[uint]int, len(classes))
	available := make(map[uint]int, len(classes))
	for _, v := range vehicles {
		if v.VehicleClassID == 0 {
			continue
		}
		totals[v.VehicleClassID]++
		if availableStatus[v.VehicleStatusID] {
			available[v.VehicleClassID]++
		}
	}

	for _, c := range classes {
		total := totals[c.ID]
		avail := available[c.ID]
		result.ChartData = append(result.ChartData, StockSnapshotItem{
			ID:              c.ID,
			Label:           c.Name,
			Total:           total,
			Available:       avail,
			Unavailable:     total - avail,
			VehicleClassKey: c.KeyName,
			Fill:            c.Color,
		})
		result.VehicleClassIDToKeyName[c.ID] = c.KeyName
		result.GrandTotalAvailableVehicles += avail
	}

	return result
}
