// Package model defines the station and charger availability data shared by
// the parser, the uptime calculator and the output formatters.
package model

// Station is a group of chargers identified by a unique ID.
type Station struct {
	// ID is the station identifier.
	ID uint32 `json:"id" yaml:"id"`

	// ChargerIDs lists the chargers owned by the station in input order.
	ChargerIDs []uint32 `json:"charger_ids" yaml:"charger_ids"`
}

// AvailabilityReport records whether a charger was up during [Start, End).
type AvailabilityReport struct {
	ChargerID  uint32 `json:"charger_id" yaml:"charger_id"`
	StartNanos uint64 `json:"start_nanos" yaml:"start_nanos"`
	EndNanos   uint64 `json:"end_nanos" yaml:"end_nanos"`
	Up         bool   `json:"up" yaml:"up"`
}

// Duration returns the length of the reported interval in nanoseconds.
func (r AvailabilityReport) Duration() uint64 {
	return r.EndNanos - r.StartNanos
}

// StationData is the validated input document. It is never mutated after
// the parser returns it.
type StationData struct {
	Stations []Station
	Reports  []AvailabilityReport
}

// ChargerCount returns the total number of chargers across all stations.
func (d *StationData) ChargerCount() int {
	n := 0
	for _, s := range d.Stations {
		n += len(s.ChargerIDs)
	}
	return n
}

// ReportsByCharger groups reports by charger ID, preserving input order
// within each group.
func (d *StationData) ReportsByCharger() map[uint32][]AvailabilityReport {
	grouped := make(map[uint32][]AvailabilityReport)
	for _, r := range d.Reports {
		grouped[r.ChargerID] = append(grouped[r.ChargerID], r)
	}
	return grouped
}

// ChargerUptime is the per-charger breakdown behind a station percentage.
type ChargerUptime struct {
	ChargerID  uint32 `json:"charger_id" yaml:"charger_id"`
	Reports    int    `json:"reports" yaml:"reports"`
	UpNanos    uint64 `json:"up_nanos" yaml:"up_nanos"`
	TotalNanos uint64 `json:"total_nanos" yaml:"total_nanos"`
	Percentage int32  `json:"percentage" yaml:"percentage"`

	// Included is false when the charger has no reports or a zero-length
	// observation window. Excluded chargers do not count toward the average.
	Included bool `json:"included" yaml:"included"`
}

// StationUptimeResult is the computed uptime for one station.
type StationUptimeResult struct {
	StationID        uint32          `json:"station_id" yaml:"station_id"`
	UptimePercentage int32           `json:"uptime_percentage" yaml:"uptime_percentage"`
	Chargers         []ChargerUptime `json:"chargers,omitempty" yaml:"chargers,omitempty"`
}
