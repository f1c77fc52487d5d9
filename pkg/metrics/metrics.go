// Package metrics exports computed uptimes in the Prometheus text format so
// batch runs can be scraped through a node_exporter textfile collector.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ccollicutt/stationuptime/pkg/model"
)

// Exporter holds the uptime gauges on a private registry.
type Exporter struct {
	registry *prometheus.Registry

	stationUptime *prometheus.GaugeVec
	chargerUptime *prometheus.GaugeVec
	stations      prometheus.Gauge
	reports       prometheus.Gauge
}

// NewExporter registers the uptime collectors on a fresh registry.
func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		stationUptime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "station_uptime_percent",
			Help: "Average uptime percentage of the station's chargers",
		}, []string{"station_id"}),
		chargerUptime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "charger_uptime_percent",
			Help: "Uptime percentage of a charger over its observation window",
		}, []string{"station_id", "charger_id"}),
		stations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stationuptime_stations",
			Help: "Number of stations in the input",
		}),
		reports: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stationuptime_reports",
			Help: "Number of availability reports in the input",
		}),
	}
	e.registry.MustRegister(e.stationUptime, e.chargerUptime, e.stations, e.reports)
	return e
}

// Record sets the gauges from one run. Chargers excluded from the station
// average are not exported.
func (e *Exporter) Record(data *model.StationData, results []model.StationUptimeResult) {
	e.stations.Set(float64(len(data.Stations)))
	e.reports.Set(float64(len(data.Reports)))

	for _, r := range results {
		station := strconv.FormatUint(uint64(r.StationID), 10)
		e.stationUptime.WithLabelValues(station).Set(float64(r.UptimePercentage))
		for _, c := range r.Chargers {
			if !c.Included {
				continue
			}
			charger := strconv.FormatUint(uint64(c.ChargerID), 10)
			e.chargerUptime.WithLabelValues(station, charger).Set(float64(c.Percentage))
		}
	}
}

// WriteTextfile writes the current metrics to path. The file is replaced
// atomically.
func (e *Exporter) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, e.registry)
}

// Gatherer exposes the registry, mainly for tests.
func (e *Exporter) Gatherer() prometheus.Gatherer {
	return e.registry
}
