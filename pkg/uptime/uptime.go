// Package uptime computes per-station uptime percentages from validated
// charger availability data.
package uptime

import (
	"math/bits"

	"github.com/ccollicutt/stationuptime/pkg/model"
)

// Percentage returns floor(up*100/total) using exact 128-bit integer
// arithmetic. total must be non-zero. up is clamped to total.
func Percentage(up, total uint64) int32 {
	if up >= total {
		return 100
	}
	hi, lo := bits.Mul64(up, 100)
	q, _ := bits.Div64(hi, lo, total)
	return int32(q)
}

// ChargerUptime summarizes one charger's reports. The observation window
// runs from the earliest start to the end of the latest-starting report;
// gaps between reports count as downtime.
func ChargerUptime(chargerID uint32, reports []model.AvailabilityReport) model.ChargerUptime {
	cu := model.ChargerUptime{ChargerID: chargerID, Reports: len(reports)}
	if len(reports) == 0 {
		return cu
	}

	sorted := model.SortedByStart(reports)
	first := sorted[0].StartNanos
	last := sorted[len(sorted)-1].EndNanos
	cu.TotalNanos = last - first

	for _, r := range sorted {
		if r.Up {
			cu.UpNanos += r.Duration()
		}
	}

	if cu.TotalNanos > 0 {
		cu.Percentage = Percentage(cu.UpNanos, cu.TotalNanos)
		cu.Included = true
	}
	return cu
}

// StationUptime averages the included charger percentages with truncating
// integer division. A station with no included charger scores 0.
func StationUptime(chargers []model.ChargerUptime) int32 {
	var sum, count int64
	for _, c := range chargers {
		if !c.Included {
			continue
		}
		sum += int64(c.Percentage)
		count++
	}
	if count == 0 {
		return 0
	}
	return int32(sum / count)
}
