// Package output provides formatting and output generation for uptime results.
package output

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ccollicutt/stationuptime/pkg/model"
)

// Report is the complete run output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Results holds one entry per station, ascending by station ID.
	Results []model.StationUptimeResult `json:"results" yaml:"results"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	Stations int `json:"stations" yaml:"stations"`
	Chargers int `json:"charger_count" yaml:"charger_count"`
	Reports  int `json:"reports" yaml:"reports"`

	// Warnings is the number of non-fatal validation findings.
	Warnings int `json:"warnings" yaml:"warnings"`

	// MeanUptime and StdDevUptime describe the station percentages. The
	// standard deviation is the population one.
	MeanUptime   float64 `json:"mean_uptime" yaml:"mean_uptime"`
	StdDevUptime float64 `json:"stddev_uptime" yaml:"stddev_uptime"`
	MinUptime    int32   `json:"min_uptime" yaml:"min_uptime"`
	MaxUptime    int32   `json:"max_uptime" yaml:"max_uptime"`
}

// Metadata provides context about the run.
type Metadata struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id" yaml:"run_id"`

	// InputFile is the path of the document that was processed.
	InputFile string `json:"input_file" yaml:"input_file"`

	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// DurationMillis is how long parsing and calculation took.
	DurationMillis int64 `json:"duration_ms" yaml:"duration_ms"`
}

// NewReport creates a Report from calculated results. Results are copied
// and sorted ascending by station ID.
func NewReport(data *model.StationData, results []model.StationUptimeResult, inputFile string, warnings int, started time.Time) *Report {
	sorted := SortByStation(results)
	now := time.Now()

	return &Report{
		Results: sorted,
		Summary: summarize(data, sorted, warnings),
		Metadata: Metadata{
			RunID:          uuid.NewString(),
			InputFile:      inputFile,
			GeneratedAt:    now,
			DurationMillis: now.Sub(started).Milliseconds(),
		},
	}
}

// SortByStation returns a copy of results ordered by ascending station ID.
func SortByStation(results []model.StationUptimeResult) []model.StationUptimeResult {
	sorted := slices.Clone(results)
	slices.SortFunc(sorted, func(a, b model.StationUptimeResult) int {
		return cmp.Compare(a.StationID, b.StationID)
	})
	return sorted
}

func summarize(data *model.StationData, results []model.StationUptimeResult, warnings int) Summary {
	s := Summary{Warnings: warnings}
	if data != nil {
		s.Stations = len(data.Stations)
		s.Chargers = data.ChargerCount()
		s.Reports = len(data.Reports)
	}
	if len(results) == 0 {
		return s
	}

	values := make([]float64, len(results))
	for i, r := range results {
		values[i] = float64(r.UptimePercentage)
	}
	s.MeanUptime = stat.Mean(values, nil)
	s.StdDevUptime = math.Sqrt(stat.PopVariance(values, nil))
	s.MinUptime = int32(floats.Min(values))
	s.MaxUptime = int32(floats.Max(values))
	return s
}

// withoutChargers drops per-charger detail for non-verbose output.
func (r *Report) withoutChargers() *Report {
	stripped := *r
	stripped.Results = make([]model.StationUptimeResult, len(r.Results))
	for i, res := range r.Results {
		res.Chargers = nil
		stripped.Results[i] = res
	}
	return &stripped
}
