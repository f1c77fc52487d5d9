package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/stationuptime/pkg/model"
)

func testRun() (*model.StationData, []model.StationUptimeResult) {
	data := &model.StationData{
		Stations: []model.Station{{ID: 0, ChargerIDs: []uint32{1001, 1002}}, {ID: 1, ChargerIDs: []uint32{1003}}},
		Reports:  make([]model.AvailabilityReport, 3),
	}
	results := []model.StationUptimeResult{
		{StationID: 0, UptimePercentage: 100, Chargers: []model.ChargerUptime{
			{ChargerID: 1001, Percentage: 100, Included: true},
			{ChargerID: 1002, Percentage: 100, Included: true},
		}},
		{StationID: 1, UptimePercentage: 0, Chargers: []model.ChargerUptime{
			{ChargerID: 1003},
		}},
	}
	return data, results
}

func TestExporter_Record(t *testing.T) {
	e := NewExporter()
	e.Record(testRun())

	expected := `
# HELP station_uptime_percent Average uptime percentage of the station's chargers
# TYPE station_uptime_percent gauge
station_uptime_percent{station_id="0"} 100
station_uptime_percent{station_id="1"} 0
`
	require.NoError(t, testutil.CollectAndCompare(e.stationUptime, strings.NewReader(expected)))

	assert.Equal(t, 2, testutil.CollectAndCount(e.chargerUptime))
	assert.Equal(t, float64(2), testutil.ToFloat64(e.stations))
	assert.Equal(t, float64(3), testutil.ToFloat64(e.reports))
}

func TestExporter_WriteTextfile(t *testing.T) {
	e := NewExporter()
	e.Record(testRun())

	path := filepath.Join(t.TempDir(), "uptime.prom")
	require.NoError(t, e.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `charger_uptime_percent{charger_id="1001",station_id="0"} 100`)
	assert.Contains(t, string(content), "stationuptime_reports 3")
	assert.NotContains(t, string(content), `charger_id="1003"`)
}

func TestExporter_WriteTextfile_BadPath(t *testing.T) {
	e := NewExporter()
	err := e.WriteTextfile(filepath.Join(t.TempDir(), "missing", "uptime.prom"))
	assert.Error(t, err)
}
