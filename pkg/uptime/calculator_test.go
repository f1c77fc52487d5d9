package uptime

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/stationuptime/pkg/model"
)

func percentages(results []model.StationUptimeResult) map[uint32]int32 {
	out := make(map[uint32]int32, len(results))
	for _, r := range results {
		out[r.StationID] = r.UptimePercentage
	}
	return out
}

func TestCalculate_ExpectedValues(t *testing.T) {
	tests := []struct {
		name string
		data *model.StationData
		want int32
	}{
		{
			name: "single up report",
			data: &model.StationData{
				Stations: []model.Station{{ID: 1, ChargerIDs: []uint32{1}}},
				Reports:  []model.AvailabilityReport{report(1, 0, 100, true)},
			},
			want: 100,
		},
		{
			name: "up then down",
			data: &model.StationData{
				Stations: []model.Station{{ID: 1, ChargerIDs: []uint32{1}}},
				Reports:  []model.AvailabilityReport{report(1, 0, 100, true), report(1, 100, 200, false)},
			},
			want: 50,
		},
		{
			name: "two chargers with different windows",
			data: &model.StationData{
				Stations: []model.Station{{ID: 1, ChargerIDs: []uint32{1, 2}}},
				Reports:  []model.AvailabilityReport{report(1, 0, 100, true), report(2, 50, 150, true)},
			},
			want: 100,
		},
		{
			name: "gap counts as downtime",
			data: &model.StationData{
				Stations: []model.Station{{ID: 1, ChargerIDs: []uint32{1}}},
				Reports:  []model.AvailabilityReport{report(1, 0, 50, true), report(1, 100, 150, true)},
			},
			want: 66,
		},
		{
			name: "charger without reports",
			data: &model.StationData{
				Stations: []model.Station{{ID: 1, ChargerIDs: []uint32{1}}, {ID: 2, ChargerIDs: []uint32{2}}},
				Reports:  []model.AvailabilityReport{report(2, 0, 10, true)},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := NewCalculator().Calculate(context.Background(), tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, percentages(results)[1])
		})
	}
}

func TestCalculate_AverageOfChargerPercentages(t *testing.T) {
	// Charger 1 is up for its whole short window, charger 2 is down for half
	// of a long one. Each charger weighs the same: (100 + 50) / 2.
	data := &model.StationData{
		Stations: []model.Station{{ID: 3, ChargerIDs: []uint32{1, 2}}},
		Reports: []model.AvailabilityReport{
			report(1, 0, 10, true),
			report(2, 0, 5000, true),
			report(2, 5000, 10000, false),
		},
	}
	results, err := NewCalculator().Calculate(context.Background(), data)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int32(75), results[0].UptimePercentage)
}

func TestCalculate_MissingChargerNotCountedAsZero(t *testing.T) {
	data := &model.StationData{
		Stations: []model.Station{{ID: 1, ChargerIDs: []uint32{1, 2}}},
		Reports:  []model.AvailabilityReport{report(1, 0, 100, true)},
	}
	results, err := NewCalculator().Calculate(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, int32(100), results[0].UptimePercentage)
	require.Len(t, results[0].Chargers, 2)
	assert.False(t, results[0].Chargers[1].Included)
}

func TestCalculate_PreservesStationOrder(t *testing.T) {
	data := &model.StationData{
		Stations: []model.Station{{ID: 9, ChargerIDs: []uint32{1}}, {ID: 2, ChargerIDs: []uint32{2}}},
		Reports:  []model.AvailabilityReport{report(1, 0, 10, true), report(2, 0, 10, false)},
	}
	results, err := NewCalculator().Calculate(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), results[0].StationID)
	assert.Equal(t, uint32(2), results[1].StationID)
}

func TestCalculate_ParallelMatchesSequential(t *testing.T) {
	data := &model.StationData{}
	for s := uint32(0); s < 50; s++ {
		charger := s * 10
		data.Stations = append(data.Stations, model.Station{ID: 1000 - s, ChargerIDs: []uint32{charger, charger + 1}})
		data.Reports = append(data.Reports,
			report(charger, 0, uint64(s+1)*7, true),
			report(charger, uint64(s+1)*7, 400, false),
			report(charger+1, 10, 20, s%2 == 0),
		)
	}

	sequential, err := NewCalculator().Calculate(context.Background(), data)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			parallel, err := NewCalculator(WithWorkers(workers)).Calculate(context.Background(), data)
			require.NoError(t, err)
			assert.Equal(t, sequential, parallel)
		})
	}
}

func TestCalculate_DoesNotMutateInput(t *testing.T) {
	data := &model.StationData{
		Stations: []model.Station{{ID: 1, ChargerIDs: []uint32{1}}},
		Reports:  []model.AvailabilityReport{report(1, 100, 200, false), report(1, 0, 100, true)},
	}
	_, err := NewCalculator(WithWorkers(2)).Calculate(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), data.Reports[0].StartNanos)
}

func TestCalculate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	data := &model.StationData{
		Stations: []model.Station{{ID: 1, ChargerIDs: []uint32{1}}},
		Reports:  []model.AvailabilityReport{report(1, 0, 100, true)},
	}
	_, err := NewCalculator().Calculate(ctx, data)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewCalculator(WithWorkers(4)).Calculate(ctx, data)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculate_NilData(t *testing.T) {
	_, err := NewCalculator().Calculate(context.Background(), nil)
	assert.Error(t, err)
}
