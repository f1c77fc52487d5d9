package uptime

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ccollicutt/stationuptime/pkg/model"
)

// Calculator produces one result per station from a validated document.
type Calculator struct {
	workers int
	log     zerolog.Logger
}

// Option configures calculator behavior.
type Option func(*Calculator)

// WithWorkers sets how many stations are computed concurrently. Values
// below 1 mean sequential.
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Calculator) {
		c.log = log
	}
}

// NewCalculator creates a Calculator.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{workers: 1, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate returns results in the same order as data.Stations. The
// document is only read.
func (c *Calculator) Calculate(ctx context.Context, data *model.StationData) ([]model.StationUptimeResult, error) {
	if data == nil {
		return nil, fmt.Errorf("no station data")
	}

	byCharger := data.ReportsByCharger()
	results := make([]model.StationUptimeResult, len(data.Stations))

	if c.workers <= 1 {
		for i := range data.Stations {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = c.station(&data.Stations[i], byCharger)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i := range data.Stations {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.station(&data.Stations[i], byCharger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Calculator) station(s *model.Station, byCharger map[uint32][]model.AvailabilityReport) model.StationUptimeResult {
	chargers := make([]model.ChargerUptime, 0, len(s.ChargerIDs))
	for _, id := range s.ChargerIDs {
		chargers = append(chargers, ChargerUptime(id, byCharger[id]))
	}

	pct := StationUptime(chargers)
	c.log.Debug().
		Uint32("station_id", s.ID).
		Int("chargers", len(chargers)).
		Int32("uptime", pct).
		Msg("computed station uptime")

	return model.StationUptimeResult{
		StationID:        s.ID,
		UptimePercentage: pct,
		Chargers:         chargers,
	}
}
