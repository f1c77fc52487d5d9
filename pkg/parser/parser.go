package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ccollicutt/stationuptime/pkg/model"
)

// Parser turns input lines into a validated model.StationData.
// A Parser is not safe for concurrent use.
type Parser struct {
	log      zerolog.Logger
	warnings []Warning
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for warnings and debug events.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// New creates a Parser. Without WithLogger nothing is logged.
func New(opts ...Option) *Parser {
	p := &Parser{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Warnings returns the non-fatal findings of the last Parse call.
func (p *Parser) Warnings() []Warning {
	return p.warnings
}

// ParseFile reads and validates the document at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*model.StationData, error) {
	src, err := NewFileSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return p.Parse(ctx, src)
}

// ParseLines validates an in-memory document.
func (p *Parser) ParseLines(ctx context.Context, lines []string) (*model.StationData, error) {
	return p.Parse(ctx, NewSliceSource(lines))
}

// Parse consumes src and returns the validated document. It stops at the
// first error; no partial data is returned on failure.
func (p *Parser) Parse(ctx context.Context, src LineSource) (*model.StationData, error) {
	p.warnings = nil
	data := &model.StationData{}
	current := sectionNone
	ignored := 0

	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		trimmed := strings.TrimSpace(line.Raw)
		if trimmed == "" {
			continue
		}

		switch trimmed {
		case StationsHeader:
			current = sectionStations
			p.log.Debug().Int("line", line.Num).Stringer("section", current).Msg("entering section")
			continue
		case ReportsHeader:
			current = sectionReports
			p.log.Debug().Int("line", line.Num).Stringer("section", current).Msg("entering section")
			continue
		}

		switch current {
		case sectionStations:
			station, err := parseStationLine(trimmed, line.Num)
			if err != nil {
				return nil, err
			}
			data.Stations = append(data.Stations, *station)
		case sectionReports:
			report, err := parseReportLine(trimmed, line.Num)
			if err != nil {
				return nil, err
			}
			data.Reports = append(data.Reports, *report)
		default:
			ignored++
		}
	}

	if ignored > 0 {
		p.log.Debug().Int("lines", ignored).Msg("ignored lines outside a recognized section")
	}
	p.log.Debug().
		Int("stations", len(data.Stations)).
		Int("reports", len(data.Reports)).
		Msg("parsed input")

	if err := p.validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

func parseStationLine(line string, num int) (*model.Station, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return nil, lineError(KindFormat, num,
			"Invalid station format. Expected: <Station ID> <Charger ID 1> [Charger ID 2...]")
	}

	stationID, err := parseUint32(parts[0])
	if err != nil {
		return nil, lineError(KindRange, num,
			"Station ID must be an unsigned 32-bit integer (0 to 4294967295)")
	}

	station := &model.Station{ID: stationID, ChargerIDs: make([]uint32, 0, len(parts)-1)}
	seen := make(map[uint32]struct{}, len(parts)-1)
	for _, tok := range parts[1:] {
		chargerID, err := parseUint32(tok)
		if err != nil {
			return nil, lineError(KindRange, num,
				"Charger ID must be an unsigned 32-bit integer (0 to 4294967295)")
		}
		if _, dup := seen[chargerID]; dup {
			e := lineError(KindDuplicate, num,
				"Duplicate Charger ID %d found in station %d", chargerID, stationID)
			e.ID, e.HasID = chargerID, true
			return nil, e
		}
		seen[chargerID] = struct{}{}
		station.ChargerIDs = append(station.ChargerIDs, chargerID)
	}

	return station, nil
}

func parseReportLine(line string, num int) (*model.AvailabilityReport, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return nil, lineError(KindFormat, num,
			"Invalid report format. Expected: <Charger ID> <start time nanos> <end time nanos> <up (true/false)>")
	}

	chargerID, err := parseUint32(parts[0])
	if err != nil {
		return nil, lineError(KindRange, num,
			"Charger ID must be an unsigned 32-bit integer (0 to 4294967295)")
	}
	start, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, lineError(KindRange, num,
			"Start time must be an unsigned 64-bit integer (0 to 18446744073709551615)")
	}
	end, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return nil, lineError(KindRange, num,
			"End time must be an unsigned 64-bit integer (0 to 18446744073709551615)")
	}
	up, err := parseUp(parts[3])
	if err != nil {
		return nil, lineError(KindFormat, num, "Up status must be 'true' or 'false'")
	}
	if end < start {
		return nil, lineError(KindRange, num,
			"End time (%d) must be greater than or equal to start time (%d)", end, start)
	}

	return &model.AvailabilityReport{
		ChargerID:  chargerID,
		StartNanos: start,
		EndNanos:   end,
		Up:         up,
	}, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func parseUp(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
