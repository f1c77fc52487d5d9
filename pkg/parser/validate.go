package parser

import (
	"fmt"

	"github.com/ccollicutt/stationuptime/pkg/model"
)

// validate runs the whole-document checks in order. The first failing
// check wins.
func (p *Parser) validate(data *model.StationData) error {
	if len(data.Stations) == 0 {
		return &Error{Kind: KindEmptyInput, Msg: "No stations found in input file."}
	}
	if len(data.Reports) == 0 {
		return &Error{Kind: KindEmptyInput, Msg: "No availability reports found in input file."}
	}

	stationIDs := make(map[uint32]struct{}, len(data.Stations))
	for _, s := range data.Stations {
		if _, dup := stationIDs[s.ID]; dup {
			return idError(KindDuplicate, s.ID, "Duplicate Station ID found: %d", s.ID)
		}
		stationIDs[s.ID] = struct{}{}
	}

	// owned keeps station order so later checks visit chargers deterministically.
	owned := make(map[uint32]struct{}, data.ChargerCount())
	var chargerOrder []uint32
	for _, s := range data.Stations {
		for _, id := range s.ChargerIDs {
			if _, dup := owned[id]; dup {
				return idError(KindDuplicate, id, "Duplicate Charger ID found across stations: %d", id)
			}
			owned[id] = struct{}{}
			chargerOrder = append(chargerOrder, id)
		}
	}

	byCharger := data.ReportsByCharger()
	for _, id := range chargerOrder {
		reports, ok := byCharger[id]
		if !ok {
			p.warn(id)
			continue
		}
		if hasOverlap(reports) {
			return idError(KindOverlap, id, "Overlapping time periods found for Charger ID %d", id)
		}
	}

	for _, r := range data.Reports {
		if _, ok := owned[r.ChargerID]; !ok {
			return idError(KindReferential, r.ChargerID,
				"Report found for non-existent Charger ID: %d", r.ChargerID)
		}
	}

	return nil
}

func (p *Parser) warn(chargerID uint32) {
	w := Warning{
		ChargerID: chargerID,
		Message:   fmt.Sprintf("No availability reports found for Charger ID %d", chargerID),
	}
	p.warnings = append(p.warnings, w)
	p.log.Warn().Uint32("charger_id", chargerID).Msg("no availability reports for charger")
}

// hasOverlap reports whether any two reports overlap once sorted by start
// time. Adjacent reports (end == next start) do not overlap.
func hasOverlap(reports []model.AvailabilityReport) bool {
	sorted := model.SortedByStart(reports)
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i].EndNanos > sorted[i+1].StartNanos {
			return true
		}
	}
	return false
}
