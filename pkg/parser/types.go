// Package parser reads station availability documents and validates them
// into a model.StationData.
package parser

// Line is a single raw input line.
type Line struct {
	// Raw is the original line content.
	Raw string

	// Source is the file path (or other label) this line came from.
	Source string

	// Num is the 1-based line number in the source.
	Num int
}

// Section headers recognized in the input document.
const (
	StationsHeader = "[Stations]"
	ReportsHeader  = "[Charger Availability Reports]"
)

// section is the parser state: which block data lines belong to.
type section int

const (
	sectionNone section = iota
	sectionStations
	sectionReports
)

func (s section) String() string {
	switch s {
	case sectionStations:
		return "stations"
	case sectionReports:
		return "reports"
	default:
		return "none"
	}
}

// Warning is a non-fatal finding produced during validation.
type Warning struct {
	ChargerID uint32
	Message   string
}

func (w Warning) String() string {
	return w.Message
}
