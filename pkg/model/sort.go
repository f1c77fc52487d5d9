package model

import (
	"cmp"
	"slices"
)

// SortedByStart returns a copy of reports ordered by start time. Reports
// with equal start times keep their input order.
func SortedByStart(reports []AvailabilityReport) []AvailabilityReport {
	sorted := slices.Clone(reports)
	slices.SortStableFunc(sorted, func(a, b AvailabilityReport) int {
		return cmp.Compare(a.StartNanos, b.StartNanos)
	})
	return sorted
}
