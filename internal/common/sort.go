// internal/common/sort.go
package common

import (
	"sort"

	"motifmask/internal/engine"
)

// LessOccurrence defines a stable order for occurrences (for --sort).
func LessOccurrence(a, b engine.Occurrence) bool {
	if a.SequenceID != b.SequenceID {
		return a.SequenceID < b.SequenceID
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.End != b.End {
		return a.End < b.End
	}
	return a.MotifID < b.MotifID
}

func SortOccurrences(occs []engine.Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool { return LessOccurrence(occs[i], occs[j]) })
}

// SortOccurrencesByProbability puts the least likely (most surprising)
// occurrences first; ties fall back to coordinate order.
func SortOccurrencesByProbability(occs []engine.Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		if occs[i].Probability != occs[j].Probability {
			return occs[i].Probability < occs[j].Probability
		}
		return LessOccurrence(occs[i], occs[j])
	})
}
