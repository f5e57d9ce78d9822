// Package coverage folds occurrences from every motif class into a
// per-residue profile and collapses it into disjoint regions.
package coverage

import (
	"motifmask/internal/engine"
	"motifmask/internal/interval"
)

// Profile returns the number of occurrences covering each residue;
// index 0 is position 1. Positions outside [1, length] are ignored.
func Profile(length int, occs []engine.Occurrence) []int {
	if length <= 0 {
		return nil
	}
	prof := make([]int, length)
	for _, o := range occs {
		lo, hi := o.Start, o.End
		if lo > hi {
			lo, hi = hi, lo
		}
		lo = max(lo, 1)
		hi = min(hi, length)
		for p := lo; p <= hi; p++ {
			prof[p-1]++
		}
	}
	return prof
}

// Collapse returns the maximal runs covered by at least numElms occurrences,
// or with invert set the runs covered by none (motif-free background).
func Collapse(length int, occs []engine.Occurrence, numElms int, invert bool) []interval.Region {
	return interval.RunLengthEncode(Profile(length, occs), numElms, invert)
}
