// Package summary tallies a run and compares how often each motif class
// was seen against how often its background probability predicts.
package summary

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat/distuv"

	"motifmask/internal/annotate"
	"motifmask/internal/jsonutil"
	"motifmask/internal/motif"
	"motifmask/pkg/api"
)

// Summary accumulates results. It is not safe for concurrent use; the
// pipeline visits results from a single goroutine.
type Summary struct {
	lib         *motif.Library
	sequences   int
	residues    int
	lowComplex  int
	occurrences int
	observed    map[string]int
}

func New(lib *motif.Library) *Summary {
	return &Summary{lib: lib, observed: make(map[string]int)}
}

// Add records one sequence result. Sequences skipped by the complexity
// screen are counted but contribute no residues.
func (s *Summary) Add(res annotate.Result) {
	s.sequences++
	if res.LowComplex {
		s.lowComplex++
		return
	}
	s.residues += len(res.Record.Seq)
	for _, o := range res.Occurrences {
		s.observed[o.MotifID]++
		s.occurrences++
	}
}

// PValue is the Poisson probability of seeing at least observed events
// when expected are predicted.
func PValue(observed int, expected float64) float64 {
	if observed <= 0 {
		return 1
	}
	if expected <= 0 {
		return 0
	}
	return distuv.Poisson{Lambda: expected}.Survival(float64(observed - 1))
}

// Report builds the wire summary. Motifs are ordered by p-value, then id.
func (s *Summary) Report(runID, version string) api.SummaryV1 {
	rep := api.SummaryV1{
		RunID:       runID,
		Version:     version,
		Sequences:   s.sequences,
		Residues:    s.residues,
		LowComplex:  s.lowComplex,
		Occurrences: s.occurrences,
		Classes:     s.lib.Len(),
		Motifs:      make([]api.MotifSummaryV1, 0, s.lib.Len()),
	}
	for _, c := range s.lib.Classes() {
		k := s.observed[c.ID]
		exp := float64(s.residues) * c.Probability
		rep.Motifs = append(rep.Motifs, api.MotifSummaryV1{
			MotifID:     c.ID,
			Accession:   c.Accession,
			Probability: c.Probability,
			Observed:    k,
			Expected:    exp,
			PValue:      PValue(k, exp),
		})
	}
	sort.SliceStable(rep.Motifs, func(i, j int) bool {
		if rep.Motifs[i].PValue != rep.Motifs[j].PValue {
			return rep.Motifs[i].PValue < rep.Motifs[j].PValue
		}
		return rep.Motifs[i].MotifID < rep.Motifs[j].MotifID
	})
	return rep
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string { return uuid.NewString() }

// WriteFile writes rep as indented JSON to path.
func WriteFile(path string, rep api.SummaryV1) error {
	if err := jsonutil.WriteFile(path, rep); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	return nil
}
