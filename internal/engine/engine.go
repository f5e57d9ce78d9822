// internal/engine/engine.go
package engine

import (
	"github.com/sirupsen/logrus"

	"motifmask/internal/interval"
	"motifmask/internal/motif"
	"motifmask/internal/score"
)

// Config enumerates the per-occurrence filters. A zero Config keeps every
// non-empty match.
type Config struct {
	// Logic drops matches whose text equals an instance of the class
	// carrying LogicLabel.
	Logic      bool
	LogicLabel motif.Logic

	MaxProbability float64 // > 0 enables the probability ceiling
	MinEntropyRate float64 // > 0 enables the complexity floor

	MoRF     bool // require overlap with a predicted binding region
	Disorder bool // require overlap with a predicted disorder region

	Log logrus.FieldLogger
}

// DefaultConfig has no filter enabled and targets false positives when the
// logic filter is switched on.
func DefaultConfig() Config {
	return Config{LogicLabel: motif.FalsePositive}
}

type Engine struct {
	cfg    Config
	scorer *score.Scorer
	log    logrus.FieldLogger
}

func New(c Config) *Engine {
	s := score.New(c.Log)
	return &Engine{cfg: c, scorer: s, log: s.Log}
}

// NeedPrediction reports whether any active filter consumes predictor output.
func (e *Engine) NeedPrediction() bool { return e.cfg.MoRF || e.cfg.Disorder }

/* -------------------------------------------------------------------------- */
/*                                   Assign                                   */
/* -------------------------------------------------------------------------- */

// Assign scans seq with the class pattern and returns the matches that pass
// every enabled filter, in scan order. Matches of one class never overlap.
// It returns nil when nothing survives. morf and disorder may be nil.
func (e *Engine) Assign(c *motif.Class, seq string, morf, disorder *interval.Index) []Occurrence {
	re := c.Regexp()
	if re == nil || len(seq) == 0 {
		return nil
	}
	upper := upperASCII(seq)

	var out []Occurrence
	for _, loc := range re.FindAllStringIndex(upper, -1) {
		s, end := loc[0], loc[1]
		if end <= s {
			continue // empty match
		}
		text := upper[s:end]

		// 1. logic
		if e.cfg.Logic && c.HasInstance(text, e.cfg.LogicLabel) {
			e.log.WithFields(logrus.Fields{"motif": c.ID, "match": text}).Debugf("dropped: known %s instance", e.cfg.LogicLabel)
			continue
		}

		sc, err := e.scorer.Score(text)
		if err != nil {
			continue
		}
		// 2. probability
		if e.cfg.MaxProbability > 0 && sc.Probability > e.cfg.MaxProbability {
			continue
		}
		// 3. complexity
		if e.cfg.MinEntropyRate > 0 && sc.EntropyRate < e.cfg.MinEntropyRate {
			continue
		}
		start, stop := s+1, end
		// 4. MoRF
		if e.cfg.MoRF && !morf.Overlaps(start, stop) {
			continue
		}
		// 5. disorder
		if e.cfg.Disorder && !disorder.Overlaps(start, stop) {
			continue
		}

		out = append(out, Occurrence{
			MotifID:     c.ID,
			Accession:   c.Accession,
			Start:       start,
			End:         stop,
			Match:       seq[s:end],
			Probability: sc.Probability,
			Entropy:     sc.Entropy,
			EntropyRate: sc.EntropyRate,
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// upperASCII upper-cases the ASCII letters of s and leaves every other byte
// alone, so match offsets in the result index s.
func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// AssignAll runs Assign for every class of lib in identifier order and
// stamps seqID on the results.
func (e *Engine) AssignAll(lib *motif.Library, seqID, seq string, morf, disorder *interval.Index) []Occurrence {
	var all []Occurrence
	for _, c := range lib.Classes() {
		hits := e.Assign(c, seq, morf, disorder)
		for i := range hits {
			hits[i].SequenceID = seqID
		}
		all = append(all, hits...)
	}
	return all
}
