// Package score implements the independent-residue scoring model used to
// judge how plausible a motif occurrence is by composition alone.
package score

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
)

// ErrEmptyInput is returned by Score for an empty subsequence.
var ErrEmptyInput = errors.New("score: empty input")

// Score is the information content of a residue subsequence.
type Score struct {
	Probability float64 // product of background frequencies
	Entropy     float64 // Σ p·log2(1/p), bits
	EntropyRate float64 // Entropy / len(subsequence), bits per residue
}

// Scorer computes Scores and reports odd input through Log.
type Scorer struct {
	Log logrus.FieldLogger
}

// New returns a Scorer that logs to log. A nil log discards warnings.
func New(log logrus.FieldLogger) *Scorer {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Scorer{Log: log}
}

// Score scores sub. Skip codes (U, O) contribute nothing to the probability
// or entropy but still count towards the entropy-rate divisor.
func (s *Scorer) Score(sub string) (Score, error) {
	if len(sub) == 0 {
		s.Log.Warn("score: empty subsequence, returning zero score")
		return Score{}, ErrEmptyInput
	}
	prob := 1.0
	ent := 0.0
	for i := 0; i < len(sub); i++ {
		c := sub[i]
		if IsSkip(c) {
			continue
		}
		p, ok := Prob(c)
		if !ok {
			s.Log.WithField("residue", string(c)).Warn("score: unknown residue, using fallback probability")
		}
		prob *= p
		ent += p * math.Log2(1/p)
	}
	return Score{
		Probability: prob,
		Entropy:     ent,
		EntropyRate: ent / float64(len(sub)),
	}, nil
}
