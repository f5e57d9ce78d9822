// Package annotate runs the per-sequence steps: predict, match, collapse
// and mask. Nothing is shared between sequences except the read-only
// library, so one Annotator serves every worker.
package annotate

import (
	"context"
	"fmt"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/complexity"
	"github.com/biogo/biogo/seq/linear"
	"github.com/sirupsen/logrus"

	"motifmask/internal/coverage"
	"motifmask/internal/disorder"
	"motifmask/internal/engine"
	"motifmask/internal/fasta"
	"motifmask/internal/interval"
	"motifmask/internal/mask"
	"motifmask/internal/motif"
)

// Config wires the collaborators of an Annotator.
type Config struct {
	Library   *motif.Library
	Engine    *engine.Engine
	Predictor disorder.Predictor // required when the engine needs predictions

	DisorderThreshold float64 // per-residue probability for a disorder region

	// Mask enables Collapse and Mask. Background selects the motif-free
	// runs (inverted collapse), otherwise runs covered by NumElms motifs.
	Mask       bool
	Background bool
	NumElms    int
	Hard       bool

	// MinComplexity > 0 passes through sequences whose Wootton-Federhen
	// complexity is below it.
	MinComplexity float64

	Log logrus.FieldLogger
}

// Result is everything computed for one sequence.
type Result struct {
	Record      fasta.Record
	Occurrences []engine.Occurrence
	Regions     []interval.Region // set when masking
	Masked      string            // set when masking
	LowComplex  bool              // skipped by the complexity screen
}

type Annotator struct {
	cfg Config
	log logrus.FieldLogger
}

func New(cfg Config) (*Annotator, error) {
	if cfg.Library == nil {
		return nil, fmt.Errorf("annotate: no motif library")
	}
	if cfg.Engine == nil {
		cfg.Engine = engine.New(engine.Config{Log: cfg.Log})
	}
	if cfg.Engine.NeedPrediction() && cfg.Predictor == nil {
		return nil, fmt.Errorf("annotate: %w: disorder or MoRF filter enabled without a predictor", disorder.ErrUnavailable)
	}
	if cfg.NumElms < 1 {
		cfg.NumElms = 1
	}
	log := cfg.Log
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Annotator{cfg: cfg, log: log}, nil
}

// Annotate processes one record. Predictor failures are returned, never
// skipped, so filtering is not silently weakened.
func (a *Annotator) Annotate(ctx context.Context, rec fasta.Record) (Result, error) {
	res := Result{Record: rec}
	seq := string(rec.Seq)

	if a.cfg.MinComplexity > 0 && len(rec.Seq) > 0 {
		if cz := wf(rec.Seq); cz < a.cfg.MinComplexity {
			a.log.WithFields(logrus.Fields{"sequence": rec.ID, "complexity": cz}).Info("low complexity sequence passed through")
			res.LowComplex = true
			if a.cfg.Mask {
				res.Masked = seq
			}
			return res, nil
		}
	}

	var morf, dis *interval.Index
	if a.cfg.Engine.NeedPrediction() {
		pred, err := a.cfg.Predictor.Predict(ctx, rec.ID, rec.Seq)
		if err != nil {
			return res, fmt.Errorf("predict %s: %w", rec.ID, err)
		}
		if morf, err = interval.NewIndex(pred.Binding); err != nil {
			return res, fmt.Errorf("predict %s: %w", rec.ID, err)
		}
		regions := pred.DisorderRegions(a.cfg.DisorderThreshold)
		if dis, err = interval.NewIndex(regions); err != nil {
			return res, fmt.Errorf("predict %s: %w", rec.ID, err)
		}
		a.log.WithFields(logrus.Fields{"sequence": rec.ID, "binding": morf.Len(), "disorder": dis.Len()}).Debug("predicted regions")
	}

	res.Occurrences = a.cfg.Engine.AssignAll(a.cfg.Library, rec.ID, seq, morf, dis)

	if a.cfg.Mask {
		res.Regions = coverage.Collapse(len(seq), res.Occurrences, a.cfg.NumElms, a.cfg.Background)
		res.Masked = mask.Apply(seq, res.Regions, a.cfg.Hard)
	}
	return res, nil
}

func wf(residues []byte) float64 {
	letters := make(alphabet.Letters, len(residues))
	for i, c := range residues {
		letters[i] = alphabet.Letter(c)
	}
	s := linear.NewSeq("", letters, alphabet.Protein)
	// err is always nil for a linear.Seq Start() and End().
	cz, _ := complexity.WF(s, s.Start(), s.End())
	return cz
}
