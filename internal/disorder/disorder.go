// Package disorder wraps the external predictors of intrinsically
// disordered regions and MoRF binding sites.
package disorder

import (
	"context"
	"errors"

	"motifmask/internal/interval"
)

var (
	// ErrUnavailable is returned when a configured predictor cannot be run.
	ErrUnavailable = errors.New("disorder: predictor unavailable")
	// ErrTimeout is returned when a prediction exceeds its deadline.
	ErrTimeout = errors.New("disorder: predictor timed out")
)

// Prediction is the predictor output for one sequence.
type Prediction struct {
	Binding  []interval.Region // predicted MoRF/binding regions
	Disorder []float64         // per-residue disorder probability, index 0 is position 1
}

// DisorderRegions returns the runs whose disorder probability is >= threshold.
func (p Prediction) DisorderRegions(threshold float64) []interval.Region {
	return interval.RunLengthEncode(p.Disorder, threshold, false)
}

// Predictor produces a Prediction for a residue sequence. Implementations
// must be safe for concurrent use.
type Predictor interface {
	Predict(ctx context.Context, id string, residues []byte) (Prediction, error)
}

// Checker is implemented by predictors that can verify their dependencies
// before any sequence is processed.
type Checker interface {
	Check() error
}

// Check calls p.Check when p implements Checker.
func Check(p Predictor) error {
	if c, ok := p.(Checker); ok {
		return c.Check()
	}
	return nil
}
