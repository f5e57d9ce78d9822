// internal/pipeline/sim.go
package pipeline

import (
	"context"

	"motifmask/internal/annotate"
	"motifmask/internal/fasta"
)

// Annotator is the minimal capability the pipeline needs.
// Any annotator (including fakes in tests) can satisfy this.
type Annotator interface {
	Annotate(ctx context.Context, rec fasta.Record) (annotate.Result, error)
}
