package cmdutil

import (
	"context"

	"motifmask/internal/annotate"
	"motifmask/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the number of sent outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	ann pipeline.Annotator,
	visit func(annotate.Result) ([]T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEach(ctx, cfg, seqFiles, ann, func(r annotate.Result) error {
		outs, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		for _, out := range outs {
			if err := send(out); err != nil {
				return err
			}
			total++
		}
		return nil
	})
	return total, err
}
