// internal/writers/jsonl.go
package writers

import (
	"io"

	"motifmask/internal/engine"
	"motifmask/internal/jsonlutil"
	"motifmask/internal/output"
	"motifmask/pkg/api"
)

// StartOccurrenceJSONLWriter streams each Occurrence as one JSON line (v1).
func StartOccurrenceJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Occurrence, <-chan error) {
	return jsonlutil.Start[engine.Occurrence, api.OccurrenceV1](out, bufSize, output.ToAPIOccurrence, IsBrokenPipe)
}

// StartRegionSetJSONLWriter streams each MaskedSequence as one JSON line (v1).
func StartRegionSetJSONLWriter(out io.Writer, bufSize int) (chan<- output.MaskedSequence, <-chan error) {
	return jsonlutil.Start[output.MaskedSequence, api.RegionSetV1](out, bufSize,
		output.ToAPIRegionSet,
		IsBrokenPipe,
	)
}
