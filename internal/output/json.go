// internal/output/json.go
package output

import (
	"io"

	"motifmask/internal/engine"
	"motifmask/internal/jsonutil"
	"motifmask/pkg/api"
)

// ToAPIOccurrence converts a domain Occurrence to the stable wire schema (v1).
func ToAPIOccurrence(o engine.Occurrence) api.OccurrenceV1 {
	return api.OccurrenceV1{
		SequenceID:  o.SequenceID,
		MotifID:     o.MotifID,
		Accession:   o.Accession,
		Start:       o.Start,
		End:         o.End,
		MatchedText: o.Match,
		Probability: o.Probability,
		Entropy:     o.Entropy,
		EntropyRate: o.EntropyRate,
	}
}

func toAPIOccurrences(list []engine.Occurrence) []api.OccurrenceV1 {
	out := make([]api.OccurrenceV1, 0, len(list))
	for _, o := range list {
		out = append(out, ToAPIOccurrence(o))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 occurrences (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Occurrence) error {
	return jsonutil.EncodePretty(w, toAPIOccurrences(list))
}
