package visitors

import (
	"motifmask/internal/annotate"
	"motifmask/internal/engine"
	"motifmask/internal/output"
	"motifmask/internal/summary"
)

// Occurrences passes every surviving occurrence through, recording the
// result in Summary when set.
type Occurrences struct {
	Summary *summary.Summary
}

func (v Occurrences) Visit(r annotate.Result) ([]engine.Occurrence, error) {
	if v.Summary != nil {
		v.Summary.Add(r)
	}
	return r.Occurrences, nil
}

// Masked emits one masked sequence per input record.
type Masked struct {
	Mode    string
	Summary *summary.Summary
}

func (v Masked) Visit(r annotate.Result) ([]output.MaskedSequence, error) {
	if v.Summary != nil {
		v.Summary.Add(r)
	}
	return []output.MaskedSequence{{
		ID:      r.Record.ID,
		Desc:    r.Record.Desc,
		Length:  len(r.Record.Seq),
		Mode:    v.Mode,
		Regions: r.Regions,
		Masked:  r.Masked,
	}}, nil
}
