// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"motifmask/internal/engine"
)

// FormatFloat renders v in the shortest form that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatRowTSV returns the TSV columns of o (no trailing newline).
func FormatRowTSV(o engine.Occurrence) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s",
		o.SequenceID, o.MotifID, o.Start, o.End, o.Match,
		FormatFloat(o.Probability), FormatFloat(o.Entropy), FormatFloat(o.EntropyRate),
	)
}

// FormatRowGFF returns the GFF row of o with feature id n (no trailing newline).
func FormatRowGFF(o engine.Occurrence, n int) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%s\t.\t.\tID=%d;Name=%s;Accession=%s",
		o.SequenceID, GFFSource, GFFType, o.Start, o.End, o.Match,
		n, o.MotifID, o.Accession,
	)
}
