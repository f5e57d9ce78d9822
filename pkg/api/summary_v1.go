// pkg/api/summary_v1.go
package api

// MotifSummaryV1 compares observed against chance occurrences of one class.
type MotifSummaryV1 struct {
	MotifID     string  `json:"motif_id"`
	Accession   string  `json:"accession,omitempty"`
	Probability float64 `json:"probability"`
	Observed    int     `json:"observed"`
	Expected    float64 `json:"expected"`
	PValue      float64 `json:"p_value"` // Poisson P(X >= observed)
}

// SummaryV1 is the stable schema of the --summary report.
type SummaryV1 struct {
	RunID       string           `json:"run_id"`
	Version     string           `json:"version"`
	Sequences   int              `json:"sequences"`
	Residues    int              `json:"residues"`
	LowComplex  int              `json:"low_complexity_skipped,omitempty"`
	Occurrences int              `json:"occurrences"`
	Classes     int              `json:"classes"`
	Motifs      []MotifSummaryV1 `json:"motifs"`
}
