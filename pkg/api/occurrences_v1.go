// pkg/api/occurrences_v1.go
package api

// OccurrenceV1 is the stable JSON/JSONL schema for motif occurrences.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type OccurrenceV1 struct {
	SequenceID  string  `json:"sequence_id"`
	MotifID     string  `json:"motif_id"`
	Accession   string  `json:"accession,omitempty"`
	Start       int     `json:"start"` // 1-based
	End         int     `json:"end"`   // 1-based, inclusive
	MatchedText string  `json:"matched_text"`
	Probability float64 `json:"probability"`
	Entropy     float64 `json:"entropy"`
	EntropyRate float64 `json:"entropy_rate"`
}

// RegionV1 is a 1-based inclusive interval.
type RegionV1 struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// RegionSetV1 is the stable schema for the collapsed regions of one sequence.
type RegionSetV1 struct {
	SequenceID string     `json:"sequence_id"`
	Length     int        `json:"length"`
	Mode       string     `json:"mode"` // "background" | "motifs"
	Regions    []RegionV1 `json:"regions"`

	// Fraction of residues covered by Regions.
	MaskedFraction float64 `json:"masked_fraction"`
	Masked         string  `json:"masked,omitempty"`
}
