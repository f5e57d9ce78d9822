// internal/engine/occurrence.go
package engine

// Occurrence is one surviving motif match. Positions are 1-based inclusive.
type Occurrence struct {
	SequenceID string `json:"sequence_id"`
	MotifID    string `json:"motif_id"`
	Accession  string `json:"accession,omitempty"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Match      string `json:"matched_text"`

	Probability float64 `json:"probability"`
	Entropy     float64 `json:"entropy"`
	EntropyRate float64 `json:"entropy_rate"`
}

// Len is the number of residues covered.
func (o Occurrence) Len() int { return o.End - o.Start + 1 }
