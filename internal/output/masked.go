// internal/output/masked.go
package output

import (
	"fmt"
	"io"

	"motifmask/internal/fasta"
	"motifmask/internal/interval"
	"motifmask/internal/jsonutil"
	"motifmask/internal/mask"
	"motifmask/pkg/api"
)

// MaskedSequence is one sequence after collapsing and masking.
type MaskedSequence struct {
	ID      string
	Desc    string
	Length  int
	Mode    string // ModeBackground or ModeMotifs
	Regions []interval.Region
	Masked  string
}

// ToAPIRegionSet converts m to the stable wire schema (v1).
func ToAPIRegionSet(m MaskedSequence) api.RegionSetV1 {
	v := api.RegionSetV1{
		SequenceID:     m.ID,
		Length:         m.Length,
		Mode:           m.Mode,
		Regions:        make([]api.RegionV1, 0, len(m.Regions)),
		MaskedFraction: mask.Fraction(m.Length, m.Regions),
		Masked:         m.Masked,
	}
	for _, r := range m.Regions {
		v.Regions = append(v.Regions, api.RegionV1{Start: r.Start, End: r.End})
	}
	return v
}

// StreamMaskedFASTA writes masked sequences as wrapped FASTA.
func StreamMaskedFASTA(w io.Writer, in <-chan MaskedSequence) error {
	fw := fasta.NewWriter(w, fasta.LineWidth)
	for m := range in {
		if err := fw.Write(fasta.Record{ID: m.ID, Desc: m.Desc, Seq: []byte(m.Masked)}); err != nil {
			return err
		}
	}
	return fw.Close()
}

// StreamRegionsText writes one row per collapsed region.
func StreamRegionsText(w io.Writer, in <-chan MaskedSequence, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, RegionsHeader); err != nil {
			return err
		}
	}
	for m := range in {
		for _, r := range m.Regions {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\n", m.ID, r.Start, r.End); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteRegionsJSON writes a JSON array of v1 region sets, masked text included.
func WriteRegionsJSON(w io.Writer, list []MaskedSequence) error {
	out := make([]api.RegionSetV1, 0, len(list))
	for _, m := range list {
		out = append(out, ToAPIRegionSet(m))
	}
	return jsonutil.EncodePretty(w, out)
}
