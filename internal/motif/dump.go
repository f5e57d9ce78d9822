package motif

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Dump writes one line per class followed by one line per instance:
//
//	accession  category  name  description  pattern  probability
//	accession  motif_name  protein_id  start  end  sequence  logic_label
func Dump(w io.Writer, lib *Library) error {
	bw := bufio.NewWriter(w)
	for _, c := range lib.Classes() {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Accession, c.Category(), c.ID, c.Description, c.Pattern,
			strconv.FormatFloat(c.Probability, 'g', -1, 64),
		); err != nil {
			return err
		}
	}
	for _, c := range lib.Classes() {
		for _, in := range c.Instances() {
			if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
				in.Accession, c.ID, in.ProteinID, in.Start, in.End, in.Sequence, in.Logic,
			); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
