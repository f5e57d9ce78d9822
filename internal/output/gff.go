// internal/output/gff.go
package output

import (
	"fmt"
	"io"

	"motifmask/internal/engine"
)

// WriteGFF writes a GFF3 header and one feature per occurrence. Feature
// ids count from 1 over the whole list.
func WriteGFF(w io.Writer, list []engine.Occurrence) error {
	if _, err := fmt.Fprintln(w, GFFVersionHeader); err != nil {
		return err
	}
	for i, o := range list {
		if _, err := fmt.Fprintln(w, FormatRowGFF(o, i+1)); err != nil {
			return err
		}
	}
	return nil
}

// StreamGFF is WriteGFF over a channel.
func StreamGFF(w io.Writer, in <-chan engine.Occurrence) error {
	if _, err := fmt.Fprintln(w, GFFVersionHeader); err != nil {
		return err
	}
	n := 1
	for o := range in {
		if _, err := fmt.Fprintln(w, FormatRowGFF(o, n)); err != nil {
			return err
		}
		n++
	}
	return nil
}
