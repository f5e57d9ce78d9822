// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"motifmask/internal/engine"
)

// WriteText writes occurrences as a tab-delimited table.
func WriteText(w io.Writer, list []engine.Occurrence, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, o := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(o)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText writes occurrences from a channel as they arrive.
func StreamText(w io.Writer, in <-chan engine.Occurrence, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for o := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(o)); err != nil {
			return err
		}
	}
	return nil
}
