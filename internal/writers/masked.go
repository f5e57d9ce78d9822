// internal/writers/masked.go
package writers

import (
	"io"

	"motifmask/internal/output"
)

type maskedArgs struct {
	Header bool
	In     <-chan output.MaskedSequence
}

func init() {
	RegisterMasked(output.FormatFASTA, func(w io.Writer, payload interface{}) error {
		return output.StreamMaskedFASTA(w, payload.(maskedArgs).In)
	})

	RegisterMasked(output.FormatText, func(w io.Writer, payload interface{}) error {
		args := payload.(maskedArgs)
		return output.StreamRegionsText(w, args.In, args.Header)
	})

	RegisterMasked(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		var list []output.MaskedSequence
		for m := range payload.(maskedArgs).In {
			list = append(list, m)
		}
		return output.WriteRegionsJSON(w, list)
	})

	RegisterMasked(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		pipe, done := StartRegionSetJSONLWriter(w, 64)
		for m := range payload.(maskedArgs).In {
			pipe <- m
		}
		close(pipe)
		return <-done
	})
}

// StartMaskedWriter spins up a writer goroutine for masked sequences.
func StartMaskedWriter(out io.Writer, format string, header bool, bufSize int) (chan<- output.MaskedSequence, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.MaskedSequence, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteMasked(format, out, maskedArgs{Header: header, In: in})
		if err != nil {
			for range in {
			}
		}
		errCh <- err
	}()
	return in, errCh
}
