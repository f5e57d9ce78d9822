// internal/writers/occurrence.go
package writers

import (
	"io"

	"motifmask/internal/common"
	"motifmask/internal/engine"
	"motifmask/internal/output"
)

type occurrenceArgs struct {
	Sort   bool
	Rank   bool
	Header bool
	In     <-chan engine.Occurrence
}

// buffered reports whether the occurrences must be collected before writing.
func (a occurrenceArgs) buffered() bool { return a.Sort || a.Rank }

func drainOccurrences(a occurrenceArgs) []engine.Occurrence {
	list := make([]engine.Occurrence, 0, 128)
	for o := range a.In {
		list = append(list, o)
	}
	switch {
	case a.Rank:
		common.SortOccurrencesByProbability(list)
	case a.Sort:
		common.SortOccurrences(list)
	}
	return list
}

func init() {
	// JSON array
	RegisterOccurrence(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		args := payload.(occurrenceArgs)
		return output.WriteJSON(w, drainOccurrences(args))
	})

	// JSONL streaming
	RegisterOccurrence(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		args := payload.(occurrenceArgs)
		pipe, done := StartOccurrenceJSONLWriter(w, 64)
		if args.buffered() {
			for _, o := range drainOccurrences(args) {
				pipe <- o
			}
		} else {
			for o := range args.In {
				pipe <- o
			}
		}
		close(pipe)
		return <-done
	})

	// GFF3
	RegisterOccurrence(output.FormatGFF, func(w io.Writer, payload interface{}) error {
		args := payload.(occurrenceArgs)
		if args.buffered() {
			return output.WriteGFF(w, drainOccurrences(args))
		}
		return output.StreamGFF(w, args.In)
	})

	// TEXT/TSV
	RegisterOccurrence(output.FormatText, func(w io.Writer, payload interface{}) error {
		args := payload.(occurrenceArgs)
		if args.buffered() {
			return output.WriteText(w, drainOccurrences(args), args.Header)
		}
		return output.StreamText(w, args.In, args.Header)
	})
}

// StartOccurrenceWriter spins up a writer goroutine for occurrences.
// Unknown formats are reported on the error channel once the input closes.
func StartOccurrenceWriter(out io.Writer, format string, sort, rank, header bool, bufSize int) (chan<- engine.Occurrence, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Occurrence, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteOccurrences(format, out, occurrenceArgs{Sort: sort, Rank: rank, Header: header, In: in})
		if err != nil {
			// keep senders from blocking on an abandoned channel
			for range in {
			}
		}
		errCh <- err
	}()
	return in, errCh
}
