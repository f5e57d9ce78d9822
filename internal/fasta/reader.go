// internal/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one protein sequence.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

func template() *linear.Seq {
	return linear.NewSeq("", nil, alphabet.Protein)
}

// Read parses FASTA from r and calls emit for every record in file order.
// It stops at the first emit error or when ctx is done.
func Read(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := seqio.NewScanner(fasta.NewReader(r, template()))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		rec := Record{ID: s.Name(), Desc: s.Description(), Seq: make([]byte, len(s.Seq))}
		for i, l := range s.Seq {
			rec.Seq[i] = byte(l)
		}
		if err := emit(rec); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	return sc.Error()
}

// ForEach reads the FASTA file at path ("-" for stdin, gzip detected).
func ForEach(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := Read(ctx, rc, emit); err != nil {
		if ctx.Err() != nil && err == ctx.Err() {
			return err
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
