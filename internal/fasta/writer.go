// internal/fasta/writer.go
package fasta

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// LineWidth is the residue count per output line.
const LineWidth = 60

// Writer writes Records as wrapped FASTA. Residue case is preserved.
// Close terminates the last record with a newline.
type Writer struct {
	t *tail
	w *fasta.Writer
}

// tail remembers the last byte written through it.
type tail struct {
	w    io.Writer
	last byte
}

func (t *tail) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.last = p[n-1]
	}
	return n, err
}

func NewWriter(w io.Writer, width int) *Writer {
	if width <= 0 {
		width = LineWidth
	}
	t := &tail{w: w}
	return &Writer{t: t, w: fasta.NewWriter(t, width)}
}

func (w *Writer) Write(r Record) error {
	letters := make(alphabet.Letters, len(r.Seq))
	for i, c := range r.Seq {
		letters[i] = alphabet.Letter(c)
	}
	s := linear.NewSeq(r.ID, letters, alphabet.Protein)
	s.Desc = r.Desc
	_, err := w.w.Write(s)
	return err
}

func (w *Writer) Close() error {
	if w.t.last == 0 || w.t.last == '\n' {
		return nil
	}
	_, err := w.t.Write([]byte{'\n'})
	return err
}
