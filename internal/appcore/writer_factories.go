package appcore

import (
	"io"

	"motifmask/internal/engine"
	"motifmask/internal/output"
	"motifmask/internal/writers"
)

// ---------------- Occurrence writer ----------------

type OccurrenceWriterFactory struct {
	Format string
	Sort   bool
	Rank   bool
	Header bool
}

func NewOccurrenceWriterFactory(format string, sort, rank, header bool) OccurrenceWriterFactory {
	return OccurrenceWriterFactory{Format: format, Sort: sort, Rank: rank, Header: header}
}

func (w OccurrenceWriterFactory) NeedMask() bool { return false }

func (w OccurrenceWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Occurrence, <-chan error) {
	return writers.StartOccurrenceWriter(out, w.Format, w.Sort, w.Rank, w.Header, bufSize)
}

// ---------------- Masked writer ----------------

type MaskedWriterFactory struct {
	Format string
	Header bool
}

func NewMaskedWriterFactory(format string, header bool) MaskedWriterFactory {
	return MaskedWriterFactory{Format: format, Header: header}
}

func (w MaskedWriterFactory) NeedMask() bool { return true }

func (w MaskedWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.MaskedSequence, <-chan error) {
	return writers.StartMaskedWriter(out, w.Format, w.Header, bufSize)
}
