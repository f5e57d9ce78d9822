// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"motifmask/internal/annotate"
	"motifmask/internal/cmdutil"
	"motifmask/internal/pipeline"
	"motifmask/internal/runutil"
	"motifmask/internal/writers"
)

type Options struct {
	SeqFiles []string

	Threads int

	NoMatchExitCode int
}

type VisitorFunc[T any] func(annotate.Result) ([]T, error)

type WriterFactory[T any] interface {
	NeedMask() bool
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run streams every sequence through ann and visit into the writer from wf.
// It returns the process exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	ann pipeline.Annotator,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	thr := runutil.EffectiveThreads(o.Threads)
	inCh, writeErr := wf.Start(outw, runutil.BufferSize(thr))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr},
		o.SeqFiles,
		ann,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
