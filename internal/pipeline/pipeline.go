// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"motifmask/internal/annotate"
	"motifmask/internal/fasta"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// ForEach reads every record of seqFiles, annotates them concurrently and
// calls visit with the results in input order, so output does not depend
// on Threads. It returns the first error encountered (including context
// cancellation); no further results are visited after an error.
func ForEach(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	ann Annotator,
	visit func(annotate.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		idx int
		rec fasta.Record
	}
	type result struct {
		idx int
		res annotate.Result
		err error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					res, err := ann.Annotate(ctx, j.rec)
					select {
					case results <- result{idx: j.idx, res: res, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: re-order by input index
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]result)
		next := 0
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.idx] = r
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if p.err == nil {
					p.err = visit(p.res)
				}
				if p.err != nil {
					cerr = p.err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
	var ferr error
	idx := 0
	for _, fa := range seqFiles {
		err := fasta.ForEach(ctx, fa, func(rec fasta.Record) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{idx: idx, rec: rec}:
				idx++
				return nil
			}
		})
		if err != nil {
			ferr = err
			break
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	if ferr != nil && ctx.Err() == nil {
		return ferr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}
