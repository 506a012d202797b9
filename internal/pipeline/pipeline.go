// Package pipeline aggregates a measurements file in parallel.
//
// The file is viewed as one read-only byte range and cut into record aligned
// chunks. A fixed pool of workers pulls chunks from a queue; every worker
// folds its chunks into a table only it owns, so the scan needs no locks.
// After all chunks are done, the worker tables are merged pairwise into the
// result.
//
// Min, max and count of the result do not depend on chunk size or worker
// count. The sum, and so the mean, is accumulated in an order that does, and
// may differ in its last bits between runs with different settings.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/miku/1brcmmap/internal/chunk"
	"github.com/miku/1brcmmap/internal/measure"
	"github.com/miku/1brcmmap/internal/view"
)

// Options configure a run. The zero value is usable.
type Options struct {
	// ChunkSize is the target chunk size in bytes, chunk.DefaultSize if 0.
	ChunkSize int
	// Workers defaults to GOMAXPROCS.
	Workers int
	Mode    view.Mode
	// Logger receives progress messages, nothing is logged if nil.
	Logger *log.Logger
	// Verbose logs every chunk.
	Verbose bool
}

func (o Options) withDefaults() Options {
	if o.ChunkSize == 0 {
		o.ChunkSize = chunk.DefaultSize
	}
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return o
}

// Result of a run.
type Result struct {
	Table   *measure.Table
	Elapsed time.Duration
	Bytes   int64
	Chunks  int
	Workers int
}

// Run aggregates the file at path. The first record that fails to parse
// fails the run; chunks not yet started are skipped. An empty file yields an
// empty table.
func Run(ctx context.Context, path string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	started := time.Now()
	v, err := view.Open(path, opts.Mode)
	if err != nil {
		return nil, err
	}
	defer v.Close()
	spans, err := chunk.Split(v, opts.ChunkSize)
	if err != nil {
		return nil, err
	}
	workers := min(opts.Workers, len(spans))
	opts.Logger.Printf("%s: %d bytes, %d chunks, %d workers, %v view",
		path, v.Len(), len(spans), workers, opts.Mode)
	var (
		tables = make([]*measure.Table, workers)
		queue  = make(chan chunk.Span, 10*workers)
	)
	g, gctx := errgroup.WithContext(ctx)
	for i := range tables {
		t := measure.NewTable(0)
		tables[i] = t
		g.Go(func() error {
			return work(gctx, v, queue, t, opts)
		})
	}
	g.Go(func() error {
		defer close(queue)
		for _, s := range spans {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case queue <- s:
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", path, err)
	}
	table, err := measure.Reduce(ctx, tables, workers)
	if err != nil {
		return nil, fmt.Errorf("failed to merge results: %w", err)
	}
	return &Result{
		Table:   table,
		Elapsed: time.Since(started),
		Bytes:   int64(v.Len()),
		Chunks:  len(spans),
		Workers: workers,
	}, nil
}

// work aggregates chunks from queue into t until the queue is drained.
func work(ctx context.Context, v view.View, queue <-chan chunk.Span, t *measure.Table, opts Options) error {
	for s := range queue {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, err := v.Chunk(s)
		if err != nil {
			return err
		}
		if err := chunk.AggregateInto(t, c); err != nil {
			return err
		}
		if opts.Verbose {
			opts.Logger.Println(s.Start, s.Len())
		}
	}
	return nil
}
