package measure

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Reduce merges tables pairwise, level by level, until one remains. Pairs of
// a level are merged concurrently, at most limit at a time (no limit if
// limit < 1). Reduce takes ownership of the tables: the left table of each
// pair is reused as the merge target. Nil entries are skipped; no tables
// yield an empty table.
func Reduce(ctx context.Context, tables []*Table, limit int) (*Table, error) {
	level := make([]*Table, 0, len(tables))
	for _, t := range tables {
		if t != nil {
			level = append(level, t)
		}
	}
	if len(level) == 0 {
		return NewTable(0), nil
	}
	for len(level) > 1 {
		next := make([]*Table, (len(level)+1)/2)
		g, gctx := errgroup.WithContext(ctx)
		if limit > 0 {
			g.SetLimit(limit)
		}
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next[i/2] = level[i]
				continue
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				next[i/2] = level[i].Merge(level[i+1])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		level = next
	}
	return level[0], nil
}
