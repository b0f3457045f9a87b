package strategy

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tdobratz/dobratzbot/internal/deck"
	"github.com/tdobratz/dobratzbot/internal/randutil"
)

// CoverageOptions controls a coverage run
type CoverageOptions struct {
	Hands   int
	Workers int
	Seed    int64
}

// CoverageReport counts how often random starting hands hit each table entry
type CoverageReport struct {
	Hands     int
	Unmatched int
	// Hits is indexed like Table.Entries.
	Hits []int
}

// Matched returns the number of hands that hit any entry
func (r CoverageReport) Matched() int {
	return r.Hands - r.Unmatched
}

// Coverage deals opts.Hands random starting hands and tallies which table
// entry each one matches. The result depends only on the seed and worker count.
func Coverage(ctx context.Context, table *Table, opts CoverageOptions) (CoverageReport, error) {
	if opts.Hands <= 0 {
		return CoverageReport{}, errors.New("hands must be positive")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, opts.Hands)

	partial := make([]CoverageReport, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := opts.Hands / workers
		if w < opts.Hands%workers {
			n++
		}
		g.Go(func() error {
			d := deck.NewDeck(randutil.New(randutil.Derive(opts.Seed, w)))
			r := CoverageReport{Hits: make([]int, table.Len())}
			for i := range n {
				if i%4096 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				d.Reset()
				hole := d.DealN(2)
				r.Hands++
				if idx := table.index(hole[0], hole[1]); idx >= 0 {
					r.Hits[idx]++
				} else {
					r.Unmatched++
				}
			}
			partial[w] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return CoverageReport{}, err
	}

	total := CoverageReport{Hits: make([]int, table.Len())}
	for _, r := range partial {
		total.Hands += r.Hands
		total.Unmatched += r.Unmatched
		for i, h := range r.Hits {
			total.Hits[i] += h
		}
	}
	return total, nil
}
