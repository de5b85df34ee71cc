package almanac

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// progressBatch bounds how many seeds a worker maps between progress
// callbacks.
const progressBatch = 1 << 16

// LowestRangeLocation brute-forces the part-two search: every seed in
// every seed range is mapped to its location and the smallest wins. One
// worker runs per range; progress, when non-nil, receives completed seed
// counts and must be safe for concurrent use.
func (a *Almanac) LowestRangeLocation(ctx context.Context, progress func(uint64)) (uint64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	if len(ranges) == 0 {
		return 0, fmt.Errorf("almanac has no seed ranges")
	}

	group, ctx := errgroup.WithContext(ctx)
	results := make([]uint64, len(ranges))

	for i, r := range ranges {
		i, r := i, r
		group.Go(func() error {
			lowest := uint64(math.MaxUint64)
			var sinceReport uint64

			for seed := r.Start; seed < r.End; seed++ {
				if loc := a.Location(seed); loc < lowest {
					lowest = loc
				}

				sinceReport++
				if sinceReport == progressBatch {
					if progress != nil {
						progress(sinceReport)
					}
					sinceReport = 0
					if err := ctx.Err(); err != nil {
						return err
					}
				}
			}

			if progress != nil && sinceReport > 0 {
				progress(sinceReport)
			}
			results[i] = lowest
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, err
	}

	lowest := results[0]
	for _, loc := range results[1:] {
		if loc < lowest {
			lowest = loc
		}
	}
	return lowest, nil
}
