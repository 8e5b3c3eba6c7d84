// SPDX-License-Identifier: MIT

package colinear

import "golang.org/x/sync/errgroup"

// parallelPairs deals outer indices round-robin to workers, each filling its
// own Registry, then merges the partials into one on the calling goroutine.
func parallelPairs(in *input, workers int) (*Registry, error) {
	if n := len(in.distinct); workers > n-1 {
		workers = n - 1
	}
	parts := make([]*Registry, workers)

	var g errgroup.Group
	for w := range parts {
		parts[w] = NewRegistry(in.weight)
		g.Go(func() error {
			_, err := scanPairs(in, parts[w], w, workers)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := parts[0]
	for _, p := range parts[1:] {
		merged.Merge(p)
	}

	return merged, nil
}
