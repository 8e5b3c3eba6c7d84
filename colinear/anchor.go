// SPDX-License-Identifier: MIT

package colinear

import (
	"fmt"

	"github.com/katalvlaran/colinear/line"
	"golang.org/x/sync/errgroup"
)

// direction is a reduced, sign-normalized vector as returned by line.Direction.
type direction [2]int64

// fan accumulates the points seen from one anchor in one direction.
type fan struct {
	weight int
	first  line.Point // any member, used to name the line
}

// anchorBest runs the AnchorSlopes strategy on workers goroutines and
// returns the heaviest line with the same tie-break as Registry.Best.
//
// For anchor i only points j > i are grouped. A line is therefore scored in
// full exactly once, from its first point; from later anchors it scores
// strictly less, so partial scores never win or tie the maximum.
func anchorBest(in *input, workers int) (int, line.Key, error) {
	n := len(in.distinct)
	if workers < 1 {
		workers = 1
	}
	if workers > n-1 {
		workers = n - 1
	}

	type best struct {
		count int
		key   line.Key
	}
	results := make([]best, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < n-1; i += workers {
				count, key, err := anchorScan(in, i)
				if err != nil {
					return err
				}
				if r := &results[w]; count > r.count || (count == r.count && key.Less(r.key)) {
					r.count, r.key = count, key
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, line.Key{}, err
	}

	top := results[0]
	for _, r := range results[1:] {
		if r.count > top.count || (r.count == top.count && r.key.Less(top.key)) {
			top = r
		}
	}

	return top.count, top.key, nil
}

// anchorScan groups points after anchor i by direction and returns the
// heaviest group together with the anchor.
func anchorScan(in *input, i int) (int, line.Key, error) {
	anchor := in.distinct[i]
	fans := make(map[direction]*fan)
	for _, p := range in.distinct[i+1:] {
		dx, dy, err := line.Direction(anchor, p)
		if err != nil {
			return 0, line.Key{}, fmt.Errorf("colinear: pair %v %v: %w", anchor, p, err)
		}
		f, ok := fans[direction{dx, dy}]
		if !ok {
			f = &fan{first: p}
			fans[direction{dx, dy}] = f
		}
		f.weight += in.weight(p)
	}

	var (
		count int
		key   line.Key
	)
	for _, f := range fans {
		w := in.weight(anchor) + f.weight
		if w < count {
			continue
		}
		k, err := line.Canonicalize(anchor, f.first)
		if err != nil {
			return 0, line.Key{}, fmt.Errorf("colinear: pair %v %v: %w", anchor, f.first, err)
		}
		if w > count || k.Less(key) {
			count, key = w, k
		}
	}

	return count, key, nil
}
