// SPDX-License-Identifier: MIT

package colinear

import (
	"fmt"

	"github.com/katalvlaran/colinear/line"
)

// MaxPoints returns the largest number of points of the input lying on one
// straight line.
//
// Contract:
//   - no points → 0
//   - fewer than two distinct points → 1, or the number of copies under
//     CountDuplicates
//   - otherwise ≥ 2, and exactly len(points) when all are colinear
//
// The result does not depend on the order of points. opts may be nil, in
// which case DefaultOptions() applies.
//
// Returns line.ErrCoordinateRange (wrapped with the offending index) for
// out-of-range coordinates, and ErrBadWorkers / ErrBadOption for bad options.
//
// Complexity: O(n²) time; O(n²) memory under PairRegistry, O(n) under AnchorSlopes.
func MaxPoints(points []line.Point, opts *Options) (int, error) {
	o, in, err := prepare(points, opts)
	if err != nil {
		return 0, err
	}
	if len(in.distinct) < 2 {
		return in.trivialCount(), nil
	}

	switch {
	case o.Strategy == AnchorSlopes:
		count, _, err := anchorBest(in, o.Workers)
		return count, err
	case o.Workers > 1:
		reg, err := parallelPairs(in, o.Workers)
		if err != nil {
			return 0, err
		}
		_, count := reg.Best()
		return count, nil
	default:
		return scanPairs(in, NewRegistry(in.weight), 0, 1)
	}
}

// BestLine is MaxPoints that also reports the winning line and the input
// points on it. See Result for the tie-break and the layout of Points.
func BestLine(points []line.Point, opts *Options) (Result, error) {
	o, in, err := prepare(points, opts)
	if err != nil {
		return Result{}, err
	}
	if len(in.distinct) < 2 {
		return Result{Count: in.trivialCount(), Points: in.onLine(nil)}, nil
	}

	var (
		key   line.Key
		count int
	)
	switch {
	case o.Strategy == AnchorSlopes:
		count, key, err = anchorBest(in, o.Workers)
	case o.Workers > 1:
		var reg *Registry
		if reg, err = parallelPairs(in, o.Workers); err == nil {
			key, count = reg.Best()
		}
	default:
		reg := NewRegistry(in.weight)
		if _, err = scanPairs(in, reg, 0, 1); err == nil {
			key, count = reg.Best()
		}
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Count: count, Line: key, Points: in.onLine(&key)}, nil
}

// scanPairs enumerates pairs (i, j), j > i, for i = from, from+step, ... and
// records each in reg. It returns the largest line weight it observed.
func scanPairs(in *input, reg *Registry, from, step int) (int, error) {
	pts := in.distinct
	best := 0
	for i := from; i < len(pts)-1; i += step {
		for j := i + 1; j < len(pts); j++ {
			k, err := line.Canonicalize(pts[i], pts[j])
			if err != nil {
				return 0, fmt.Errorf("colinear: pair %v %v: %w", pts[i], pts[j], err)
			}
			if w := reg.Add(k, pts[i], pts[j]); w > best {
				best = w
			}
		}
	}

	return best, nil
}

// input is the validated, de-duplicated view of a call's points.
type input struct {
	points   []line.Point       // as given
	distinct []line.Point       // first occurrences, in input order
	copies   map[line.Point]int // occurrences per coordinate
	policy   DuplicatePolicy
}

// prepare resolves options and validates and groups the points.
func prepare(points []line.Point, opts *Options) (Options, *input, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return o, nil, err
	}

	in := &input{
		points:   points,
		distinct: make([]line.Point, 0, len(points)),
		copies:   make(map[line.Point]int, len(points)),
		policy:   o.Duplicates,
	}
	for i, p := range points {
		if err := p.Validate(); err != nil {
			return o, nil, fmt.Errorf("colinear: point %d: %w", i, err)
		}
		if in.copies[p] == 0 {
			in.distinct = append(in.distinct, p)
		}
		in.copies[p]++
	}

	return o, in, nil
}

// weight scores a distinct point under the duplicate policy.
func (in *input) weight(p line.Point) int {
	if in.policy == CountDuplicates {
		return in.copies[p]
	}

	return 1
}

// trivialCount answers inputs with fewer than two distinct points.
func (in *input) trivialCount() int {
	if len(in.distinct) == 0 {
		return 0
	}

	return in.weight(in.distinct[0])
}

// onLine lists the input points on k in input order, honoring the duplicate
// policy. A nil k matches every point.
func (in *input) onLine(k *line.Key) []line.Point {
	var out []line.Point
	seen := make(map[line.Point]struct{})
	for _, p := range in.points {
		if k != nil && !k.Contains(p) {
			continue
		}
		if in.policy == CollapseDuplicates {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
		}
		out = append(out, p)
	}

	return out
}
