// SPDX-License-Identifier: MIT

package colinear

import (
	"fmt"

	"github.com/katalvlaran/colinear/line"
)

// DuplicatePolicy decides how repeated coordinates are counted.
type DuplicatePolicy int

const (
	// CollapseDuplicates counts equal coordinates once (point-set semantics).
	CollapseDuplicates DuplicatePolicy = iota
	// CountDuplicates counts every occurrence of a coordinate.
	CountDuplicates
)

// Strategy selects the enumeration algorithm. All strategies return the same result.
type Strategy int

const (
	// PairRegistry canonicalizes every pair and keeps a line → point-set registry.
	PairRegistry Strategy = iota
	// AnchorSlopes groups points by direction from each anchor in turn.
	AnchorSlopes
)

// Options configures MaxPoints and BestLine.
//
// Fields:
//   - Duplicates — CollapseDuplicates or CountDuplicates.
//   - Strategy   — PairRegistry or AnchorSlopes.
//   - Workers    — 0 or 1 runs serially; N > 1 splits the outer loop over N
//     goroutines (capped at the number of distinct points minus one).
type Options struct {
	Duplicates DuplicatePolicy
	Strategy   Strategy
	Workers    int
}

// DefaultOptions returns Options with CollapseDuplicates, PairRegistry and a
// single worker.
func DefaultOptions() Options {
	return Options{
		Duplicates: CollapseDuplicates,
		Strategy:   PairRegistry,
		Workers:    1,
	}
}

// Validate reports ErrBadWorkers or ErrBadOption for out-of-range fields.
func (o Options) Validate() error {
	if o.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrBadWorkers, o.Workers)
	}
	if o.Duplicates != CollapseDuplicates && o.Duplicates != CountDuplicates {
		return fmt.Errorf("%w: duplicate policy %d", ErrBadOption, o.Duplicates)
	}
	if o.Strategy != PairRegistry && o.Strategy != AnchorSlopes {
		return fmt.Errorf("%w: strategy %d", ErrBadOption, o.Strategy)
	}

	return nil
}

// Result describes the best line found by BestLine.
type Result struct {
	// Count is the number of points on Line, as MaxPoints would report it.
	Count int

	// Line is the winning line. Among lines with equal Count the smallest
	// key in line.Key.Less order wins. It is the zero (Degenerate) key when
	// the input holds fewer than two distinct points.
	Line line.Key

	// Points are the input points on Line in input order. Repeated
	// coordinates appear once under CollapseDuplicates and every time under
	// CountDuplicates, so len(Points) == Count.
	Points []line.Point
}
