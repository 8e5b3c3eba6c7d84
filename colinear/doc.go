// SPDX-License-Identifier: MIT

// Package colinear finds the largest number of integer points that lie on a
// single straight line.
//
// 🚀 What:
//
//   - MaxPoints returns the size of the largest colinear subset.
//   - BestLine also returns which line it is and the input points on it.
//   - Registry is the per-call map from a canonical line.Key to the set of
//     distinct points seen on that line.
//
// ⚙️ How:
//
//	For every unordered pair i < j the line through points[i] and points[j]
//	is canonicalized (see package line) and both points are unioned into
//	that line's set. The answer is the largest set seen. No floating point
//	is involved, so near-parallel lines are never merged.
//
// Strategies (Options.Strategy):
//
//   - PairRegistry — the all-pairs registry above. O(n²) time, O(n²) memory.
//   - AnchorSlopes — for each anchor point, group later points by reduced
//     direction. O(n²) time, O(n) memory per anchor. Same results.
//
// Parallelism (Options.Workers > 1):
//
//	Outer indices are dealt round-robin to workers. Each worker fills its own
//	partial registry, and the partials are merged by key (set union) once
//	all workers are done. Nothing is shared while workers run.
//
// Duplicates (Options.Duplicates):
//
//   - CollapseDuplicates (default) — equal coordinates count once.
//   - CountDuplicates — every occurrence counts; n copies of one point
//     score n.
//
//	Either way coinciding points are grouped before enumeration, so no pair
//	handed to line.Canonicalize is degenerate.
//
// Degenerate inputs:
//
//   - no points → 0
//   - one point, or all points equal → 1 (or n under CountDuplicates)
//
// Errors:
//
//   - line.ErrCoordinateRange: an input coordinate exceeds ±line.MaxCoord.
//   - ErrBadWorkers: Options.Workers < 0.
//   - ErrBadOption: unknown Strategy or DuplicatePolicy value.
package colinear
