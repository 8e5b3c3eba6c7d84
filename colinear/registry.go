// SPDX-License-Identifier: MIT

package colinear

import (
	"sort"

	"github.com/katalvlaran/colinear/line"
)

// Registry maps canonical line keys to the set of distinct points known to
// lie on each line. It only grows. A Registry is not safe for concurrent use;
// parallel callers fill one each and Merge them afterwards.
type Registry struct {
	lines  map[line.Key]*pointSet
	weight func(line.Point) int
}

// pointSet is one registry entry: its distinct points and their total weight.
type pointSet struct {
	points map[line.Point]struct{}
	weight int
}

// NewRegistry returns an empty Registry. weight gives the score of each point
// when it joins a line; nil scores every point 1.
func NewRegistry(weight func(line.Point) int) *Registry {
	if weight == nil {
		weight = func(line.Point) int { return 1 }
	}

	return &Registry{
		lines:  make(map[line.Key]*pointSet),
		weight: weight,
	}
}

// Add unions p1 and p2 into the set of line k and returns the line's weight
// afterwards. Degenerate keys are ignored and yield 0.
// Complexity: O(1) amortized.
func (r *Registry) Add(k line.Key, p1, p2 line.Point) int {
	if k.Kind == line.Degenerate {
		return 0
	}
	set := r.entry(k)
	r.insert(set, p1)
	r.insert(set, p2)

	return set.weight
}

// Merge unions every line of other into r. other is left unchanged.
// Complexity: O(total points in other).
func (r *Registry) Merge(other *Registry) {
	for k, src := range other.lines {
		dst := r.entry(k)
		for p := range src.points {
			r.insert(dst, p)
		}
	}
}

// Len returns the number of distinct lines recorded.
func (r *Registry) Len() int {
	return len(r.lines)
}

// Weight returns the weight of line k, or 0 if k was never added.
func (r *Registry) Weight(k line.Key) int {
	if set, ok := r.lines[k]; ok {
		return set.weight
	}

	return 0
}

// Points returns the distinct points recorded on line k, sorted by
// line.Point.Less. Nil if k was never added.
func (r *Registry) Points(k line.Key) []line.Point {
	set, ok := r.lines[k]
	if !ok {
		return nil
	}
	out := make([]line.Point, 0, len(set.points))
	for p := range set.points {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Best returns the heaviest line and its weight. Ties go to the smallest key
// in line.Key.Less order. An empty registry yields the zero key and 0.
// Complexity: O(Len()).
func (r *Registry) Best() (line.Key, int) {
	var (
		best  line.Key
		top   int
		found bool
	)
	for k, set := range r.lines {
		if !found || set.weight > top || (set.weight == top && k.Less(best)) {
			best, top, found = k, set.weight, true
		}
	}

	return best, top
}

func (r *Registry) entry(k line.Key) *pointSet {
	set, ok := r.lines[k]
	if !ok {
		set = &pointSet{points: make(map[line.Point]struct{})}
		r.lines[k] = set
	}

	return set
}

func (r *Registry) insert(set *pointSet, p line.Point) {
	if _, ok := set.points[p]; ok {
		return
	}
	set.points[p] = struct{}{}
	set.weight += r.weight(p)
}
