// SPDX-License-Identifier: MIT

package line_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/colinear/line"
)

// BenchmarkCanonicalize measures key construction over random pairs with
// coordinates up to ±10⁶.
func BenchmarkCanonicalize(b *testing.B) {
	r := rand.New(rand.NewSource(7))
	const n = 1024
	pairs := make([][2]line.Point, n)
	for i := range pairs {
		pairs[i] = [2]line.Point{randPoint(r, 1_000_000), randPoint(r, 1_000_000)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := pairs[i%n]
		_, _ = line.Canonicalize(p[0], p[1])
	}
}
