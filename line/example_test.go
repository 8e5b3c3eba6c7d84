// SPDX-License-Identifier: MIT

package line_test

import (
	"fmt"

	"github.com/katalvlaran/colinear/line"
)

// ExampleCanonicalize shows that any two points of a line, in either order,
// produce the same key.
func ExampleCanonicalize() {
	a := line.Point{X: 1, Y: 1}
	b := line.Point{X: 3, Y: 2}
	c := line.Point{X: 5, Y: 3}

	ab, _ := line.Canonicalize(a, b)
	ca, _ := line.Canonicalize(c, a)
	fmt.Println(ab)
	fmt.Println(ab == ca)

	num, den, _ := ab.Intercept()
	fmt.Printf("intercept %d/%d\n", num, den)

	v, _ := line.Canonicalize(line.Point{X: -15, Y: 3}, line.Point{X: -15, Y: 10})
	fmt.Println(v, v.Kind)

	// Output:
	// y=1/2*x+1/2
	// true
	// intercept 1/2
	// x=-15 vertical
}
