// SPDX-License-Identifier: MIT

package colinear_test

import (
	"fmt"

	"github.com/katalvlaran/colinear/colinear"
	"github.com/katalvlaran/colinear/line"
)

////////////////////////////////////////////////////////////////////////////////
// Example: MaxPoints
////////////////////////////////////////////////////////////////////////////////

// ExampleMaxPoints counts the largest colinear subset.
// Scenario:
//
//   - (3,2), (4,1), (2,3), (1,4) lie on y = −x + 5.
//   - (1,1), (3,2), (5,3) lie on y = x/2 + 1/2.
//
// Complexity: O(n²)
func ExampleMaxPoints() {
	points := []line.Point{{X: 1, Y: 1}, {X: 3, Y: 2}, {X: 5, Y: 3}, {X: 4, Y: 1}, {X: 2, Y: 3}, {X: 1, Y: 4}}

	n, err := colinear.MaxPoints(points, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(n)

	// Output:
	// 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: BestLine
////////////////////////////////////////////////////////////////////////////////

// ExampleBestLine reports the winning line, here the vertical x = −15, using
// the anchor strategy on two workers.
func ExampleBestLine() {
	points := []line.Point{{X: 10, Y: 2}, {X: -15, Y: 3}, {X: -15, Y: -7}, {X: 0, Y: 2}, {X: -15, Y: 10}, {X: -15, Y: -15}}
	opts := colinear.DefaultOptions()
	opts.Strategy = colinear.AnchorSlopes
	opts.Workers = 2

	res, err := colinear.BestLine(points, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Count, res.Line)
	fmt.Println(res.Points)

	// Output:
	// 4 x=-15
	// [(-15,3) (-15,-7) (-15,10) (-15,-15)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: CountDuplicates
////////////////////////////////////////////////////////////////////////////////

// ExampleOptions_countDuplicates shows the two duplicate policies side by side.
func ExampleOptions_countDuplicates() {
	points := []line.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}}

	collapsed, _ := colinear.MaxPoints(points, nil)
	counted, _ := colinear.MaxPoints(points, &colinear.Options{Duplicates: colinear.CountDuplicates})
	fmt.Println(collapsed, counted)

	// Output:
	// 2 3
}
