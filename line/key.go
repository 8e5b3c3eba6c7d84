// SPDX-License-Identifier: MIT

package line

import "fmt"

// Slope returns the slope Dy/Dx of a regular line as a reduced fraction.
// ok is false for vertical and degenerate keys.
func (k Key) Slope() (num, den int64, ok bool) {
	if k.Kind != Regular {
		return 0, 0, false
	}

	return k.Dy, k.Dx, true
}

// Intercept returns the y-intercept C/Dx of a regular line as a reduced
// fraction with den > 0. ok is false for vertical and degenerate keys.
func (k Key) Intercept() (num, den int64, ok bool) {
	if k.Kind != Regular {
		return 0, 0, false
	}
	num, den = reduce(k.C, k.Dx)

	return num, den, true
}

// Contains reports whether p lies on the line. Degenerate keys contain nothing,
// and neither does any key contain a point outside ±MaxCoord.
// Complexity: O(1).
func (k Key) Contains(p Point) bool {
	if p.Validate() != nil {
		return false
	}
	switch k.Kind {
	case Vertical:
		return int64(p.X) == k.X
	case Regular:
		return k.Dx*int64(p.Y)-k.Dy*int64(p.X) == k.C
	default:
		return false
	}
}

// Less imposes a total order on keys: by Kind, then X, Dx, Dy, C.
func (k Key) Less(o Key) bool {
	if k.Kind != o.Kind {
		return k.Kind < o.Kind
	}
	if k.X != o.X {
		return k.X < o.X
	}
	if k.Dx != o.Dx {
		return k.Dx < o.Dx
	}
	if k.Dy != o.Dy {
		return k.Dy < o.Dy
	}

	return k.C < o.C
}

// String renders the line equation, e.g. "x=-15" or "y=1/2*x+3/2".
func (k Key) String() string {
	switch k.Kind {
	case Vertical:
		return fmt.Sprintf("x=%d", k.X)
	case Regular:
		sign := "+"
		c := k.C
		if c < 0 {
			sign, c = "-", -c
		}

		return "y=" + ratio(k.Dy, k.Dx) + "*x" + sign + ratio(c, k.Dx)
	default:
		return "degenerate"
	}
}

// reduce divides num and den (den > 0) by their GCD.
func reduce(num, den int64) (int64, int64) {
	if g := GCD(num, den); g > 1 {
		return num / g, den / g
	}

	return num, den
}

func ratio(num, den int64) string {
	num, den = reduce(num, den)
	if den == 1 {
		return fmt.Sprintf("%d", num)
	}

	return fmt.Sprintf("%d/%d", num, den)
}
