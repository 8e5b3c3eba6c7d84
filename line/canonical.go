// SPDX-License-Identifier: MIT

package line

// Canonicalize returns the Key of the infinite line through p1 and p2.
// The result does not depend on the order of the arguments, nor on which two
// points of the line were chosen.
//
// Algorithm:
//  1. Δx = p2.X − p1.X, Δy = p2.Y − p1.Y.
//  2. Δx = Δy = 0 → Degenerate key and ErrCoincidentPoints (GCD(0,0) is never taken).
//  3. Δx = 0      → Vertical key carrying p1.X.
//  4. Otherwise reduce (Δx, Δy) by gcd(|Δx|, |Δy|) and flip both signs if
//     Δx < 0, so Dx > 0.
//  5. C = Dx·p1.Y − Dy·p1.X. Any other point q on the line gives the same C,
//     since q − p1 is a multiple of (Dx, Dy).
//
// Returns ErrCoordinateRange if either point lies outside ±MaxCoord.
// Complexity: O(log M), M = max(|Δx|, |Δy|).
func Canonicalize(p1, p2 Point) (Key, error) {
	dx, dy, err := Direction(p1, p2)
	if err != nil {
		return Key{Kind: Degenerate}, err
	}
	if dx == 0 {
		return Key{Kind: Vertical, X: int64(p1.X)}, nil
	}

	return Key{
		Kind: Regular,
		Dx:   dx,
		Dy:   dy,
		C:    dx*int64(p1.Y) - dy*int64(p1.X),
	}, nil
}

// Direction returns the direction of the line through p1 and p2 reduced to
// lowest terms, oriented so that dx > 0, or (0, 1) for a vertical line.
// Two pairs of points yield the same direction iff their lines are parallel.
//
// Returns ErrCoincidentPoints if p1 == p2 and ErrCoordinateRange if either
// point lies outside ±MaxCoord.
func Direction(p1, p2 Point) (dx, dy int64, err error) {
	if err = p1.Validate(); err != nil {
		return 0, 0, err
	}
	if err = p2.Validate(); err != nil {
		return 0, 0, err
	}

	dx = int64(p2.X) - int64(p1.X)
	dy = int64(p2.Y) - int64(p1.Y)
	switch {
	case dx == 0 && dy == 0:
		return 0, 0, ErrCoincidentPoints
	case dx == 0:
		return 0, 1, nil
	}

	g := GCD(dx, dy) // > 0 since dx != 0
	dx, dy = dx/g, dy/g
	if dx < 0 {
		dx, dy = -dx, -dy
	}

	return dx, dy, nil
}

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, n) = |n|; GCD(0, 0) = 0.
func GCD(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
