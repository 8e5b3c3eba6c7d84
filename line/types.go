// SPDX-License-Identifier: MIT

package line

import "fmt"

// MaxCoord bounds the magnitude of any point coordinate.
// With |X|,|Y| ≤ 2³⁰ a difference is at most 2³¹ and Dx·y − Dy·x at most 2⁶²,
// so canonicalization never overflows the int64 fields of Key.
const MaxCoord = 1 << 30

// Point is an integer coordinate pair. Equality and hashing are structural.
type Point struct {
	X, Y int
}

// Validate reports ErrCoordinateRange if either coordinate exceeds MaxCoord.
func (p Point) Validate() error {
	if p.X > MaxCoord || p.X < -MaxCoord || p.Y > MaxCoord || p.Y < -MaxCoord {
		return fmt.Errorf("%w: %v exceeds ±%d", ErrCoordinateRange, p, MaxCoord)
	}

	return nil
}

// Less orders points by X, then Y.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Kind tags which variant of Key is populated.
type Kind uint8

const (
	// Degenerate is the zero Kind: the key of two coinciding points. It
	// identifies no line and is never stored by an aggregator.
	Degenerate Kind = iota
	// Vertical marks a line x = X.
	Vertical
	// Regular marks a non-vertical line with direction (Dx, Dy) and
	// intercept numerator C.
	Regular
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Degenerate:
		return "degenerate"
	case Vertical:
		return "vertical"
	case Regular:
		return "regular"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Key canonically identifies an infinite line. Keys are comparable and may be
// used as map keys: equal keys ⇔ same line.
//
// Fields by Kind:
//   - Vertical: X is the shared x-coordinate; all other fields are zero.
//   - Regular:  Dx > 0, gcd(Dx, |Dy|) = 1, C = Dx·y − Dy·x for any (x,y) on
//     the line. X is zero. The y-intercept is C/Dx.
//   - Degenerate: all fields zero.
type Key struct {
	Kind   Kind
	X      int64 // shared x of a vertical line
	Dx, Dy int64 // reduced direction of a regular line
	C      int64 // Dx·y − Dy·x, constant along a regular line
}
