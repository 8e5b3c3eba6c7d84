// SPDX-License-Identifier: MIT

// Package line turns pairs of integer points into exact, hashable keys that
// identify the infinite straight line through them.
//
// What:
//
//   - Point is a comparable (X, Y) pair of ints, usable directly as a map key.
//   - Key is a tagged variant: Vertical (x = const) or Regular (reduced
//     direction plus an exact rational intercept). Two pairs of points yield
//     equal keys if and only if they lie on the same line.
//   - Canonicalize builds a Key from two distinct points; Direction returns
//     only the reduced, sign-normalized direction vector.
//
// Why:
//
//   - Floating-point slopes merge near-equal lines and split equal ones.
//     Reducing (Δx, Δy) by their GCD and fixing the sign of Δx gives one
//     representation per direction, with no rounding anywhere.
//   - The intercept is carried as the integer C = Dx·y − Dy·x, which is the
//     same for every point of the line. The y-intercept is C/Dx, so no
//     integer division ever truncates.
//
// Bounds:
//
//   - Coordinates must satisfy |X|, |Y| ≤ MaxCoord (2³⁰). Within that range
//     every intermediate product fits in a 64-bit int.
//
// Complexity:
//
//   - Canonicalize, Direction: O(log M) for the GCD, M = max |Δ|.
//   - Key methods: O(1) except Intercept and String (one GCD each).
//
// Errors:
//
//   - ErrCoincidentPoints: both points are equal; no unique line exists.
//   - ErrCoordinateRange: a coordinate lies outside ±MaxCoord.
package line
