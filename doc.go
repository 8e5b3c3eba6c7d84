// SPDX-License-Identifier: MIT

// Package colinear answers one question exactly: given a finite set of
// integer points, how many of them lie on a single straight line?
//
// 🚀 What is inside?
//
//	line/      — Point, the canonical line Key (vertical or reduced direction
//	             plus exact rational intercept) and Canonicalize
//	colinear/  — MaxPoints / BestLine over a line → point-set Registry,
//	             with pair and anchor strategies and optional workers
//	cmd/       — maxpoints, a small driver reading points from a file or stdin
//
// ✨ Why exact keys?
//
//   - Slopes as float64 merge near-parallel lines and split equal ones.
//   - A direction reduced by its GCD, with Dx > 0, has one spelling per line
//     family; the integer Dx·y − Dy·x then tells parallel lines apart.
//
// Quick ASCII example:
//
//	y
//	4 ●
//	3   ●     ●
//	2     ●
//	1 ●     ●
//	  1 2 3 4 5 x
//
//	(1,4) (2,3) (3,2) (4,1) share y = −x + 5, so the answer is 4.
//
//	go get github.com/katalvlaran/colinear
package colinear
