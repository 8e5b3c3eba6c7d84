// SPDX-License-Identifier: MIT

package line

import "errors"

var (
	// ErrCoincidentPoints indicates two equal points were given where a line needs two distinct ones.
	ErrCoincidentPoints = errors.New("line: points coincide, no unique line through them")
	// ErrCoordinateRange indicates a coordinate magnitude above MaxCoord.
	ErrCoordinateRange = errors.New("line: coordinate out of range")
)
