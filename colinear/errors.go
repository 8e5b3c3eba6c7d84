// SPDX-License-Identifier: MIT

package colinear

import "errors"

var (
	// ErrBadWorkers indicates a negative Options.Workers.
	ErrBadWorkers = errors.New("colinear: workers must be non-negative")
	// ErrBadOption indicates an unknown Strategy or DuplicatePolicy value.
	ErrBadOption = errors.New("colinear: unknown option value")
)
