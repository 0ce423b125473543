// pkg/traffic/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig    = errors.New("Invalid traffic configuration")
	ErrPatternExhausted = errors.New("No valid geometry found for traffic pattern")
	ErrUnknownDirection = errors.New("Unknown traffic direction")
)

// ExhaustedError is returned when a pattern's attempt budget runs out
// before a candidate passes validation.
type ExhaustedError struct {
	Direction  Direction
	Attempts   int
	Rejections Rejections
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: no valid geometry after %d attempts (%s)", e.Direction, e.Attempts, e.Rejections)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrPatternExhausted
}
