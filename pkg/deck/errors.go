// pkg/deck/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package deck

import "errors"

var (
	ErrDeckVersion     = errors.New("Unsupported deck version")
	ErrInvalidSize     = errors.New("Deck size must be positive")
	ErrInvalidWorkers  = errors.New("Worker count must be positive")
	ErrTooManyFailures = errors.New("Too many traffic patterns exhausted")
)
