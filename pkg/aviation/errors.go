// pkg/aviation/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "errors"

var (
	ErrEmptyCatalog          = errors.New("Aircraft catalog is empty")
	ErrInvalidAltitude       = errors.New("Invalid altitude")
	ErrInvalidFlightRules    = errors.New("Invalid flight rules")
	ErrInvalidWakeCategory   = errors.New("Invalid wake turbulence category")
	ErrNoCallsignGrammar     = errors.New("No callsign grammar available")
	ErrUnknownAircraftType   = errors.New("Unknown aircraft type")
	ErrUnknownRegistrationCh = errors.New("Unknown registration template character")
)
