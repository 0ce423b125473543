// pkg/aviation/aviation.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/omareltomy/atc-ready/pkg/math"
)

type FlightRules int

const (
	FlightRulesUnknown FlightRules = iota
	FlightRulesIFR
	FlightRulesVFR
)

func (f FlightRules) String() string {
	return [...]string{"Unknown", "IFR", "VFR"}[f]
}

func ParseFlightRules(s string) (FlightRules, error) {
	switch strings.ToUpper(s) {
	case "IFR":
		return FlightRulesIFR, nil
	case "VFR":
		return FlightRulesVFR, nil
	default:
		return FlightRulesUnknown, fmt.Errorf("%s: %w", s, ErrInvalidFlightRules)
	}
}

// WakeCategory is the ICAO wake turbulence category.
type WakeCategory int

const (
	WakeLight WakeCategory = iota
	WakeMedium
	WakeHeavy
)

func (w WakeCategory) String() string {
	return [...]string{"Light", "Medium", "Heavy"}[w]
}

// UnmarshalJSON accepts the single-letter forms used in the aircraft
// catalog ("L", "M", "H").
func (w *WakeCategory) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "L":
		*w = WakeLight
	case "M":
		*w = WakeMedium
	case "H":
		*w = WakeHeavy
	default:
		return fmt.Errorf("%q: %w", s, ErrInvalidWakeCategory)
	}
	return nil
}

// Role distinguishes the two aircraft in an exercise.
type Role int

const (
	RoleTarget Role = iota
	RoleIntruder
)

func (r Role) String() string {
	return [...]string{"target", "intruder"}[r]
}

const (
	// TransitionAltitude is where IFR altitudes switch from thousands to
	// flight levels.
	TransitionAltitude = 18000

	MinVFRAltitude = 500
	MaxVFRAltitude = 17500
	MinIFRAltitude = 1000
	MaxIFRAltitude = 45000
)

// AltitudeStep returns the spacing of valid altitudes for the given
// rules at alt.
func AltitudeStep(alt int, rules FlightRules) int {
	if rules == FlightRulesIFR && alt >= TransitionAltitude {
		return 100
	}
	return 1000
}

// RoundAltitude rounds alt to the nearest altitude that is valid under
// the given flight rules. VFR altitudes are thousands plus 500 between
// MinVFRAltitude and MaxVFRAltitude; IFR altitudes are whole thousands
// below the transition altitude and hundreds at or above it, and never
// below MinIFRAltitude.
func RoundAltitude(alt float32, rules FlightRules) int {
	if rules == FlightRulesVFR {
		a := math.RoundTo(alt-500, 1000) + 500
		return math.Clamp(a, MinVFRAltitude, MaxVFRAltitude)
	}

	a := math.RoundTo(alt, 1000)
	if alt >= TransitionAltitude || a >= TransitionAltitude {
		a = math.RoundTo(alt, 100)
		if a < TransitionAltitude {
			a = TransitionAltitude
		}
	}
	return math.Clamp(a, MinIFRAltitude, MaxIFRAltitude)
}

// ValidAltitude reports whether alt is a valid altitude for the given
// flight rules.
func ValidAltitude(alt int, rules FlightRules) bool {
	switch rules {
	case FlightRulesVFR:
		return alt >= MinVFRAltitude && alt <= MaxVFRAltitude && alt%1000 == 500
	case FlightRulesIFR:
		if alt < MinIFRAltitude || alt > MaxIFRAltitude {
			return false
		}
		return alt%AltitudeStep(alt, rules) == 0
	default:
		return false
	}
}

// ClampAltitude returns the valid altitude in [lo,hi] nearest to alt,
// which is assumed to already be valid for the rules. If no valid
// altitude lies in the range, alt is returned unchanged.
func ClampAltitude(alt, lo, hi int, rules FlightRules) int {
	if alt > hi {
		// All valid altitudes are multiples of 100.
		for a := hi - hi%100; a >= lo; a -= 100 {
			if ValidAltitude(a, rules) {
				return a
			}
		}
	} else if alt < lo {
		for a := lo + (100-lo%100)%100; a <= hi; a += 100 {
			if ValidAltitude(a, rules) {
				return a
			}
		}
	}
	return alt
}

func FormatAltitude(falt float32) string {
	alt := int(falt)
	if alt >= TransitionAltitude {
		return "FL" + strconv.Itoa(alt/100)
	} else if alt < 1000 {
		return strconv.Itoa(100 * (alt / 100))
	} else {
		th := alt / 1000
		hu := (alt % 1000) / 100 * 100
		if th == 0 {
			return strconv.Itoa(hu)
		} else if hu == 0 {
			return strconv.Itoa(th) + ",000"
		} else {
			return fmt.Sprintf("%d,%03d", th, hu)
		}
	}
}
