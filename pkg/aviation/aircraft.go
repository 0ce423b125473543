// pkg/aviation/aircraft.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/omareltomy/atc-ready/pkg/math"
	"github.com/omareltomy/atc-ready/pkg/rand"
)

// AircraftType is an entry in one of the aircraft catalogs. Speeds are
// in knots and altitudes in feet.
type AircraftType struct {
	Name     string       `json:"name"`
	ICAO     string       `json:"icao"`
	Wake     WakeCategory `json:"wtc"`
	Speed    [2]int       `json:"speed"`
	Altitude [2]int       `json:"altitude"`
}

func (at AircraftType) IsHeavy() bool {
	return at.Wake == WakeHeavy
}

// SampleSpeed returns a speed within the type's envelope.
func (at AircraftType) SampleSpeed(r *rand.Rand) int {
	return r.IntRange(at.Speed[0], at.Speed[1])
}

// CanOvertake reports whether an aircraft of this type can fly at least
// margin knots faster than speed.
func (at AircraftType) CanOvertake(speed, margin int) bool {
	return at.Speed[1] >= speed+margin
}

// AltitudeOverlap returns the intersection of the two types' altitude
// envelopes; ok is false if they do not overlap.
func AltitudeOverlap(a, b *AircraftType) (lo, hi int, ok bool) {
	lo, hi = math.Max(a.Altitude[0], b.Altitude[0]), math.Min(a.Altitude[1], b.Altitude[1])
	return lo, hi, lo <= hi
}

// Catalog is the set of aircraft types available for one category of
// traffic.
type Catalog []AircraftType

// Sample returns a uniformly chosen type from the catalog. The catalog
// must not be empty.
func (c Catalog) Sample(r *rand.Rand) *AircraftType {
	return &c[r.Intn(len(c))]
}

func (c Catalog) Lookup(icao string) (*AircraftType, bool) {
	for i := range c {
		if c[i].ICAO == icao {
			return &c[i], true
		}
	}
	return nil, false
}
