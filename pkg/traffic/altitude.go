// pkg/traffic/altitude.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	av "github.com/omareltomy/atc-ready/pkg/aviation"
	"github.com/omareltomy/atc-ready/pkg/math"
	"github.com/omareltomy/atc-ready/pkg/rand"
)

// Offsets applied to the intruder's altitude relative to the target's.
var altitudeOffsets = []float32{-1000, -500, 0, 500, 1000}

// When the two altitude envelopes don't overlap, each aircraft flies
// within this many feet of the edge nearest the other.
const altitudeEdgeBand = 2000

// sampleAltitudes returns valid, rounded altitudes for the target and
// intruder of p.
func sampleAltitudes(r *rand.Rand, p pairing) (target, intruder int) {
	tt, it := p.TargetType, p.IntruderType
	offset := rand.SampleSlice(r, altitudeOffsets)

	var ta, ia float32
	if lo, hi, ok := av.AltitudeOverlap(tt, it); ok {
		ta = r.Uniform(float32(lo), float32(hi))
		ia = ta + offset
	} else if tt.Altitude[1] < it.Altitude[0] {
		// Target's envelope is entirely below the intruder's.
		ta = r.Uniform(float32(math.Max(tt.Altitude[0], tt.Altitude[1]-altitudeEdgeBand)), float32(tt.Altitude[1]))
		ia = r.Uniform(float32(it.Altitude[0]), float32(math.Min(it.Altitude[1], it.Altitude[0]+altitudeEdgeBand))) + offset
	} else {
		ta = r.Uniform(float32(tt.Altitude[0]), float32(math.Min(tt.Altitude[1], tt.Altitude[0]+altitudeEdgeBand)))
		ia = r.Uniform(float32(math.Max(it.Altitude[0], it.Altitude[1]-altitudeEdgeBand)), float32(it.Altitude[1])) + offset
	}

	return fitAltitude(ta, tt, p.TargetRules), fitAltitude(ia, it, p.IntruderRules)
}

// fitAltitude clamps alt to the type's envelope and rounds it to a valid
// altitude for the rules, staying inside the envelope when possible.
func fitAltitude(alt float32, at *av.AircraftType, rules av.FlightRules) int {
	lo, hi := at.Altitude[0], at.Altitude[1]
	alt = math.Clamp(alt, float32(lo), float32(hi))
	return av.ClampAltitude(av.RoundAltitude(alt, rules), lo, hi, rules)
}
