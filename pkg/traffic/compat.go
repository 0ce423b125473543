// pkg/traffic/compat.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	av "github.com/omareltomy/atc-ready/pkg/aviation"
	"github.com/omareltomy/atc-ready/pkg/rand"
)

// pairing is the result of choosing flight rules and types for the two
// aircraft.
type pairing struct {
	TargetType, IntruderType   *av.AircraftType
	TargetRules, IntruderRules av.FlightRules
	IntruderMilitary           bool
}

func makeRulesTable(vfr, ifr int) rand.Weighted[av.FlightRules] {
	var entries []rand.WeightedEntry[av.FlightRules]
	if vfr > 0 {
		entries = append(entries, rand.WeightedEntry[av.FlightRules]{Value: av.FlightRulesVFR, Weight: vfr})
	}
	if ifr > 0 {
		entries = append(entries, rand.WeightedEntry[av.FlightRules]{Value: av.FlightRulesIFR, Weight: ifr})
	}
	// Config validation ensures at least one is positive.
	return rand.MustMakeWeighted(entries...)
}

// samplePairing picks flight rules and aircraft types. The target is
// never military; only VFR intruders may be.
func samplePairing(r *rand.Rand, db *av.StaticDatabase, rules rand.Weighted[av.FlightRules],
	militaryProbability float32, matchRules bool) pairing {
	var p pairing

	p.TargetRules = rules.Sample(r)
	p.TargetType = db.Catalog(p.TargetRules, false).Sample(r)

	if matchRules {
		p.IntruderRules = p.TargetRules
	} else {
		p.IntruderRules = rules.Sample(r)
	}
	if p.IntruderRules == av.FlightRulesVFR {
		p.IntruderMilitary = r.Bool(militaryProbability)
	}
	p.IntruderType = db.Catalog(p.IntruderRules, p.IntruderMilitary).Sample(r)

	return p
}
