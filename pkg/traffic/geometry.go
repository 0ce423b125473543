// pkg/traffic/geometry.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	"time"

	av "github.com/omareltomy/atc-ready/pkg/aviation"
	"github.com/omareltomy/atc-ready/pkg/math"
	"github.com/omareltomy/atc-ready/pkg/rand"
	"github.com/omareltomy/atc-ready/pkg/util"
)

const (
	// HistoryLength is the number of earlier radar returns kept for
	// each aircraft.
	HistoryLength = 5
	// SweepInterval is the time between radar returns.
	SweepInterval = 12 * time.Second
)

// candidate is a single draw of the geometry solver.
type candidate struct {
	pairing

	TargetHeading, IntruderHeading   float32
	TargetSpeed, IntruderSpeed       int
	TargetAltitude, IntruderAltitude int
	IntruderPosition                 [2]float32
	Conflict                         Conflict
}

// solve draws candidates for the pattern until one passes validation or
// the pattern's attempt budget is spent.
func (g *Generator) solve(p Pattern) (candidate, int, Rejections, error) {
	var rej Rejections
	rules := g.patternRules[p.Direction]

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		c, reason, ok := g.attempt(p, rules)
		if ok {
			return c, attempt, rej, nil
		}
		rej[reason]++
	}

	return candidate{}, p.MaxAttempts, rej, &ExhaustedError{
		Direction:  p.Direction,
		Attempts:   p.MaxAttempts,
		Rejections: rej,
	}
}

func (g *Generator) attempt(p Pattern, rules rand.Weighted[av.FlightRules]) (candidate, rejectReason, bool) {
	r := g.r
	c := candidate{
		pairing: samplePairing(r, g.db, rules, g.cfg.MilitaryProbability, g.cfg.MatchFlightRules),
	}

	c.TargetSpeed = c.TargetType.SampleSpeed(r)
	if p.Overtake {
		if !c.IntruderType.CanOvertake(c.TargetSpeed, g.cfg.OvertakeMargin) {
			return c, rejectSpeed, false
		}
		lo := math.Max(c.IntruderType.Speed[0], c.TargetSpeed+g.cfg.OvertakeMargin)
		c.IntruderSpeed = r.IntRange(lo, c.IntruderType.Speed[1])
	} else {
		c.IntruderSpeed = c.IntruderType.SampleSpeed(r)
	}

	c.TargetAltitude, c.IntruderAltitude = sampleAltitudes(r, c.pairing)

	c.TargetHeading = r.Uniform(0, 360)
	bearing := p.relativeBearing(r)
	dist := r.Uniform(p.Distance[0], p.Distance[1])
	c.IntruderPosition = math.Scale2f(math.HeadingVector(c.TargetHeading+bearing), dist)
	c.IntruderHeading = p.intruderHeading(c.TargetHeading, bearing, r.Uniform(p.Angle[0], p.Angle[1]))

	conflict, reason, ok := findConflict(c.TargetHeading, c.IntruderPosition, c.IntruderHeading, p.Tolerance)
	if !ok {
		return c, reason, false
	}
	c.Conflict = conflict

	// Only crossing traffic may be at the same level.
	if !p.Direction.IsCrossing() &&
		math.Abs(c.IntruderAltitude-c.TargetAltitude) <= g.cfg.SameLevelThreshold {
		return c, rejectSameLevel, false
	}

	return c, 0, true
}

// trackHistory returns the positions of an aircraft at pos over the
// previous HistoryLength radar sweeps, oldest first.
func trackHistory(pos [2]float32, heading float32, speed int) [][2]float32 {
	h := util.NewRingBuffer[[2]float32](HistoryLength)
	v := math.HeadingVector(heading)
	sweep := float32(speed) * float32(SweepInterval.Hours()) // nm per sweep
	for i := HistoryLength; i >= 1; i-- {
		h.Add(math.Sub2f(pos, math.Scale2f(v, sweep*float32(i))))
	}
	return h.Values()
}
