// pkg/traffic/pattern.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	"slices"

	"github.com/omareltomy/atc-ready/pkg/math"
	"github.com/omareltomy/atc-ready/pkg/rand"
)

// HeadingRule gives the intruder's heading from the target's heading and
// a sampled convergence angle.
type HeadingRule int

const (
	// AddAngle turns the intruder right of the target's heading.
	AddAngle HeadingRule = iota
	// SubtractAngle turns the intruder left of the target's heading.
	SubtractAngle
	// TowardTrack turns the intruder toward the target's track: left if
	// it is on the target's right side and right otherwise.
	TowardTrack
	// Reciprocal points the intruder back along the target's heading,
	// offset by the angle.
	Reciprocal
)

// Pattern holds everything the geometry solver needs to know about one
// traffic direction. Angles are in degrees and distances in nautical
// miles.
type Pattern struct {
	Direction Direction
	// Clock positions of the intruder, relative to the target's heading.
	Clocks []int
	// The bearing is offset from the center of the clock sector by up to
	// +/-Jitter degrees.
	Jitter   float32
	Distance [2]float32
	Angle    [2]float32
	Heading  HeadingRule
	// Maximum allowed difference between the two aircraft's distances to
	// the conflict point.
	Tolerance   float32
	MaxAttempts int
	// If non-zero, VFR/IFR weights that replace the configured ones.
	Rules [2]int
	// The intruder must be faster than the target.
	Overtake bool
}

var patterns = [NumDirections]Pattern{
	CrossingLeftToRight: {
		Direction:   CrossingLeftToRight,
		Clocks:      []int{10, 11},
		Jitter:      10,
		Distance:    [2]float32{3, 8},
		Angle:       [2]float32{55, 125},
		Heading:     AddAngle,
		Tolerance:   2,
		MaxAttempts: 500,
	},
	CrossingRightToLeft: {
		Direction:   CrossingRightToLeft,
		Clocks:      []int{1, 2},
		Jitter:      10,
		Distance:    [2]float32{3, 8},
		Angle:       [2]float32{55, 125},
		Heading:     SubtractAngle,
		Tolerance:   2,
		MaxAttempts: 500,
	},
	Converging: {
		Direction:   Converging,
		Clocks:      []int{2, 3, 9, 10},
		Jitter:      10,
		Distance:    [2]float32{2, 5},
		Angle:       [2]float32{5, 39},
		Heading:     TowardTrack,
		Tolerance:   2,
		MaxAttempts: 1000,
	},
	OppositeDirection: {
		Direction:   OppositeDirection,
		Clocks:      []int{12},
		Jitter:      5,
		Distance:    [2]float32{4, 9},
		Angle:       [2]float32{-5, 5},
		Heading:     Reciprocal,
		Tolerance:   1,
		MaxAttempts: 2000,
		Rules:       [2]int{30, 70},
	},
	Overtaking: {
		Direction:   Overtaking,
		Clocks:      []int{5, 6, 7},
		Jitter:      10,
		Distance:    [2]float32{2, 6},
		Angle:       [2]float32{15, 25},
		Heading:     TowardTrack,
		Tolerance:   2.5,
		MaxAttempts: 5000,
		Overtake:    true,
	},
}

// LookupPattern returns a copy of the built-in pattern for d.
func LookupPattern(d Direction) Pattern {
	p := patterns[d]
	p.Clocks = slices.Clone(p.Clocks)
	return p
}

// relativeBearing samples the intruder's bearing from the target, in
// degrees clockwise from the target's heading.
func (p Pattern) relativeBearing(r *rand.Rand) float32 {
	clock := rand.SampleSlice(r, p.Clocks)
	return math.NormalizeHeading(math.HourAsHeading(clock) + r.Uniform(-p.Jitter, p.Jitter))
}

// intruderHeading applies the pattern's heading rule.
func (p Pattern) intruderHeading(targetHeading, relBearing, angle float32) float32 {
	switch p.Heading {
	case AddAngle:
		return math.NormalizeHeading(targetHeading + angle)
	case SubtractAngle:
		return math.NormalizeHeading(targetHeading - angle)
	case TowardTrack:
		if relBearing < 180 {
			// On the target's right; turn left toward its track.
			return math.NormalizeHeading(targetHeading - angle)
		}
		return math.NormalizeHeading(targetHeading + angle)
	case Reciprocal:
		return math.NormalizeHeading(math.OppositeHeading(targetHeading) + angle)
	default:
		panic("unhandled HeadingRule")
	}
}
