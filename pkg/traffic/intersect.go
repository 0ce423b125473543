// pkg/traffic/intersect.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	"fmt"
	"strings"

	"github.com/omareltomy/atc-ready/pkg/math"
)

// Bounds on the conflict point's distance ahead of the target, in
// nautical miles.
const (
	MinConflictDistance = 2
	MaxConflictDistance = 6
)

// Rays whose direction determinant is smaller than this are treated as
// parallel.
const parallelEpsilon = 1e-3

// Conflict is the point where the two aircraft's forward tracks cross.
type Conflict struct {
	Point [2]float32
	// Distances in nautical miles from each aircraft to Point, along
	// its track.
	TargetDistance   float32
	IntruderDistance float32
}

// Asymmetry returns the difference between the two aircraft's distances
// to the conflict point.
func (c Conflict) Asymmetry() float32 {
	return math.Abs(c.TargetDistance - c.IntruderDistance)
}

type rejectReason int

const (
	rejectParallel rejectReason = iota
	rejectBehind
	rejectRange
	rejectAsymmetry
	rejectSameLevel
	rejectSpeed
	numRejectReasons
)

func (r rejectReason) String() string {
	return [...]string{"parallel", "behind", "range", "asymmetry", "same level", "speed"}[r]
}

// Rejections counts the candidates rejected for each reason.
type Rejections [numRejectReasons]int

func (r Rejections) Total() int {
	n := 0
	for _, c := range r {
		n += c
	}
	return n
}

func (r Rejections) String() string {
	var s []string
	for i, c := range r {
		if c > 0 {
			s = append(s, fmt.Sprintf("%s: %d", rejectReason(i), c))
		}
	}
	if len(s) == 0 {
		return "none rejected"
	}
	return strings.Join(s, ", ")
}

// findConflict intersects the target's track from the origin with the
// intruder's and checks the result against the pattern's limits.
func findConflict(targetHeading float32, intruderPos [2]float32, intruderHeading float32,
	tolerance float32) (Conflict, rejectReason, bool) {
	dt, di := math.HeadingVector(targetHeading), math.HeadingVector(intruderHeading)

	t, s, ok := math.RayRayIntersect([2]float32{}, dt, intruderPos, di, parallelEpsilon)
	if !ok {
		return Conflict{}, rejectParallel, false
	}
	if t <= 0 || s <= 0 {
		return Conflict{}, rejectBehind, false
	}

	c := Conflict{
		Point:            math.Scale2f(dt, t),
		TargetDistance:   t,
		IntruderDistance: s,
	}
	if t < MinConflictDistance || t > MaxConflictDistance {
		return c, rejectRange, false
	}
	if c.Asymmetry() > tolerance {
		return c, rejectAsymmetry, false
	}
	return c, 0, true
}
