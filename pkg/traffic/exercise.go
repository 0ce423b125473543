// pkg/traffic/exercise.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	"fmt"
	"strings"

	av "github.com/omareltomy/atc-ready/pkg/aviation"
	"github.com/omareltomy/atc-ready/pkg/math"
)

// Aircraft is one of the two aircraft in an exercise. Positions are in
// nautical miles relative to the target, with +x east and +y north.
type Aircraft struct {
	Callsign string
	Wake     av.WakeCategory
	Type     av.AircraftType
	Rules    av.FlightRules
	Military bool
	Heading  float32
	Altitude int
	// Non-nil if the aircraft is cleared through the target's level.
	LevelChange *LevelChange
	Speed       int
	Position    [2]float32
	// Earlier radar returns, oldest first.
	History [][2]float32
}

// Situation describes where the intruder is from the target pilot's
// point of view.
type Situation struct {
	Clock int
	// Distance is the unrounded distance between the aircraft; Range is
	// what is said in the traffic information.
	Distance  float32
	Range     int
	Direction Direction
	Vertical  string
	Conflict  Conflict
}

// Exercise is a single traffic information drill.
type Exercise struct {
	Target   Aircraft
	Intruder Aircraft
	Situation
	// Solution is the traffic information the trainee should give.
	Solution string
	// Attempts is the number of candidates the solver drew.
	Attempts int
}

func (ex *Exercise) String() string {
	return ex.Solution
}

// assembleExercise fills in the situation and solution from the two
// validated aircraft.
func assembleExercise(target, intruder Aircraft, dir Direction, c Conflict, sameLevelThreshold int) Exercise {
	ex := Exercise{
		Target:   target,
		Intruder: intruder,
		Situation: Situation{
			Direction: dir,
			Conflict:  c,
		},
	}

	rel := math.Sub2f(intruder.Position, target.Position)
	ex.Clock = math.HeadingAsHour(math.VectorHeading(rel) - target.Heading)
	ex.Distance = math.Length2f(rel)
	ex.Range = int(math.Round(ex.Distance))
	ex.Vertical = verticalText(target.Altitude, intruder.Altitude, intruder.LevelChange, sameLevelThreshold)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, traffic, %d o'clock, %d miles, %s, %s, %s", target.Callsign, ex.Clock, ex.Range,
		dir, ex.Vertical, intruder.Type.Name)
	if intruder.Wake == av.WakeHeavy {
		sb.WriteString(", heavy")
	}
	ex.Solution = sb.String()

	return ex
}

// verticalText describes the intruder's altitude relative to the
// target's.
func verticalText(targetAlt, intruderAlt int, lc *LevelChange, threshold int) string {
	d := intruderAlt - targetAlt
	if math.Abs(d) <= threshold && lc == nil {
		return "same level"
	}

	rel := "above"
	if d < 0 {
		rel = "below"
	}
	s := fmt.Sprintf("%d feet %s", roundFeet(math.Abs(d)), rel)

	if lc.crosses(targetAlt) && (d < 0) == (lc.Direction == Climb) {
		s += ", " + lc.Direction.String() + " through your level"
	}
	return s
}

func roundFeet(ft int) int {
	return math.RoundTo(float32(ft), 100)
}
