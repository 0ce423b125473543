// pkg/traffic/levelchange.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	av "github.com/omareltomy/atc-ready/pkg/aviation"
	"github.com/omareltomy/atc-ready/pkg/math"
	"github.com/omareltomy/atc-ready/pkg/rand"
)

type ClimbDescend int

const (
	Climb ClimbDescend = iota
	Descend
)

func (c ClimbDescend) String() string {
	return [...]string{"climbing", "descending"}[c]
}

// LevelChange is a cleared altitude that takes the intruder through the
// target's level.
type LevelChange struct {
	Altitude  int
	Direction ClimbDescend
}

// How far past the target's altitude a level change may end.
var levelChangeOffsets = []int{500, 1000, 1500}

// sampleLevelChange decides whether an intruder at intruderAlt is
// climbing or descending through targetAlt. It returns nil if the
// intruder isn't IFR, the altitudes are the same, the draw fails, or the
// rounded destination wouldn't take it through the target's level.
func sampleLevelChange(r *rand.Rand, rules av.FlightRules, targetAlt, intruderAlt int, p float32) *LevelChange {
	if rules != av.FlightRulesIFR || targetAlt == intruderAlt || !r.Bool(p) {
		return nil
	}

	lc := &LevelChange{Direction: Climb}
	offset := rand.SampleSlice(r, levelChangeOffsets)
	dest := targetAlt + offset
	if intruderAlt > targetAlt {
		lc.Direction = Descend
		dest = targetAlt - offset
	}

	dest = math.Clamp(dest, av.MinIFRAltitude, av.MaxIFRAltitude)
	lc.Altitude = av.RoundAltitude(float32(dest), av.FlightRulesIFR)

	if !lc.crosses(targetAlt) {
		return nil
	}
	return lc
}

// crosses reports whether the level change ends strictly on the other
// side of alt.
func (lc *LevelChange) crosses(alt int) bool {
	if lc == nil {
		return false
	}
	if lc.Direction == Climb {
		return lc.Altitude > alt
	}
	return lc.Altitude < alt
}
