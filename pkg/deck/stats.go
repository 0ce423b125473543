// pkg/deck/stats.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package deck

import (
	"fmt"
	"io"
	"text/tabwriter"

	av "github.com/omareltomy/atc-ready/pkg/aviation"
	"github.com/omareltomy/atc-ready/pkg/traffic"
)

// Stats summarizes the contents of a deck.
type Stats struct {
	Count        int
	Directions   [traffic.NumDirections]int
	VFRTargets   int
	VFRIntruders int
	Military     int
	Heavy        int
	LevelChanges int
	SameLevel    int
	Attempts     [traffic.NumDirections]int
}

func (d *Deck) Stats() Stats {
	var s Stats
	for _, ex := range d.Exercises {
		s.Count++
		s.Directions[ex.Direction]++
		s.Attempts[ex.Direction] += ex.Attempts
		if ex.Target.Rules == av.FlightRulesVFR {
			s.VFRTargets++
		}
		if ex.Intruder.Rules == av.FlightRulesVFR {
			s.VFRIntruders++
		}
		if ex.Intruder.Military {
			s.Military++
		}
		if ex.Intruder.Type.IsHeavy() {
			s.Heavy++
		}
		if ex.Intruder.LevelChange != nil {
			s.LevelChanges++
		}
		if ex.Vertical == "same level" {
			s.SameLevel++
		}
	}
	return s
}

// MeanAttempts returns the average number of candidates drawn per
// exercise of the given direction.
func (s Stats) MeanAttempts(d traffic.Direction) float32 {
	if s.Directions[d] == 0 {
		return 0
	}
	return float32(s.Attempts[d]) / float32(s.Directions[d])
}

func (s Stats) Write(w io.Writer) error {
	pct := func(n int) float32 {
		if s.Count == 0 {
			return 0
		}
		return 100 * float32(n) / float32(s.Count)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Exercises\t%d\n", s.Count)
	for d := range traffic.NumDirections {
		fmt.Fprintf(tw, "  %s\t%d\t%.1f%%\t%.1f attempts\n", d, s.Directions[d], pct(s.Directions[d]),
			s.MeanAttempts(d))
	}
	fmt.Fprintf(tw, "VFR targets\t%d\t%.1f%%\n", s.VFRTargets, pct(s.VFRTargets))
	fmt.Fprintf(tw, "VFR intruders\t%d\t%.1f%%\n", s.VFRIntruders, pct(s.VFRIntruders))
	fmt.Fprintf(tw, "Military intruders\t%d\t%.1f%%\n", s.Military, pct(s.Military))
	fmt.Fprintf(tw, "Heavy intruders\t%d\t%.1f%%\n", s.Heavy, pct(s.Heavy))
	fmt.Fprintf(tw, "Level changes\t%d\t%.1f%%\n", s.LevelChanges, pct(s.LevelChanges))
	fmt.Fprintf(tw, "Same level\t%d\t%.1f%%\n", s.SameLevel, pct(s.SameLevel))
	return tw.Flush()
}
