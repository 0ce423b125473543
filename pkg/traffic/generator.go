// pkg/traffic/generator.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	"fmt"
	"log/slog"

	av "github.com/omareltomy/atc-ready/pkg/aviation"
	"github.com/omareltomy/atc-ready/pkg/log"
	"github.com/omareltomy/atc-ready/pkg/rand"
)

// Generator produces traffic exercises. It owns its random number
// generator and is not safe for concurrent use; create one per
// goroutine.
type Generator struct {
	cfg Config
	r   *rand.Rand
	lg  *log.Logger
	db  *av.StaticDatabase

	directions   rand.Weighted[Direction]
	patterns     [NumDirections]Pattern
	patternRules [NumDirections]rand.Weighted[av.FlightRules]
}

// NewGenerator returns a Generator for the given configuration. If r is
// nil, a time-seeded Rand is used. lg may be nil.
func NewGenerator(cfg Config, r *rand.Rand, lg *log.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.Make()
	}

	g := &Generator{
		cfg: cfg,
		r:   r,
		lg:  lg,
		db:  av.DB,
	}

	var entries []rand.WeightedEntry[Direction]
	for _, dw := range cfg.directionWeights() {
		entries = append(entries, rand.WeightedEntry[Direction]{Value: dw.Direction, Weight: dw.Weight})
	}
	var err error
	if g.directions, err = rand.MakeWeighted(entries...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	rules := makeRulesTable(cfg.VFRWeight, cfg.IFRWeight)
	for d := range NumDirections {
		p := LookupPattern(d)
		if n, ok := cfg.MaxAttempts[d]; ok {
			p.MaxAttempts = n
		}
		g.patterns[d] = p

		if p.Rules != [2]int{} {
			g.patternRules[d] = makeRulesTable(p.Rules[0], p.Rules[1])
		} else {
			g.patternRules[d] = rules
		}
	}

	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate returns a new exercise for a randomly selected direction.
func (g *Generator) Generate() (Exercise, error) {
	return g.GenerateDirection(g.directions.Sample(g.r))
}

// GenerateDirection returns a new exercise for the given direction. If
// no valid geometry is found within the direction's attempt budget, the
// returned error is an *ExhaustedError.
func (g *Generator) GenerateDirection(d Direction) (Exercise, error) {
	if d < 0 || d >= NumDirections {
		return Exercise{}, fmt.Errorf("%d: %w", d, ErrUnknownDirection)
	}

	c, attempts, rej, err := g.solve(g.patterns[d])
	if err != nil {
		g.lg.Warn("traffic pattern exhausted", slog.String("direction", d.String()),
			slog.Int("attempts", attempts), slog.String("rejections", rej.String()))
		return Exercise{}, err
	}
	g.lg.Debug("traffic pattern solved", slog.String("direction", d.String()),
		slog.Int("attempts", attempts), slog.String("rejections", rej.String()))

	r := g.r
	target := Aircraft{
		Callsign: g.db.Callsigns.Generate(r, c.TargetRules, av.RoleTarget, false),
		Wake:     c.TargetType.Wake,
		Type:     *c.TargetType,
		Rules:    c.TargetRules,
		Heading:  c.TargetHeading,
		Altitude: c.TargetAltitude,
		Speed:    c.TargetSpeed,
		History:  trackHistory([2]float32{}, c.TargetHeading, c.TargetSpeed),
	}
	intruder := Aircraft{
		Callsign: g.db.Callsigns.Generate(r, c.IntruderRules, av.RoleIntruder, c.IntruderMilitary),
		Wake:     c.IntruderType.Wake,
		Type:     *c.IntruderType,
		Rules:    c.IntruderRules,
		Military: c.IntruderMilitary,
		Heading:  c.IntruderHeading,
		Altitude: c.IntruderAltitude,
		Speed:    c.IntruderSpeed,
		Position: c.IntruderPosition,
		History:  trackHistory(c.IntruderPosition, c.IntruderHeading, c.IntruderSpeed),
	}
	intruder.LevelChange = sampleLevelChange(r, intruder.Rules, target.Altitude, intruder.Altitude,
		g.cfg.LevelChangeProbability)

	ex := assembleExercise(target, intruder, d, c.Conflict, g.cfg.SameLevelThreshold)
	ex.Attempts = attempts
	return ex, nil
}

// Generate returns an exercise from a new time-seeded Generator with the
// default configuration. It may be called concurrently.
func Generate() (Exercise, error) {
	g, err := NewGenerator(DefaultConfig(), nil, nil)
	if err != nil {
		return Exercise{}, err
	}
	return g.Generate()
}
