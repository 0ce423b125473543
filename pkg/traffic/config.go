// pkg/traffic/config.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	"fmt"

	"github.com/omareltomy/atc-ready/pkg/util"
)

// Config holds the tunable parameters of a Generator. The zero value is
// not valid; start from DefaultConfig.
type Config struct {
	// Relative weights of VFR and IFR when choosing flight rules.
	VFRWeight int `yaml:"vfr_weight"`
	IFRWeight int `yaml:"ifr_weight"`
	// Probability that a VFR intruder is military.
	MilitaryProbability float32 `yaml:"military_probability"`
	// Probability that an IFR intruder at a different altitude is given
	// a clearance through the target's level.
	LevelChangeProbability float32 `yaml:"level_change_probability"`
	// Vertical separation in feet at or below which traffic is "same
	// level".
	SameLevelThreshold int `yaml:"same_level_threshold"`
	// Minimum speed advantage in knots of an overtaking intruder.
	OvertakeMargin int `yaml:"overtake_margin"`
	// If set, the intruder always has the target's flight rules.
	MatchFlightRules bool `yaml:"match_flight_rules"`

	// Relative weights of the traffic directions; a zero weight disables
	// the direction.
	DirectionWeights map[Direction]int `yaml:"direction_weights"`
	// Per-direction attempt budgets that replace the built-in ones.
	MaxAttempts map[Direction]int `yaml:"max_attempts,omitempty"`
}

func DefaultConfig() Config {
	c := Config{
		VFRWeight:              75,
		IFRWeight:              25,
		MilitaryProbability:    0.1,
		LevelChangeProbability: 0.3,
		SameLevelThreshold:     200,
		OvertakeMargin:         20,
		DirectionWeights:       make(map[Direction]int),
	}
	for _, dw := range defaultDirectionWeights {
		c.DirectionWeights[dw.Direction] = dw.Weight
	}
	return c
}

// LoadConfig reads YAML overrides of DefaultConfig from the given file
// and validates the result.
func LoadConfig(filename string) (Config, error) {
	cfg, err := util.LoadConfig(filename, DefaultConfig())
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return *cfg, nil
}

// ParseConfig is like LoadConfig but takes the YAML directly.
func ParseConfig(b []byte) (Config, error) {
	cfg, err := util.ParseConfig(b, DefaultConfig())
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return *cfg, nil
}

// Validate checks the configuration, returning an error that wraps
// ErrInvalidConfig and describes every problem found.
func (c Config) Validate() error {
	var e util.ErrorLogger
	c.Check(&e)
	if e.HaveErrors() {
		return fmt.Errorf("%w:\n%s", ErrInvalidConfig, e.String())
	}
	return nil
}

// Check logs every problem with the configuration to e.
func (c Config) Check(e *util.ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	e.Push("Flight rules")
	if c.VFRWeight < 0 || c.IFRWeight < 0 {
		e.ErrorString("weights must not be negative")
	} else if c.VFRWeight+c.IFRWeight == 0 {
		e.ErrorString("at least one of the VFR and IFR weights must be positive")
	}
	e.Pop()

	checkProbability := func(name string, p float32) {
		if p < 0 || p > 1 {
			e.Push(name)
			e.ErrorString("%f is not a probability", p)
			e.Pop()
		}
	}
	checkProbability("Military probability", c.MilitaryProbability)
	checkProbability("Level change probability", c.LevelChangeProbability)

	if c.SameLevelThreshold < 0 {
		e.Push("Same level threshold")
		e.ErrorString("%d must not be negative", c.SameLevelThreshold)
		e.Pop()
	}
	if c.OvertakeMargin <= 0 {
		e.Push("Overtake margin")
		e.ErrorString("%d must be positive", c.OvertakeMargin)
		e.Pop()
	}

	e.Push("Directions")
	sum := 0
	for d, w := range c.DirectionWeights {
		if d < 0 || d >= NumDirections {
			e.ErrorString("%d: %v", d, ErrUnknownDirection)
		} else if w < 0 {
			e.ErrorString("%s: weight %d must not be negative", d, w)
		} else {
			sum += w
		}
	}
	if sum == 0 {
		e.ErrorString("at least one direction must have a positive weight")
	}
	for d, n := range c.MaxAttempts {
		if d < 0 || d >= NumDirections {
			e.ErrorString("%d: %v", d, ErrUnknownDirection)
		} else if n <= 0 {
			e.ErrorString("%s: attempt budget %d must be positive", d, n)
		}
	}
	e.Pop()
}

// directionWeights returns the enabled directions in table order.
func (c Config) directionWeights() []DirectionWeight {
	var dw []DirectionWeight
	for _, d := range defaultDirectionWeights {
		if w := c.DirectionWeights[d.Direction]; w > 0 {
			dw = append(dw, DirectionWeight{Direction: d.Direction, Weight: w})
		}
	}
	return dw
}
