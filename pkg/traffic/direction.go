// pkg/traffic/direction.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"
)

// Direction classifies the intruder's movement relative to the target.
type Direction int

const (
	CrossingLeftToRight Direction = iota
	CrossingRightToLeft
	Converging
	OppositeDirection
	Overtaking
	NumDirections
)

// String returns the phrase used for the direction in traffic
// information.
func (d Direction) String() string {
	return [...]string{"crossing left to right", "crossing right to left", "converging",
		"opposite direction", "overtaking"}[d]
}

// Key returns the identifier used for the direction in configuration
// files and on the command line.
func (d Direction) Key() string {
	return strings.ReplaceAll(d.String(), " ", "-")
}

func (d Direction) IsCrossing() bool {
	return d == CrossingLeftToRight || d == CrossingRightToLeft
}

// ParseDirection accepts either a direction's key or its phrase.
func ParseDirection(s string) (Direction, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	for d := range NumDirections {
		if d.Key() == s {
			return d, nil
		}
	}
	return Direction(0), fmt.Errorf("%q: %w", s, ErrUnknownDirection)
}

func (d *Direction) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	dir, err := ParseDirection(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*d = dir
	return nil
}

// DirectionWeight is a direction and its relative selection weight.
type DirectionWeight struct {
	Direction Direction
	Weight    int
}

//go:embed resources/directions.json
var directionsJSON []byte

// defaultDirectionWeights is the direction table in file order; the order
// is part of what makes a seeded Generator reproducible.
var defaultDirectionWeights = mustParseDirectionWeights(directionsJSON)

func mustParseDirectionWeights(b []byte) []DirectionWeight {
	dw, err := parseDirectionWeights(b)
	if err != nil {
		panic(err)
	}
	return dw
}

func parseDirectionWeights(b []byte) ([]DirectionWeight, error) {
	om := orderedmap.New()
	if err := json.Unmarshal(b, om); err != nil {
		return nil, fmt.Errorf("directions.json: %w", err)
	}

	var dw []DirectionWeight
	seen := make(map[Direction]bool)
	for _, k := range om.Keys() {
		d, err := ParseDirection(k)
		if err != nil {
			return nil, fmt.Errorf("directions.json: %w", err)
		}
		if seen[d] {
			return nil, fmt.Errorf("directions.json: %s: repeated", k)
		}
		seen[d] = true

		v, _ := om.Get(k)
		w, ok := v.(float64)
		if !ok || w != float64(int(w)) {
			return nil, fmt.Errorf("directions.json: %s: weight %v is not an integer", k, v)
		}
		dw = append(dw, DirectionWeight{Direction: d, Weight: int(w)})
	}
	if len(seen) != int(NumDirections) {
		return nil, fmt.Errorf("directions.json: expected %d directions, found %d", NumDirections, len(seen))
	}
	return dw, nil
}

// DefaultDirectionWeights returns a copy of the built-in direction
// table, in order.
func DefaultDirectionWeights() []DirectionWeight {
	return append([]DirectionWeight(nil), defaultDirectionWeights...)
}
