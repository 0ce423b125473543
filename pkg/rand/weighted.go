// pkg/rand/weighted.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyWeights      = errors.New("weighted table has no entries")
	ErrNonPositiveWeight = errors.New("weighted table entry has non-positive weight")
)

// WeightedEntry is a single labeled outcome in a Weighted table.
type WeightedEntry[T any] struct {
	Value  T
	Weight int
}

// Weighted is an ordered table of outcomes that is sampled with
// probability proportional to each entry's integer weight. Unlike
// SampleWeighted, the table is validated once up front and sampling
// consumes exactly one random number, so the outcome for a given seed
// depends only on the table's order and weights.
type Weighted[T any] struct {
	entries    []WeightedEntry[T]
	cumulative []int
}

// MakeWeighted returns a Weighted table for the given entries. All weights
// must be positive.
func MakeWeighted[T any](entries ...WeightedEntry[T]) (Weighted[T], error) {
	if len(entries) == 0 {
		return Weighted[T]{}, ErrEmptyWeights
	}

	w := Weighted[T]{
		entries:    append([]WeightedEntry[T](nil), entries...),
		cumulative: make([]int, len(entries)),
	}
	sum := 0
	for i, e := range entries {
		if e.Weight <= 0 {
			return Weighted[T]{}, fmt.Errorf("%v: %d: %w", e.Value, e.Weight, ErrNonPositiveWeight)
		}
		sum += e.Weight
		w.cumulative[i] = sum
	}
	return w, nil
}

// MustMakeWeighted is like MakeWeighted but panics if the table is
// invalid; it is intended for tables that are compiled into the program.
func MustMakeWeighted[T any](entries ...WeightedEntry[T]) Weighted[T] {
	w, err := MakeWeighted(entries...)
	if err != nil {
		panic(err)
	}
	return w
}

// Sample returns one of the table's values. The draw d is uniform in
// [0,sum) and the first entry whose running sum exceeds d is returned.
func (w Weighted[T]) Sample(r *Rand) T {
	d := r.Intn(w.Sum())
	for i, c := range w.cumulative {
		if c > d {
			return w.entries[i].Value
		}
	}
	// Unreachable: d < sum == cumulative[len-1].
	return w.entries[len(w.entries)-1].Value
}

// Sum returns the sum of all of the weights.
func (w Weighted[T]) Sum() int {
	if len(w.cumulative) == 0 {
		return 0
	}
	return w.cumulative[len(w.cumulative)-1]
}

func (w Weighted[T]) Len() int {
	return len(w.entries)
}

// Entries returns a copy of the table's entries, in order.
func (w Weighted[T]) Entries() []WeightedEntry[T] {
	return append([]WeightedEntry[T](nil), w.entries...)
}

// Probability returns the probability of sampling the i'th entry.
func (w Weighted[T]) Probability(i int) float32 {
	return float32(w.entries[i].Weight) / float32(w.Sum())
}
