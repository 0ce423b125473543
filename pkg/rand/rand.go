// pkg/rand/rand.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"sync/atomic"
	"time"

	"github.com/MichaelTJones/pcg"
)

///////////////////////////////////////////////////////////////////////////
// Random numbers.

// Rand is a PCG32-based random number generator. It is not safe for
// concurrent use; each goroutine that needs random numbers should Make()
// its own.
type Rand struct {
	r *pcg.PCG32
}

var makeCount atomic.Int64

// Make returns a new Rand seeded from the current time. Rands made at
// the same instant still get distinct seeds.
func Make() *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	r.Seed(time.Now().UnixNano() ^ (makeCount.Add(1) * 0x5851f42d4c957f2d))
	return r
}

// MakeSeeded returns a new Rand that produces the same sequence of values
// for the same seed.
func MakeSeeded(s int64) *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	r.Seed(s)
	return r
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), 0xda3e39cb94b95bdb)
}

func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

// Float32 returns a value in [0,1). Only the high 24 bits are used so
// that the float32 conversion can never round up to 1.
func (r *Rand) Float32() float32 {
	return float32(r.r.Random()>>8) / (1 << 24)
}

func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

// Uniform returns a value uniformly distributed in [lo,hi).
func (r *Rand) Uniform(lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}

// IntRange returns an integer uniformly distributed in [lo,hi].
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Bool returns true with probability p.
func (r *Rand) Bool(p float32) bool {
	return r.Float32() < p
}

// SampleSlice uniformly randomly samples an element of a non-empty slice.
func SampleSlice[T any](r *Rand, slice []T) T {
	return slice[r.Intn(len(slice))]
}

// SampleWeighted randomly samples an element from the given slice with the
// probability of choosing each element proportional to the value returned
// by the provided callback.
func SampleWeighted[T any](r *Rand, slice []T, weight func(T) int) (T, bool) {
	// Weighted reservoir sampling...
	var v T
	ok := false
	sumWt := 0
	for _, s := range slice {
		w := weight(s)
		if w <= 0 {
			continue
		}

		sumWt += w
		p := float32(w) / float32(sumWt)
		if r.Float32() < p {
			v, ok = s, true
		}
	}
	return v, ok
}
