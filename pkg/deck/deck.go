// pkg/deck/deck.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package deck builds, stores, and reloads fixed sets of traffic
// exercises so that a drill session can be replayed.
package deck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/omareltomy/atc-ready/pkg/log"
	"github.com/omareltomy/atc-ready/pkg/rand"
	"github.com/omareltomy/atc-ready/pkg/traffic"

	"github.com/brunoga/deep"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"
)

// Version is the current file format version; it is bumped whenever a
// change to traffic.Exercise would break decoding of older decks.
const Version = 1

// Deck is an ordered set of exercises.
type Deck struct {
	Version   int
	Created   time.Time
	Seed      int64
	Exercises []traffic.Exercise
}

// New returns a deck holding copies of the given exercises.
func New(seed int64, ex []traffic.Exercise) *Deck {
	return &Deck{
		Version:   Version,
		Created:   time.Now().UTC(),
		Seed:      seed,
		Exercises: deep.MustCopy(ex),
	}
}

func (d *Deck) Len() int {
	return len(d.Exercises)
}

// Exercise returns a copy of the i'th exercise; modifying it doesn't
// affect the deck.
func (d *Deck) Exercise(i int) traffic.Exercise {
	return deep.MustCopy(d.Exercises[i])
}

// Build generates n exercises with g. Patterns that run out of attempts
// are logged and retried; if more than n of them fail overall, Build
// gives up and returns an error wrapping ErrTooManyFailures.
func Build(g *traffic.Generator, n int, lg *log.Logger) ([]traffic.Exercise, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%d: %w", n, ErrInvalidSize)
	}

	ex := make([]traffic.Exercise, 0, n)
	failures := 0
	for len(ex) < n {
		e, err := g.Generate()
		if errors.Is(err, traffic.ErrPatternExhausted) {
			failures++
			if failures > n {
				return nil, fmt.Errorf("%d failures: %w: %w", failures, ErrTooManyFailures, err)
			}
			lg.Warnf("retrying: %v", err)
			continue
		} else if err != nil {
			return nil, err
		}
		ex = append(ex, e)
	}
	return ex, nil
}

// BuildParallel generates a deck of n exercises using the given number
// of workers. Worker i has its own Generator seeded with seed+i and
// fills slots i, i+workers, i+2*workers, and so on, so the deck depends
// only on the configuration, seed, n, and workers.
func BuildParallel(cfg traffic.Config, seed int64, n, workers int, lg *log.Logger) (*Deck, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%d: %w", n, ErrInvalidSize)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("%d: %w", workers, ErrInvalidWorkers)
	}
	workers = min(workers, n)

	ex := make([]traffic.Exercise, n)
	var eg errgroup.Group
	for w := range workers {
		eg.Go(func() error {
			g, err := traffic.NewGenerator(cfg, rand.MakeSeeded(seed+int64(w)), lg.With("worker", w))
			if err != nil {
				return err
			}

			count := (n - w + workers - 1) / workers
			batch, err := Build(g, count, lg)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			for i, e := range batch {
				ex[w+i*workers] = e
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	lg.Infof("built deck of %d exercises with %d workers", n, workers)

	return &Deck{
		Version:   Version,
		Created:   time.Now().UTC(),
		Seed:      seed,
		Exercises: ex,
	}, nil
}

// Load reads a deck written by Save.
func Load(r io.Reader) (*Deck, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	dec := msgpack.NewDecoder(zr)
	version, err := dec.DecodeInt()
	if err != nil {
		return nil, fmt.Errorf("failed to decode deck version: %w", err)
	}
	if version != Version {
		return nil, fmt.Errorf("%d: %w", version, ErrDeckVersion)
	}

	var d Deck
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode deck: %w", err)
	}
	return &d, nil
}

// Save writes the deck as a version number followed by the
// msgpack-encoded deck, compressed with zstd.
func (d *Deck) Save(w io.Writer) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	defer zw.Close()

	enc := msgpack.NewEncoder(zw)
	if err := enc.EncodeInt(int64(d.Version)); err != nil {
		return fmt.Errorf("failed to encode deck version: %w", err)
	}
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}

	return nil
}

func LoadFile(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d *Deck) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := d.Save(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
