// pkg/deck/deck_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package deck

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/omareltomy/atc-ready/pkg/rand"
	"github.com/omareltomy/atc-ready/pkg/traffic"

	"github.com/davecgh/go-spew/spew"
	"github.com/vmihailenco/msgpack/v5"
)

func makeTestDeck(t *testing.T, n int) *Deck {
	t.Helper()
	g, err := traffic.NewGenerator(traffic.DefaultConfig(), rand.MakeSeeded(42), nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	ex, err := Build(g, n, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return New(42, ex)
}

func TestBuild(t *testing.T) {
	d := makeTestDeck(t, 50)
	if d.Len() != 50 || d.Version != Version || d.Seed != 42 {
		t.Errorf("unexpected deck: %d exercises, version %d, seed %d", d.Len(), d.Version, d.Seed)
	}

	g, _ := traffic.NewGenerator(traffic.DefaultConfig(), rand.MakeSeeded(1), nil)
	if _, err := Build(g, 0, nil); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestBuildTooManyFailures(t *testing.T) {
	cfg := traffic.DefaultConfig()
	cfg.DirectionWeights = map[traffic.Direction]int{traffic.Overtaking: 1}
	cfg.SameLevelThreshold = 1000000
	cfg.MaxAttempts = map[traffic.Direction]int{traffic.Overtaking: 10}
	g, err := traffic.NewGenerator(cfg, rand.MakeSeeded(1), nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	_, err = Build(g, 3, nil)
	if !errors.Is(err, ErrTooManyFailures) || !errors.Is(err, traffic.ErrPatternExhausted) {
		t.Errorf("expected ErrTooManyFailures, got %v", err)
	}
}

func TestExerciseCopy(t *testing.T) {
	d := makeTestDeck(t, 5)

	ex := d.Exercise(2)
	if !reflect.DeepEqual(ex, d.Exercises[2]) {
		t.Fatalf("copy differs from the original")
	}
	ex.Target.Callsign = "CHANGED"
	ex.Intruder.History[0] = [2]float32{99, 99}
	if d.Exercises[2].Target.Callsign == "CHANGED" || d.Exercises[2].Intruder.History[0] == ([2]float32{99, 99}) {
		t.Errorf("modifying a copy changed the deck")
	}

	orig := []traffic.Exercise{d.Exercise(0)}
	nd := New(0, orig)
	orig[0].Intruder.History[1] = [2]float32{-1, -1}
	if nd.Exercises[0].Intruder.History[1] == ([2]float32{-1, -1}) {
		t.Errorf("New didn't copy its exercises")
	}
}

func TestSaveLoad(t *testing.T) {
	d := makeTestDeck(t, 100)

	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ld, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ld.Created.Equal(d.Created) || ld.Seed != d.Seed || ld.Version != d.Version {
		t.Errorf("header mismatch: %v/%d/%d vs %v/%d/%d", ld.Created, ld.Seed, ld.Version,
			d.Created, d.Seed, d.Version)
	}
	if !reflect.DeepEqual(ld.Exercises, d.Exercises) {
		t.Errorf("exercises differ after reload:\n%s\n%s", spew.Sdump(ld.Exercises[0]), spew.Sdump(d.Exercises[0]))
	}
}

func TestSaveLoadFile(t *testing.T) {
	d := makeTestDeck(t, 10)
	fn := filepath.Join(t.TempDir(), "drill.deck")
	if err := d.SaveFile(fn); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	ld, err := LoadFile(fn)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if ld.Len() != 10 || ld.Exercises[9].Solution != d.Exercises[9].Solution {
		t.Errorf("reloaded deck differs")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.deck")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoadErrors(t *testing.T) {
	d := makeTestDeck(t, 1)
	d.Version = Version + 1
	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := Load(&buf); !errors.Is(err, ErrDeckVersion) {
		t.Errorf("expected ErrDeckVersion, got %v", err)
	}

	// Uncompressed msgpack isn't a deck.
	b, _ := msgpack.Marshal(Version)
	if _, err := Load(bytes.NewReader(b)); err == nil {
		t.Errorf("expected an error for uncompressed data")
	}
}

func TestBuildParallel(t *testing.T) {
	cfg := traffic.DefaultConfig()
	a, err := BuildParallel(cfg, 7, 41, 4, nil)
	if err != nil {
		t.Fatalf("BuildParallel: %v", err)
	}
	b, err := BuildParallel(cfg, 7, 41, 4, nil)
	if err != nil {
		t.Fatalf("BuildParallel: %v", err)
	}
	if a.Len() != 41 {
		t.Fatalf("expected 41 exercises, got %d", a.Len())
	}
	for i := range a.Exercises {
		if a.Exercises[i].Solution == "" {
			t.Errorf("exercise %d is empty", i)
		}
	}
	if !reflect.DeepEqual(a.Exercises, b.Exercises) {
		t.Errorf("parallel builds with the same seed differ")
	}

	// Worker 0's exercises match a serial build with the same seed.
	g, _ := traffic.NewGenerator(cfg, rand.MakeSeeded(7), nil)
	serial, err := Build(g, 11, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i, e := range serial {
		if e.Solution != a.Exercises[4*i].Solution {
			t.Errorf("exercise %d: %q vs %q", 4*i, a.Exercises[4*i].Solution, e.Solution)
		}
	}

	if _, err := BuildParallel(cfg, 7, 10, 0, nil); !errors.Is(err, ErrInvalidWorkers) {
		t.Errorf("expected ErrInvalidWorkers, got %v", err)
	}
	if _, err := BuildParallel(cfg, 7, 3, 8, nil); err != nil {
		t.Errorf("more workers than exercises: %v", err)
	}
}

func TestStats(t *testing.T) {
	d := makeTestDeck(t, 200)
	s := d.Stats()

	sum := 0
	for _, n := range s.Directions {
		sum += n
	}
	if s.Count != 200 || sum != 200 {
		t.Errorf("counts don't add up: %d, %d", s.Count, sum)
	}
	if s.Military > s.VFRIntruders {
		t.Errorf("%d military intruders but only %d VFR", s.Military, s.VFRIntruders)
	}
	for d := range traffic.NumDirections {
		if s.Directions[d] > 0 && s.MeanAttempts(d) < 1 {
			t.Errorf("%s: mean attempts %f", d, s.MeanAttempts(d))
		}
	}

	var sb strings.Builder
	if err := s.Write(&sb); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(sb.String(), "opposite direction") || !strings.Contains(sb.String(), "Exercises") {
		t.Errorf("unexpected stats output:\n%s", sb.String())
	}
}
