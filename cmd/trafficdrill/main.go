// cmd/trafficdrill/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// trafficdrill generates traffic information exercises and prints them,
// optionally saving them as a deck that can be replayed later.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	av "github.com/omareltomy/atc-ready/pkg/aviation"
	"github.com/omareltomy/atc-ready/pkg/deck"
	"github.com/omareltomy/atc-ready/pkg/log"
	"github.com/omareltomy/atc-ready/pkg/rand"
	"github.com/omareltomy/atc-ready/pkg/traffic"
	"github.com/omareltomy/atc-ready/pkg/util"

	"github.com/goforj/godump"
)

var (
	count      = flag.Int("n", 10, "number of exercises to generate")
	seed       = flag.Int64("seed", 0, "random seed (0: seed from the current time)")
	configFile = flag.String("config", "", "YAML file with generator configuration overrides")
	direction  = flag.String("direction", "", "only generate traffic with the given direction (e.g., converging)")
	logLevel   = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir     = flag.String("logdir", "", "log file directory")
	nWorkers   = flag.Int("workers", 1, "number of worker goroutines")
	dump       = flag.Bool("dump", false, "dump the full contents of each exercise")
	stats      = flag.Bool("stats", false, "print summary statistics of the generated exercises")
	deckFile   = flag.String("deck", "", "write the exercises to the given deck file")
	loadDeck   = flag.String("load", "", "print the exercises from the given deck file rather than generating new ones")
	lint       = flag.Bool("lint", false, "check the built-in reference data and the configuration, then exit")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	if *lint {
		os.Exit(runLint(lg))
	}

	d, err := makeDeck(lg)
	if err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "trafficdrill: %v\n", err)
		os.Exit(1)
	}

	for i := range d.Len() {
		ex := d.Exercise(i)
		fmt.Printf("%3d  %s\n", i+1, ex.Solution)
		if *dump {
			godump.Dump(ex)
		}
	}

	if *stats {
		fmt.Println()
		if err := d.Stats().Write(os.Stdout); err != nil {
			lg.Errorf("%v", err)
		}
	}

	if *deckFile != "" {
		if err := d.SaveFile(*deckFile); err != nil {
			lg.Errorf("%v", err)
			fmt.Fprintf(os.Stderr, "trafficdrill: %v\n", err)
			os.Exit(1)
		}
		lg.Infof("%s: saved %d exercises", *deckFile, d.Len())
	}
}

func makeDeck(lg *log.Logger) (*deck.Deck, error) {
	if *loadDeck != "" {
		return deck.LoadFile(*loadDeck)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	lg.Info("generating exercises", "seed", s, "count", *count, "workers", *nWorkers)

	if *direction == "" {
		return deck.BuildParallel(cfg, s, *count, *nWorkers, lg)
	}

	dir, err := traffic.ParseDirection(*direction)
	if err != nil {
		return nil, err
	}
	g, err := traffic.NewGenerator(cfg, rand.MakeSeeded(s), lg)
	if err != nil {
		return nil, err
	}

	var ex []traffic.Exercise
	for range *count {
		e, err := g.GenerateDirection(dir)
		if err != nil {
			return nil, err
		}
		ex = append(ex, e)
	}
	return deck.New(s, ex), nil
}

func loadConfig() (traffic.Config, error) {
	if *configFile == "" {
		return traffic.DefaultConfig(), nil
	}
	return traffic.LoadConfig(*configFile)
}

// runLint reports every problem it finds rather than stopping at the
// first, returning the process exit code.
func runLint(lg *log.Logger) int {
	var e util.ErrorLogger

	av.DB.Check(&e)

	cfg := traffic.DefaultConfig()
	if *configFile != "" {
		c, err := util.LoadConfig(*configFile, traffic.DefaultConfig())
		if err != nil {
			e.Push(*configFile)
			e.Error(err)
			e.Pop()
		} else {
			cfg = *c
		}
	}
	e.Push("Configuration")
	cfg.Check(&e)
	e.Pop()

	if e.HaveErrors() {
		e.PrintErrors(lg)
		return 1
	}
	fmt.Println("no problems found")
	return 0
}
