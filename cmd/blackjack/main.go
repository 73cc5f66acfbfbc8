package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/pterm/pterm"

	"blackjack/internal/console"
	"blackjack/internal/engine"
	"blackjack/internal/table"
	"blackjack/pkg/types"
)

func main() {
	envFile := flag.String("env", "", "env file to load (default: .env if present)")
	seed := flag.Int64("seed", 0, "shuffle seed (0 = OS entropy)")
	rounds := flag.Int("rounds", 0, "rounds to play (0 = ask after each round)")
	verbose := flag.Bool("verbose", false, "log deck order, events and snapshots")
	noColor := flag.Bool("no-color", false, "disable colored output")
	stack := flag.String("stack", "", "rig the deck with card literals, e.g. \"5H,8C,TD,AS\" (last dealt first)")
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := types.LoadConfig(files...)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// explicit flags win over the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "rounds":
			cfg.Rounds = *rounds
		case "verbose":
			cfg.Verbose = *verbose
		case "no-color":
			cfg.Color = !*noColor
		case "stack":
			cfg.Stack = *stack
		}
	})
	if cfg.Rounds < 0 {
		log.Fatalf("config: rounds must be >= 0, got %d", cfg.Rounds)
	}
	if !cfg.Color {
		pterm.DisableColor()
	}
	rng, err := newSource(cfg.Seed)
	if err != nil {
		log.Fatalf("random source: %v", err)
	}

	c := console.New(os.Stdin, os.Stdout)
	t, err := table.New(cfg, rng, c)
	if err != nil {
		log.Fatalf("%v", err)
	}
	// round logs would interleave with the game; keep them for -verbose
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
	}

	fmt.Println("blackjack: dealer stands on 17, aces count 1 or 11 (your call)")
	tally, err := t.Run()
	if err != nil {
		c.Diagnostic(err)
	}
	c.Infof("rounds=%d player=%d dealer=%d stand-offs=%d",
		tally.Rounds, tally.PlayerWins, tally.DealerWins, tally.StandOffs)
	if err != nil {
		os.Exit(1)
	}
}

func newSource(seed int64) (*rand.Rand, error) {
	if seed != 0 {
		return rand.New(rand.NewSource(seed)), nil
	}
	return engine.NewEntropySource()
}
