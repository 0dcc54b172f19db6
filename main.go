package main

import (
	"alphabeta/engine"
	"alphabeta/experiments"
	"alphabeta/game/boxes"
	"alphabeta/meta"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var bar = strings.Repeat("=", 50)

func main() {
	size := flag.Int("size", meta.BOARD_SIZE, "Number of dots per side of the board (at least 2)")
	depth1 := flag.Int("depth1", meta.DEPTH, "Search depth of player 1 (at least 1)")
	depth2 := flag.Int("depth2", 0, "Search depth of player 2 (at least 1, defaults to depth1)")
	experiment := flag.String("experiment", "", "Run the depth experiment described by this YAML file instead of a single game")
	pruning := flag.Bool("pruning", false, "With -experiment, compare alpha-beta with minimax instead of playing games")
	cpuProfile := flag.String("cpuprofile", "", "Write a CPU profile to this directory")
	verbose := flag.Bool("v", false, "Log every searched move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet).Stop()
	}

	var err error
	if *experiment != "" {
		err = runExperiment(*experiment, *pruning)
	} else {
		if *depth2 == 0 {
			*depth2 = *depth1
		}
		err = playGame(os.Stdout, *size, *depth1, *depth2)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func runExperiment(path string, pruning bool) error {
	cfg, err := experiments.LoadConfig(path)
	if err != nil {
		return err
	}
	if pruning {
		_, err = experiments.RunPruningExperiment(cfg)
		return err
	}

	result, err := experiments.RunDepthExperiment(context.Background(), cfg)
	if err != nil {
		return err
	}
	if result.Dir != "" {
		log.Info().Msgf("results written to %s", result.Dir)
	}
	return nil
}

// playGame plays one game of dots and boxes and prints every position to w.
func playGame(w io.Writer, size, depth1, depth2 int) error {
	if size < 2 {
		return errors.Errorf("board size must be at least 2, got %d", size)
	}

	e, err := engine.New(boxes.New(size), map[string]int{
		boxes.PlayerOne: depth1,
		boxes.PlayerTwo: depth2,
	}, boxes.Evaluate)
	if err != nil {
		return err
	}

	for step, err := range e.Steps() {
		if err != nil {
			return err
		}
		if !step.IsInitial() {
			fmt.Fprintf(w, "%s's move value: %g\n", step.Player, step.Value)
			fmt.Fprintln(w, bar)
		}
		fmt.Fprintln(w, step.State)
		fmt.Fprintln(w, bar)
	}

	if winner := e.State.(*boxes.State).Winner(); winner != "" {
		fmt.Fprintf(w, "%s won\n", winner)
	} else {
		fmt.Fprintln(w, "Draw")
	}
	return nil
}
