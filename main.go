package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"othello/communication/client"
	"othello/communication/server"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "match", "match, serve or experiment")
	black := flag.String("black", "worstcase", "Black strategy, or an agent URL (http://...)")
	white := flag.String("white", "greedy", "White strategy, or an agent URL (http://...)")
	side := flag.String("side", "black", "Side played by the served agent")
	strategy := flag.String("strategy", searcher.DefaultConfig, "Strategy of the served agent ("+strings.Join(searcher.Names(), ", ")+")")
	addr := flag.String("addr", meta.DefaultAddr, "Listen address of the served agent")
	budget := flag.Duration("budget", 0, "Thinking time per side per game (0 for unlimited)")
	games := flag.Int("games", experiments.NumGames, "Games per matchup")
	out := flag.String("out", "experiments", "Directory for experiment records")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if lvl, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var err error
	switch *mode {
	case "match":
		err = runMatch(*black, *white, *budget)
	case "serve":
		err = serve(*side, *strategy, *addr)
	case "experiment":
		var result experiments.Result
		result, err = experiments.RunStrengthExperiment(*games, *out)
		if err == nil {
			log.Info().Str("dir", result.Dir).Interface("wins", result.Wins).Int("draws", result.Draws).Msg("experiment done")
		}
	default:
		err = errors.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("othello failed")
	}
}

func runMatch(blackConfig, whiteConfig string, budget time.Duration) error {
	black, err := newAgent(game.Black, blackConfig)
	if err != nil {
		return err
	}
	white, err := newAgent(game.White, whiteConfig)
	if err != nil {
		return err
	}

	e := engine.LocalEngine(black, white, engine.WithTimeBudget(budget))
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Print(e.Board())
	fmt.Printf("winner: %s (black %d, white %d) in %s\n", winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs, gameMetric.Duration)
	return nil
}

func newAgent(side game.Side, config string) (engine.Agent, error) {
	if strings.HasPrefix(config, "http://") || strings.HasPrefix(config, "https://") {
		return client.NewClient(config), nil
	}
	strategy, err := searcher.New(config, searcher.WithMetrics())
	if err != nil {
		return nil, err
	}
	return player.NewPlayer(side, strategy), nil
}

func serve(sideName, config, addr string) error {
	side, err := game.ParseSide(sideName)
	if err != nil {
		return err
	}
	strategy, err := searcher.New(config)
	if err != nil {
		return err
	}
	return server.NewServer(player.NewPlayer(side, strategy)).ListenAndServe(addr)
}
