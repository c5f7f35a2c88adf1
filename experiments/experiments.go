package experiments

import (
	"runtime"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/player"
	"othello/searcher"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const NumGames = 20 // Per match up

// BaselineConfig is the opponent every strategy meets in RunStrengthExperiment.
var BaselineConfig = metrics.AgentConfig{ID: 0, Config: "greedy"}

var strengthConfigs = []metrics.AgentConfig{
	{ID: 1, Config: "random"},
	{ID: 2, Config: "greedy"},
	{ID: 3, Config: "worstcase"},
	{ID: 4, Config: "minimax:depth=3"},
	{ID: 5, Config: "minimax:depth=4"},
	{ID: 6, Config: "minimax:depth=3,eval=parity"},
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // By AgentConfig.ID
	Draws int
	Dir   string // Where records were written, if anywhere
}

// RunStrengthExperiment pairs each strategy against the greedy baseline.
func RunStrengthExperiment(games int, outDir string) (Result, error) {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range strengthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{BaselineConfig, config})
	}
	return Run("strength", append(strengthConfigs, BaselineConfig), matchUps, games, outDir)
}

// Run plays games per matchup, swapping colours every game, and writes the
// records under outDir unless it is empty.
func Run(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int, outDir string) (Result, error) {
	if games <= 0 {
		games = NumGames
	}

	log.Info().Msgf("starting %s experiment...", name)

	type job struct {
		matchUp int
		black   metrics.AgentConfig
		white   metrics.AgentConfig
		seed    uint64
	}
	var jobs []job
	for mi, matchUp := range matchUps {
		for i := 0; i < games; i++ {
			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}
			jobs = append(jobs, job{matchUp: mi, black: black, white: white, seed: uint64(len(jobs) + 1)})
		}
	}

	gameRecords := make([]metrics.GameRecord, len(jobs))
	moveRecords := make([][]metrics.MoveRecord, len(jobs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for ji, j := range jobs {
		ji, j := ji, j
		g.Go(func() error {
			gameRecord, moves, err := runGame(j.black, j.white, j.seed)
			if err != nil {
				return errors.WithMessagef(err, "matchup %d game %d (%s vs %s)", j.matchUp+1, ji+1, j.black.Config, j.white.Config)
			}
			gameRecords[ji] = gameRecord
			moveRecords[ji] = moves

			log.Info().Msgf("completed matchup %d of %d game %s with winner: %s", j.matchUp+1, len(matchUps), gameRecord.ID, gameRecord.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{Games: gameRecords, Wins: map[int]int{}}
	for i, record := range gameRecords {
		switch record.Winner {
		case game.Black:
			result.Wins[record.Black]++
		case game.White:
			result.Wins[record.White]++
		default:
			result.Draws++
		}
		result.Moves = append(result.Moves, moveRecords[i]...)
	}

	log.Info().Msgf("completed %s experiment", name)

	if outDir == "" {
		return result, nil
	}
	dir, err := write(name, outDir, configs, result)
	if err != nil {
		return Result{}, err
	}
	result.Dir = dir
	return result, nil
}

func write(name, outDir string, configs []metrics.AgentConfig, result Result) (string, error) {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return "", errors.WithMessage(err, "failed to create experiment writer")
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", errors.WithMessage(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", errors.WithMessage(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", errors.WithMessage(err, "failed to write move records")
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays one game between two configured agents.
func runGame(black, white metrics.AgentConfig, seed uint64) (metrics.GameRecord, []metrics.MoveRecord, error) {
	blackStrategy, err := searcher.New(black.Config, searcher.WithMetrics(), searcher.WithSeed(seed))
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	whiteStrategy, err := searcher.New(white.Config, searcher.WithMetrics(), searcher.WithSeed(seed+1<<32))
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.LocalEngine(
		player.NewPlayer(game.Black, blackStrategy),
		player.NewPlayer(game.White, whiteStrategy),
	)
	_, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	id := uuid.NewString()
	moves := make([]metrics.MoveRecord, 0, len(moveMetrics))
	for _, mm := range moveMetrics {
		moves = append(moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return metrics.GameRecord{
		ID:         id,
		Black:      black.ID,
		White:      white.ID,
		GameMetric: gameMetric,
	}, moves, nil
}
