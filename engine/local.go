package engine

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// WithTimeBudget gives each side a total thinking time for the game.
func WithTimeBudget(budget time.Duration) Option {
	return func(e *localEngine) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithBoard starts the game from a copy of b instead of the opening.
// Agents must be set up with the same position.
func WithBoard(b *game.GameBoard, toMove game.Side) Option {
	return func(e *localEngine) {
		e.board = b.Clone()
		e.toMove = toMove
	}
}

var _ Engine = (*localEngine)(nil)

type localEngine struct {
	board    *game.GameBoard
	toMove   game.Side
	agents   [2]Agent
	budget   time.Duration
	maxTurns int
}

// LocalEngine referees a game between two agents in this process.
func LocalEngine(black, white Agent, options ...Option) *localEngine {
	if black == nil || white == nil {
		panic("need an agent for each side")
	}
	e := &localEngine{ // Default values
		board:    game.NewBoard(),
		toMove:   game.Black,
		agents:   [2]Agent{black, white},
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	if e.toMove != game.Black && e.toMove != game.White {
		panic("side to move must be black or white, got " + e.toMove.String())
	}
	return e
}

// Board returns a copy of the referee's board.
func (e *localEngine) Board() *game.GameBoard {
	return e.board.Clone()
}

func (e *localEngine) agent(side game.Side) Agent {
	return e.agents[side-game.Black]
}

func (e *localEngine) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	remaining := map[game.Side]time.Duration{game.Black: e.budget, game.White: e.budget}
	side := e.toMove
	last := game.Pass

	log.Info().Stringer("side", side).Msg("game starting")

	for step := 1; !e.board.IsDone() && step <= e.maxTurns; step++ {
		msLeft := meta.Unlimited
		if e.budget > 0 {
			msLeft = int(remaining[side].Milliseconds())
		}

		start := time.Now()
		turn, err := e.agent(side).ComputeMove(last, msLeft)
		elapsed := time.Since(start)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, errors.WithMessagef(err, "%s on turn %d", side, step)
		}

		if e.budget > 0 {
			remaining[side] -= elapsed
			if remaining[side] < 0 {
				return game.Empty, gameMetric, moveMetrics, errors.Wrapf(ErrTimeExceeded, "%s on turn %d", side, step)
			}
		}

		if turn.Played {
			if !e.board.CheckMove(turn.Move, side) {
				return game.Empty, gameMetric, moveMetrics, errors.Wrapf(ErrIllegalMove, "%s plays %s on turn %d", side, turn.Move, step)
			}
			e.board.DoMove(turn.Move, side)
			gameMetric.TotalMoves++
		} else {
			if e.board.HasMoves(side) {
				return game.Empty, gameMetric, moveMetrics, errors.Wrapf(ErrIllegalPass, "%s on turn %d", side, step)
			}
			gameMetric.Passes++
		}

		moveMetric := metrics.MoveMetric{Step: step, Side: side, Turn: turn}
		if r, ok := e.agent(side).(Reporter); ok {
			moveMetric.SearchMetric = r.LastSearch()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().Int("step", step).Stringer("side", side).Stringer("turn", turn).Msg("turn played")

		last = turn
		side = side.Opponent()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.BlackDiscs = e.board.Count(game.Black)
	gameMetric.WhiteDiscs = e.board.Count(game.White)
	gameMetric.Winner = e.board.Winner()

	if !e.board.IsDone() {
		log.Warn().Int("maxTurns", e.maxTurns).Msg("stopped before the game finished")
	}
	log.Info().
		Stringer("winner", gameMetric.Winner).
		Int("black", gameMetric.BlackDiscs).
		Int("white", gameMetric.WhiteDiscs).
		Msg("game over")

	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
