package player

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrIllegalOpponentMove = errors.New("illegal opponent move")

// Player tracks the game from one side's point of view and picks that
// side's moves. Calls to ComputeMove must not overlap.
type Player struct {
	board    *game.GameBoard
	mySide   game.Side
	opSide   game.Side
	strategy searcher.Strategy
	last     metrics.SearchMetric
}

// NewPlayer creates a player for side starting from the opening position.
func NewPlayer(side game.Side, strategy searcher.Strategy) *Player {
	if side != game.Black && side != game.White {
		panic("player side must be black or white")
	}
	return &Player{
		board:    game.NewBoard(),
		mySide:   side,
		opSide:   side.Opponent(),
		strategy: strategy,
	}
}

func (p *Player) Side() game.Side {
	return p.mySide
}

func (p *Player) Strategy() searcher.Strategy {
	return p.strategy
}

// Board returns a copy of the player's view of the game.
func (p *Player) Board() *game.GameBoard {
	return p.board.Clone()
}

// SetBoard replaces the player's view of the game with a copy of b.
func (p *Player) SetBoard(b *game.GameBoard) {
	p.board = b.Clone()
}

// LastSearch reports the metrics of the most recent search.
func (p *Player) LastSearch() metrics.SearchMetric {
	return p.last
}

// ComputeMove applies the opponent's last turn, then picks, applies and
// returns this side's reply. A pass is returned when this side has no legal
// move. msLeft is advisory; meta.Unlimited means no limit.
//
// An illegal opponent move is rejected and leaves the board unchanged.
func (p *Player) ComputeMove(opponentsMove game.Turn, msLeft int) (game.Turn, error) {
	if opponentsMove.Played {
		if !p.board.CheckMove(opponentsMove.Move, p.opSide) {
			return game.Pass, errors.Wrapf(ErrIllegalOpponentMove, "%s plays %s", p.opSide, opponentsMove.Move)
		}
		p.board.DoMove(opponentsMove.Move, p.opSide)
	}

	candidates := game.LegalMoves(p.mySide, p.board)
	if len(candidates) == 0 {
		p.last = metrics.SearchMetric{Strategy: p.strategy.Name()}
		log.Debug().Stringer("side", p.mySide).Msg("no legal move, passing")
		return game.Pass, nil
	}

	start := time.Now()
	decision := p.strategy.Choose(p.board, candidates, p.mySide, p.opSide)
	elapsed := time.Since(start)
	p.last = decision.Metric

	if !decision.Found || !p.board.CheckMove(decision.Move, p.mySide) {
		panic("strategy " + p.strategy.Name() + " returned no legal move from a non-empty candidate list")
	}
	if msLeft != meta.Unlimited && elapsed > time.Duration(msLeft)*time.Millisecond {
		log.Warn().
			Stringer("side", p.mySide).
			Dur("elapsed", elapsed).
			Int("msLeft", msLeft).
			Msg("search ran past the time left")
	}

	p.board.DoMove(decision.Move, p.mySide)
	return game.Play(decision.Move), nil
}
