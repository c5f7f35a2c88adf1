package player

import (
	"testing"

	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

func TestComputeMove(t *testing.T) {
	t.Run("first move on the opening", func(t *testing.T) {
		p := NewPlayer(game.Black, searcher.NewWorstCase())

		got, err := p.ComputeMove(game.Pass, meta.Unlimited)

		require.NoError(t, err)
		require.True(t, got.Played)
		require.Contains(t, game.LegalMoves(game.Black, game.NewBoard()), got.Move,
			"Should return one of the opening moves")
		require.Equal(t, 4, p.Board().Count(game.Black), "Should apply its own move")
	})

	t.Run("applies the opponent's move first", func(t *testing.T) {
		p := NewPlayer(game.White, searcher.NewMinimax(searcher.WithDepth(1)))

		got, err := p.ComputeMove(game.Play(game.Move{X: 2, Y: 3}), meta.Unlimited)

		require.NoError(t, err)
		require.True(t, got.Played)

		want := game.NewBoard()
		want.DoMove(game.Move{X: 2, Y: 3}, game.Black)
		require.True(t, want.CheckMove(got.Move, game.White), "Reply should be legal after black's move")
		want.DoMove(got.Move, game.White)
		require.Equal(t, want, p.Board())
	})

	t.Run("rejects an illegal opponent move", func(t *testing.T) {
		p := NewPlayer(game.White, searcher.NewGreedy())
		before := p.Board()

		_, err := p.ComputeMove(game.Play(game.Move{X: 0, Y: 0}), meta.Unlimited)

		require.ErrorIs(t, err, ErrIllegalOpponentMove)
		require.Equal(t, before, p.Board(), "Board should be unchanged")
	})

	t.Run("passes without touching the board", func(t *testing.T) {
		b := game.MustParseBoard(
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBW.",
		)
		p := NewPlayer(game.White, searcher.NewWorstCase())
		p.SetBoard(b)

		got, err := p.ComputeMove(game.Pass, meta.Unlimited)

		require.NoError(t, err)
		require.Equal(t, game.Pass, got)
		require.Equal(t, b, p.Board())
	})

	t.Run("applies the opponent's move then passes", func(t *testing.T) {
		b := game.MustParseBoard(
			"BW......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"......WB",
		)
		opponentsMove := game.Move{X: 2, Y: 0}
		want := b.Clone()
		want.DoMove(opponentsMove, game.Black)
		require.False(t, want.IsDone(), "Black can still play (5,7)")

		p := NewPlayer(game.White, searcher.NewWorstCase())
		p.SetBoard(b)

		got, err := p.ComputeMove(game.Play(opponentsMove), meta.Unlimited)

		require.NoError(t, err)
		require.Equal(t, game.Pass, got)
		require.Equal(t, want, p.Board(), "Board should only hold the opponent's move")
		require.Equal(t, 4, p.Board().Count(game.Black))
	})

	t.Run("plays the last open cell", func(t *testing.T) {
		b := game.MustParseBoard(
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBW.",
		)
		p := NewPlayer(game.Black, searcher.NewMinimax(searcher.WithDepth(4)))
		p.SetBoard(b)

		got, err := p.ComputeMove(game.Pass, 10)

		require.NoError(t, err)
		require.Equal(t, game.Play(game.Move{X: 7, Y: 7}), got)
		require.True(t, p.Board().IsDone())
	})

	t.Run("the returned move is legal for every strategy over a whole game", func(t *testing.T) {
		for _, config := range []string{"greedy", "worstcase", "minimax:depth=3", "random:seed=3"} {
			s1, err := searcher.New(config)
			require.NoError(t, err)
			s2, err := searcher.New(config)
			require.NoError(t, err)

			black := NewPlayer(game.Black, s1)
			white := NewPlayer(game.White, s2)
			referee := game.NewBoard()

			last := game.Pass
			current, side := black, game.Black
			for !referee.IsDone() {
				turn, err := current.ComputeMove(last, meta.Unlimited)
				require.NoError(t, err)
				if turn.Played {
					require.True(t, referee.CheckMove(turn.Move, side), "%s played illegal %s", config, turn)
					referee.DoMove(turn.Move, side)
				} else {
					require.False(t, referee.HasMoves(side), "%s passed with moves available", config)
				}
				require.Equal(t, referee, current.Board(), "Player view should track the referee")

				last = turn
				if current == black {
					current, side = white, game.White
				} else {
					current, side = black, game.Black
				}
			}
		}
	})
}

func TestNewPlayer(t *testing.T) {
	require.Panics(t, func() {
		NewPlayer(game.Empty, searcher.NewGreedy())
	})
}
