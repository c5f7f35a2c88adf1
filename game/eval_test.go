package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateParityCorners(t *testing.T) {
	t.Run("opening position is even", func(t *testing.T) {
		require.Equal(t, 0, EvaluateParityCorners(NewBoard(), Black, White))
	})

	t.Run("material only without corners", func(t *testing.T) {
		b := NewBoard()
		b.DoMove(Move{2, 3}, Black)

		require.Equal(t, 3, EvaluateParityCorners(b, Black, White))
		require.Equal(t, -3, EvaluateParityCorners(b, White, Black))
		require.Equal(t, EvaluateParity(b, Black, White), EvaluateParityCorners(b, Black, White),
			"Corner term should be zero while no corner is held")
	})

	t.Run("corners weigh five each", func(t *testing.T) {
		b := MustParseBoard(
			"B......W",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"B.......",
		)

		// parity 2-1, corners 2-1
		require.Equal(t, 1+CornerWeight, EvaluateParityCorners(b, Black, White))
	})

	t.Run("balanced corners contribute nothing", func(t *testing.T) {
		b := MustParseBoard(
			"B......W",
			"........",
			"........",
			"...BB...",
			"........",
			"........",
			"........",
			"........",
		)

		require.Equal(t, 2, EvaluateParityCorners(b, Black, White))
	})

	t.Run("antisymmetric over played positions", func(t *testing.T) {
		for _, b := range playedPositions(60) {
			require.Equal(t,
				-EvaluateParityCorners(b, White, Black),
				EvaluateParityCorners(b, Black, White))
			require.Equal(t,
				-EvaluateParity(b, White, Black),
				EvaluateParity(b, Black, White))
		}
	})
}
