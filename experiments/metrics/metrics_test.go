package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts since the last start", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 3)
		c.AddCandidates(4)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()

		got := c.Complete()

		require.Equal(t, "minimax", got.Strategy)
		require.Equal(t, 3, got.Depth)
		require.Equal(t, 4, got.Candidates)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Leaves)

		c.Start("minimax", 3)
		require.Equal(t, 0, c.Complete().Nodes, "Start should reset counters")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", 3)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	require.NoError(t, err)

	err = w.WriteAgentConfigs([]AgentConfig{{ID: 1, Config: "greedy"}})
	require.NoError(t, err)

	now := time.Now()
	err = w.WriteGameRecords([]GameRecord{{
		ID:    "g1",
		Black: 1,
		White: 2,
		GameMetric: GameMetric{
			Winner: game.Black, BlackDiscs: 40, WhiteDiscs: 24,
			StartTime: now, EndTime: now, TotalMoves: 60,
		},
	}})
	require.NoError(t, err)

	err = w.WriteMoveRecords([]MoveRecord{{
		Game: "g1",
		MoveMetric: MoveMetric{
			Step: 1, Side: game.Black, Turn: game.Play(game.Move{X: 2, Y: 3}),
			SearchMetric: SearchMetric{Strategy: "greedy", Depth: 1, Nodes: 5, Leaves: 4},
		},
	}})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2, "Should write a header and one record")
	require.Equal(t, "black", rows[1][3])
	require.Equal(t, "40", rows[1][4])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, "(2,3)", rows[1][3])

	rows = readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, []string{"1", "greedy"}, rows[1])
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
