package minimax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// node is a hand-built game tree. Leaves carry their terminal score;
// inner nodes offer their children as moves regardless of who is to
// play.
type node struct {
	name     string
	score    Score
	terminal bool
	children []*node
}

func leaf(name string, score Score) *node {
	return &node{name: name, score: score, terminal: true}
}

func inner(name string, children ...*node) *node {
	return &node{name: name, children: children}
}

func (that *node) Finished() (Score, bool) {
	if that.terminal {
		return that.score, true
	}
	return 0, false
}

func (that *node) Moves(_ bool) []*node {
	return that.children
}

// reference is plain minimax without pruning, used as an oracle.
func reference(state *node, maximizing bool) Score {
	if score, over := state.Finished(); over {
		return score
	}

	var best Score
	for i, move := range state.Moves(maximizing) {
		value := reference(move, !maximizing)
		if i == 0 || maximizing && value > best || !maximizing && value < best {
			best = value
		}
	}

	return best
}

func TestSearch_TerminalPosition(t *testing.T) {
	// Given: a position that is already decided
	root := leaf("root", ScoreWin)

	// When: searching it for either player
	outcome := Search(root, true)

	// Then: the score is reported with no successor
	require.Equal(t, ScoreWin, outcome.Score)
	assert.False(t, outcome.HasNext)
}

func TestSearch_PicksWinningMove(t *testing.T) {
	// Given: a maximizing root with a losing and a winning child
	losing := leaf("losing", ScoreLoss)
	winning := leaf("winning", ScoreWin)
	root := inner("root", losing, winning)

	// When: the maximizing player searches
	outcome := Search(root, true)

	// Then: the winning child is chosen
	require.True(t, outcome.HasNext)
	require.Equal(t, ScoreWin, outcome.Score)
	assert.Equal(t, "winning", outcome.Next.name)
}

func TestSearch_MinimizingPicksLowestScore(t *testing.T) {
	// Given: a minimizing root with draw and loss available
	draw := leaf("draw", ScoreDraw)
	loss := leaf("loss", ScoreLoss)
	root := inner("root", draw, loss)

	// When: the minimizing player searches
	outcome := Search(root, false)

	// Then: the loss (best for the minimizer) is chosen
	require.True(t, outcome.HasNext)
	require.Equal(t, ScoreLoss, outcome.Score)
	assert.Equal(t, "loss", outcome.Next.name)
}

func TestSearch_FirstOptimalSuccessorWins(t *testing.T) {
	// Given: two equally winning children
	first := leaf("first", ScoreWin)
	second := leaf("second", ScoreWin)
	root := inner("root", first, second)

	// When: the maximizing player searches
	outcome := Search(root, true)

	// Then: the earlier child in move order is reported
	require.True(t, outcome.HasNext)
	assert.Equal(t, "first", outcome.Next.name)
}

func TestSearch_MovelessPositionScoresAsDraw(t *testing.T) {
	// Given: a position that is neither finished nor has any moves
	root := inner("root")

	// When: searching it
	outcome := Search(root, true)

	// Then: it is scored as a draw with no successor
	require.Equal(t, ScoreDraw, outcome.Score)
	assert.False(t, outcome.HasNext)
}

func TestSearch_DeepTreeAlternatesPlayers(t *testing.T) {
	// Given: a two-ply tree where the maximizer must account for the
	// minimizer's reply
	trap := inner("trap", leaf("trap-win", ScoreWin), leaf("trap-loss", ScoreLoss))
	safe := inner("safe", leaf("safe-draw", ScoreDraw), leaf("safe-draw-2", ScoreDraw))
	root := inner("root", trap, safe)

	// When: the maximizing player searches
	outcome := Search(root, true)

	// Then: the trap (which the minimizer refutes to a loss) is avoided
	require.True(t, outcome.HasNext)
	require.Equal(t, ScoreDraw, outcome.Score)
	assert.Equal(t, "safe", outcome.Next.name)
}

func TestSearch_PruningPreservesScore(t *testing.T) {
	// Given: a tree shaped to trigger alpha-beta cutoffs
	root := inner("root",
		inner("a",
			leaf("a1", ScoreDraw),
			leaf("a2", ScoreWin),
		),
		inner("b",
			leaf("b1", ScoreLoss), // refutes b, the rest of b is prunable
			leaf("b2", ScoreWin),
		),
		inner("c",
			leaf("c1", ScoreDraw),
			leaf("c2", ScoreLoss),
		),
	)

	for _, maximizing := range []bool{true, false} {
		// When: searching with pruning and with the unpruned oracle
		outcome := Search(root, maximizing)
		expected := reference(root, maximizing)

		// Then: both agree on the score
		assert.Equal(t, expected, outcome.Score, "maximizing=%v", maximizing)
	}
}

func TestBestMove(t *testing.T) {
	t.Run("returns a move on an open position", func(t *testing.T) {
		// Given: a root with a single winning continuation
		root := inner("root", leaf("only", ScoreWin))

		// When: asking for the best move
		next, ok := BestMove(root, true)

		// Then: the continuation is returned
		require.True(t, ok)
		assert.Equal(t, "only", next.name)
	})

	t.Run("reports no move on a finished position", func(t *testing.T) {
		// Given: a decided position
		root := leaf("root", ScoreDraw)

		// When: asking for the best move
		_, ok := BestMove(root, true)

		// Then: there is none
		assert.False(t, ok)
	})
}
