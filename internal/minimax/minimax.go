// Package minimax implements exhaustive adversarial search with
// alpha-beta pruning over any two-player, zero-sum, perfect-information
// game that satisfies the State contract.
package minimax

import "log/slog"

// Score is the terminal value of a position: +1 when the maximizing
// player has won, -1 when the minimizing player has won, 0 for a draw.
type Score int8

const (
	ScoreLoss Score = -1
	ScoreDraw Score = 0
	ScoreWin  Score = 1
)

// State is the capability a game position must provide to be searchable.
// The engine never learns which concrete game it is searching.
type State[S any] interface {
	// Finished reports the terminal score of the position. ok is false
	// while the game is still in progress.
	Finished() (score Score, ok bool)

	// Moves returns every position reachable by one legal move of the
	// given player, in a fixed deterministic order. The order matters:
	// it drives both tie-breaking and pruning efficiency. Moves must not
	// be called on a finished position.
	Moves(maximizing bool) []S
}

// Outcome is the result of a search: the game-theoretic score of the
// position and, unless the position was already terminal, one optimal
// successor.
type Outcome[S State[S]] struct {
	Score   Score
	Next    S
	HasNext bool
}

// BestMove returns an optimal successor for the player to move.
// ok is false when the game is already over.
func BestMove[S State[S]](state S, maximizing bool) (next S, ok bool) {
	outcome := Search(state, maximizing)
	return outcome.Next, outcome.HasNext
}

// Search computes the exact game-theoretic value of the position and an
// optimal successor. Pruning never changes the reported score relative
// to an unpruned minimax; among equal-valued successors the first one in
// Moves order wins.
func Search[S State[S]](state S, maximizing bool) Outcome[S] {
	return search(state, bound{}, bound{}, maximizing)
}

// bound is a score that starts out unset. Alpha and beta begin unset so
// the first candidate at every node is adopted outright.
type bound struct {
	value Score
	set   bool
}

// tighten folds a candidate score into the bound, keeping the maximum
// when maximizing and the minimum otherwise. It reports whether the
// bound actually changed.
func (b *bound) tighten(maximizing bool, candidate Score) bool {
	if !b.set {
		b.value = candidate
		b.set = true
		return true
	}

	if maximizing && candidate > b.value || !maximizing && candidate < b.value {
		b.value = candidate
		return true
	}

	return false
}

func search[S State[S]](state S, alpha, beta bound, maximizing bool) Outcome[S] {
	if score, over := state.Finished(); over {
		return Outcome[S]{Score: score}
	}

	var best bound
	var next S
	var hasNext bool

	for _, move := range state.Moves(maximizing) {
		child := search(move, alpha, beta, !maximizing)

		if best.tighten(maximizing, child.Score) {
			next = move
			hasNext = true
		}

		if maximizing {
			alpha.tighten(true, best.value)
		} else {
			beta.tighten(false, best.value)
		}

		if alpha.set && beta.set && alpha.value >= beta.value {
			break
		}
	}

	if !best.set {
		// A non-terminal position with no successors violates the State
		// contract; score it as a draw instead of failing.
		slog.Warn("non-terminal position produced no moves, scoring as draw")
		return Outcome[S]{Score: ScoreDraw}
	}

	return Outcome[S]{Score: best.value, Next: next, HasNext: hasNext}
}
