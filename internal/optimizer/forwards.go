package optimizer

import (
	"benchboss/internal/domain"
	"benchboss/internal/scoring"
)

// forwardCombination is one candidate assignment of the three forward
// slots. Any group may hold fewer than two players when its pool ran short.
type forwardCombination struct {
	Centers   []*domain.Player
	LeftWings []*domain.Player
	RightWing []*domain.Player
}

func (c forwardCombination) players() []*domain.Player {
	out := []*domain.Player{}
	out = append(out, c.Centers...)
	out = append(out, c.LeftWings...)
	out = append(out, c.RightWing...)
	return out
}

// distinct reports whether no player identity repeats across the chosen
// forwards. A player eligible for two forward positions cannot fill both
// slots at once.
func (c forwardCombination) distinct() bool {
	players := c.players()
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			if players[i].Is(players[j]) {
				return false
			}
		}
	}
	return true
}

// pairs lists every unordered pair from the pool, preserving ingestion
// order (i before j within a pair, pairs ordered by their first member).
func pairs(pool []*domain.Player) [][]*domain.Player {
	out := [][]*domain.Player{}
	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			out = append(out, []*domain.Player{pool[i], pool[j]})
		}
	}
	return out
}

// forwardCandidates returns the selections one forward pool can contribute
// to the search. A pool with fewer than two players degrades to its single
// player, or to the empty selection, so the other forward positions still
// get filled independently.
func forwardCandidates(pool []*domain.Player) [][]*domain.Player {
	switch {
	case len(pool) >= 2:
		return pairs(pool)
	case len(pool) == 1:
		return [][]*domain.Player{{pool[0]}}
	}
	return [][]*domain.Player{{}}
}

// enumerateForwardCombinations walks the full cross product of candidate
// groups in deterministic order: right wing pairs outermost, then left
// wing, then center. The yield callback returns false to stop early.
func enumerateForwardCombinations(
	right [][]*domain.Player,
	left [][]*domain.Player,
	center [][]*domain.Player,
	yield func(forwardCombination) bool,
) {
	for _, r := range right {
		for _, l := range left {
			for _, c := range center {
				combo := forwardCombination{
					Centers:   c,
					LeftWings: l,
					RightWing: r,
				}
				if !yield(combo) {
					return
				}
			}
		}
	}
}

// selectForwards runs the combination search over the three forward pools.
// Optimal mode scores every distinct combination and keeps the strictly
// greatest total, so the first combination seen wins ties. Fast mode stops
// at the first distinct combination. When no distinct combination exists
// the returned found flag is false and all forward slots stay empty.
func selectForwards(center, left, right []*domain.Player, mode Mode) (forwardCombination, bool, Meta) {
	meta := Meta{Mode: mode}

	var best forwardCombination
	bestTotal := 0.0
	found := false

	enumerateForwardCombinations(
		forwardCandidates(right),
		forwardCandidates(left),
		forwardCandidates(center),
		func(combo forwardCombination) bool {
			meta.EvaluatedCombinations++
			if !combo.distinct() {
				return true
			}
			meta.ValidCombinations++

			if mode == Mode_Fast {
				best = combo
				found = true
				return false
			}

			total := scoring.ProjectedTotal(combo.players())
			if !found || total > bestTotal {
				best = combo
				bestTotal = total
				found = true
			}
			return true
		},
	)

	return best, found, meta
}
