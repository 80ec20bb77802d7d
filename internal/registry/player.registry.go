package registry

import (
	"benchboss/internal/domain"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type PlayerRegistry interface {
	// ByName is an exact-match lookup. Absent players are an expected
	// outcome, reported through the bool rather than an error.
	ByName(name string) (*domain.Player, bool)
	// ByIndex is bounds-checked positional access in ingestion order.
	ByIndex(i int) (*domain.Player, bool)
	// ByPosition returns every player eligible for the position, in
	// ingestion order. Dual-eligible forwards appear in both of their
	// positions' pools.
	ByPosition(pos domain.Position) []*domain.Player
	// Search ranks players by fuzzy match against the query, best first.
	Search(query string) []*domain.Player
	Players() []*domain.Player
	Len() int
}

type playerRegistryHandler struct {
	players []*domain.Player
	byName  map[string]*domain.Player
}

func NewPlayerRegistry(players []*domain.Player) (PlayerRegistry, error) {
	byName := map[string]*domain.Player{}
	for _, p := range players {
		if _, ok := byName[p.Name]; ok {
			return nil, fmt.Errorf("duplicate player name '%s'", p.Name)
		}
		byName[p.Name] = p
	}

	return playerRegistryHandler{
		players: players,
		byName:  byName,
	}, nil
}

func (h playerRegistryHandler) ByName(name string) (*domain.Player, bool) {
	p, ok := h.byName[name]
	return p, ok
}

func (h playerRegistryHandler) ByIndex(i int) (*domain.Player, bool) {
	if i < 0 || i >= len(h.players) {
		return nil, false
	}
	return h.players[i], true
}

func (h playerRegistryHandler) ByPosition(pos domain.Position) []*domain.Player {
	out := []*domain.Player{}
	for _, p := range h.players {
		if p.Eligible(pos) {
			out = append(out, p)
		}
	}
	return out
}

func (h playerRegistryHandler) Search(query string) []*domain.Player {
	names := make([]string, 0, len(h.players))
	for _, p := range h.players {
		names = append(names, p.Name)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	out := make([]*domain.Player, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, h.players[rank.OriginalIndex])
	}
	return out
}

func (h playerRegistryHandler) Players() []*domain.Player {
	out := make([]*domain.Player, len(h.players))
	copy(out, h.players)
	return out
}

func (h playerRegistryHandler) Len() int {
	return len(h.players)
}
