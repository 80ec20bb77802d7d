package domain

import "github.com/google/uuid"

// Roster is a filled starting lineup. Slots may hold fewer players than the
// position requires when the candidate pool ran short; a missing slot is
// represented by an empty list, never an error.
type Roster struct {
	ID    uuid.UUID
	Slots map[Position][]*Player
}

func NewRoster() Roster {
	slots := map[Position][]*Player{}
	for _, pos := range SlotOrder {
		slots[pos] = []*Player{}
	}
	return Roster{
		ID:    uuid.New(),
		Slots: slots,
	}
}

// Players flattens the roster in slot order. Mutating the returned slice
// does not affect the roster.
func (r Roster) Players() []*Player {
	out := []*Player{}
	for _, pos := range SlotOrder {
		out = append(out, r.Slots[pos]...)
	}
	return out
}

// Contains reports whether the given player already fills any slot.
func (r Roster) Contains(p *Player) bool {
	for _, pos := range SlotOrder {
		for _, have := range r.Slots[pos] {
			if have.Is(p) {
				return true
			}
		}
	}
	return false
}

func (r Roster) DeepCopy() Roster {
	slots := map[Position][]*Player{}
	for pos, players := range r.Slots {
		copied := make([]*Player, len(players))
		copy(copied, players)
		slots[pos] = copied
	}
	return Roster{
		ID:    r.ID,
		Slots: slots,
	}
}
