package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewPosition(t *testing.T) {
	t.Run("single letter symbols", func(t *testing.T) {
		for _, symbol := range []string{"C", "L", "R", "D", "G"} {
			pos, err := NewPosition(symbol)
			require.NoError(t, err)
			require.Equal(t, Position(symbol), pos)
		}
	})

	t.Run("wing aliases", func(t *testing.T) {
		pos, err := NewPosition("LW")
		require.NoError(t, err)
		require.Equal(t, PositionLeftWing, pos)

		pos, err = NewPosition("rw")
		require.NoError(t, err)
		require.Equal(t, PositionRightWing, pos)
	})

	t.Run("case and whitespace", func(t *testing.T) {
		pos, err := NewPosition(" d ")
		require.NoError(t, err)
		require.Equal(t, PositionDefense, pos)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := NewPosition("F")
		require.Error(t, err)
	})
}

func TestPlayer_Eligible(t *testing.T) {
	p := &Player{
		Name:      "Elias Pettersson",
		Positions: []Position{PositionCenter, PositionLeftWing},
	}

	require.True(t, p.Eligible(PositionCenter))
	require.True(t, p.Eligible(PositionLeftWing))
	require.False(t, p.Eligible(PositionRightWing))
	require.False(t, p.Eligible(PositionDefense))
}

func TestPlayer_Is(t *testing.T) {
	a := &Player{Name: "Cale Makar", Positions: []Position{PositionDefense}}
	b := &Player{Name: "Cale Makar", Positions: []Position{PositionDefense}}
	c := &Player{Name: "Quinn Hughes", Positions: []Position{PositionDefense}}

	require.True(t, a.Is(b))
	require.False(t, a.Is(c))
	require.False(t, a.Is(nil))
}

func TestRoster_Players(t *testing.T) {
	center := &Player{Name: "Nathan MacKinnon", Positions: []Position{PositionCenter}}
	wing := &Player{Name: "Kirill Kaprizov", Positions: []Position{PositionLeftWing}}
	goalie := &Player{Name: "Igor Shesterkin", Positions: []Position{PositionGoalie}}

	roster := NewRoster()
	roster.Slots[PositionGoalie] = []*Player{goalie}
	roster.Slots[PositionCenter] = []*Player{center}
	roster.Slots[PositionLeftWing] = []*Player{wing}

	require.Equal(
		t,
		"",
		cmp.Diff(
			[]*Player{center, wing, goalie},
			roster.Players(),
		),
	)

	require.True(t, roster.Contains(center))
	require.False(t, roster.Contains(&Player{Name: "Jack Hughes"}))
}

func TestRoster_DeepCopy(t *testing.T) {
	original := NewRoster()
	original.Slots[PositionDefense] = []*Player{
		{Name: "Adam Fox", Positions: []Position{PositionDefense}},
	}

	copied := original.DeepCopy()
	copied.Slots[PositionDefense] = append(copied.Slots[PositionDefense], &Player{Name: "Roman Josi"})

	require.Equal(t, 1, len(original.Slots[PositionDefense]))
	require.Equal(t, 2, len(copied.Slots[PositionDefense]))
}

func TestSlotRequirements(t *testing.T) {
	total := 0
	for _, pos := range SlotOrder {
		total += SlotRequirements()[pos]
	}
	require.Equal(t, 12, total)
}
