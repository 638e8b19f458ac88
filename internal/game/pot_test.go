package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bettors(bets ...int) []*Player {
	players := make([]*Player, len(bets))
	for i, bet := range bets {
		players[i] = &Player{Seat: i, Name: string(rune('A' + i)), Bet: bet}
	}
	return players
}

func TestPotManagerCollect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bets   []int
		folded []int
		want   []Pot
	}{
		{
			name: "equal bets make one pot",
			bets: []int{100, 100, 100},
			want: []Pot{{Amount: 300, Eligible: []int{0, 1, 2}}},
		},
		{
			name: "short all-in creates a side pot",
			bets: []int{50, 100, 100},
			want: []Pot{
				{Amount: 150, Eligible: []int{0, 1, 2}},
				{Amount: 100, Eligible: []int{1, 2}},
			},
		},
		{
			name:   "folded caller leaves the side pot to one player",
			bets:   []int{50, 100, 100},
			folded: []int{2},
			want: []Pot{
				{Amount: 150, Eligible: []int{0, 1}},
				{Amount: 100, Eligible: []int{1}},
			},
		},
		{
			name:   "folded short bettor merges the layers",
			bets:   []int{50, 100, 100},
			folded: []int{0},
			want:   []Pot{{Amount: 250, Eligible: []int{1, 2}}},
		},
		{
			name: "three all-in tiers",
			bets: []int{30, 60, 100, 100},
			want: []Pot{
				{Amount: 120, Eligible: []int{0, 1, 2, 3}},
				{Amount: 90, Eligible: []int{1, 2, 3}},
				{Amount: 80, Eligible: []int{2, 3}},
			},
		},
		{
			name: "players without a bet are not eligible",
			bets: []int{0, 10, 10},
			want: []Pot{{Amount: 20, Eligible: []int{1, 2}}},
		},
		{
			name:   "chips from folded players above every live bet fold down",
			bets:   []int{10, 40, 0},
			folded: []int{1},
			want:   []Pot{{Amount: 50, Eligible: []int{0}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			players := bettors(tt.bets...)
			for _, seat := range tt.folded {
				players[seat].Folded = true
			}

			pm := NewPotManager()
			pm.Collect(players)

			assert.Equal(t, tt.want, pm.Pots())
			total := 0
			for _, bet := range tt.bets {
				total += bet
			}
			assert.Equal(t, total, pm.Total())
			for _, p := range players {
				assert.Zero(t, p.Bet, "bet for seat %d should be collected", p.Seat)
			}
		})
	}
}

func TestPotManagerCarriesPotsAcrossStreets(t *testing.T) {
	t.Parallel()

	pm := NewPotManager()
	players := bettors(10, 10, 10)
	pm.Collect(players)

	players[0].Bet, players[1].Bet, players[2].Bet = 20, 20, 20
	pm.Collect(players)

	require.Len(t, pm.Pots(), 1)
	assert.Equal(t, Pot{Amount: 90, Eligible: []int{0, 1, 2}}, pm.Pots()[0])

	players[0].AllIn = true
	players[0].Bet, players[1].Bet, players[2].Bet = 5, 40, 40
	pm.Collect(players)

	assert.Equal(t, []Pot{
		{Amount: 105, Eligible: []int{0, 1, 2}},
		{Amount: 70, Eligible: []int{1, 2}},
	}, pm.Pots())
}

func TestPotManagerAllBettorsFolded(t *testing.T) {
	t.Parallel()

	players := bettors(10, 0)
	players[0].Folded = true

	pm := NewPotManager()
	pm.Collect(players)

	assert.Equal(t, []Pot{{Amount: 10, Eligible: []int{1}}}, pm.Pots())
}

func TestPotManagerRemoveEligible(t *testing.T) {
	t.Parallel()

	pm := NewPotManager()
	pm.Collect(bettors(50, 100, 100))
	require.Len(t, pm.Pots(), 2)

	pm.RemoveEligible(0)

	assert.Equal(t, []Pot{{Amount: 250, Eligible: []int{1, 2}}}, pm.Pots())
	assert.Equal(t, 250, pm.Total())

	pm.RemoveEligible(2)
	assert.Equal(t, []Pot{{Amount: 250, Eligible: []int{1}}}, pm.Pots())
}

func TestPotManagerPotsIsACopy(t *testing.T) {
	t.Parallel()

	pm := NewPotManager()
	pm.Collect(bettors(10, 10))

	pots := pm.Pots()
	pots[0].Amount = 0
	pots[0].Eligible[0] = 7

	assert.Equal(t, []Pot{{Amount: 20, Eligible: []int{0, 1}}}, pm.Pots())

	pm.Reset()
	assert.Empty(t, pm.Pots())
	assert.Zero(t, pm.Total())
}
