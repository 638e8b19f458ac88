package display

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemtable/internal/evaluator"
	"github.com/lox/holdemtable/internal/game"
	"github.com/lox/holdemtable/internal/statistics"
	"github.com/lox/holdemtable/poker"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestRenderCards(t *testing.T) {
	assert.Equal(t, "A♠ 10♥", RenderCards(poker.MustParseCards("As Th")))
	assert.Equal(t, "--", RenderCards(nil))
}

func TestRenderState(t *testing.T) {
	s := game.State{
		Round:      3,
		Street:     game.Flop,
		Dealer:     0,
		Current:    1,
		Board:      poker.MustParseCards("As Ks Qd"),
		CurrentBet: 20,
		MinRaise:   20,
		Pots: []game.Pot{
			{Amount: 150, Eligible: []int{0, 1, 2}},
			{Amount: 100, Eligible: []int{1, 2}},
		},
		Players: []game.PlayerState{
			{Seat: 0, Name: "Alice", Chips: 0, AllIn: true},
			{Seat: 1, Name: "Bob", Chips: 880, HoleCards: poker.MustParseCards("Jh Th")},
			{Seat: 2, Name: "Carol", Chips: 860, Bet: 20},
			{Seat: 3, Name: "Dave", Chips: 1000, Folded: true},
		},
	}

	out := RenderState(s)
	assert.Contains(t, out, "Round 3 | flop")
	assert.Contains(t, out, "Board: A♠ K♠ Q♦")
	assert.Contains(t, out, "Pot: 250 (main 150, side 1 100)")
	assert.Contains(t, out, "Bet: 20  To call: 20  Min raise to: 40")
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "J♥ 10♥")
	assert.Contains(t, out, "all-in")
	assert.Contains(t, out, "folded")
	assert.Contains(t, out, "bet 20")
	assert.Contains(t, out, "?? ??")
}

func TestRenderStateFromTable(t *testing.T) {
	table, err := game.NewTable([]game.PlayerConfig{
		{Name: "Alice", Chips: 1000},
		{Name: "Bob", Chips: 1000},
	}, 5, 10, game.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, table.StartRound(0))

	out := RenderState(table.State())
	assert.Contains(t, out, "Round 1 | preflop")
	assert.Contains(t, out, "Pot: 0")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
}

func TestRenderOdds(t *testing.T) {
	s := game.State{
		Players: []game.PlayerState{
			{Seat: 0, Name: "Alice"},
			{Seat: 1, Name: "Bob", Folded: true},
			{Seat: 2, Name: "Carol", SittingOut: true, Folded: true},
		},
	}

	out := RenderOdds(s, []float64{0.8123, 0, 0})
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "81.2%")
	assert.Contains(t, out, "Bob        folded")
	assert.Contains(t, out, "Carol      sitting out")
}

func TestRenderResult(t *testing.T) {
	assert.Empty(t, RenderResult(nil))

	best := poker.MustParseCards("As Ks Qs Js Ts")
	r := &game.RoundResult{
		Round:   2,
		Players: []string{"Alice", "Bob", "Carol"},
		Board:   best,
		Hands: []game.ShownHand{{
			Seat:      0,
			Name:      "Alice",
			HoleCards: poker.MustParseCards("2c 3d"),
			Best:      [5]poker.Card(best),
			Score:     evaluator.Evaluate(best).Score,
			Category:  "Straight Flush",
		}},
		Pots: []game.PotAward{
			{Amount: 25, Eligible: []int{0, 2}, Winners: []int{2, 0}, Shares: []int{13, 12}},
			{Amount: 40, Eligible: []int{2}, Winners: []int{2}, Shares: []int{40}},
		},
	}

	out := RenderResult(r)
	assert.Contains(t, out, "Round 2 result")
	assert.Contains(t, out, "Straight Flush")
	assert.Contains(t, out, "Main pot of 25 won by Carol 13, Alice 12")
	assert.Contains(t, out, "Side pot 1 of 40 won by Carol 40")

	r.Uncontested = true
	assert.Contains(t, RenderResult(r), "uncontested")
}

func TestRenderStats(t *testing.T) {
	stats := &statistics.Statistics{}
	stats.Add(&game.RoundResult{
		Players:     []string{"Alice", "Bob"},
		Committed:   []int{10, 5},
		Uncontested: true,
		Pots:        []game.PotAward{{Amount: 15, Winners: []int{0}, Shares: []int{15}}},
	})

	out := RenderStats(stats)
	assert.Contains(t, out, "1 rounds, 0 showdowns, biggest pot 15")
	assert.Contains(t, out, "net     +5")
	assert.Contains(t, out, "net     -5")
}
