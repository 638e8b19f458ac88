package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemtable/internal/randutil"
	"github.com/lox/holdemtable/poker"
)

func hands(cards ...string) [][]poker.Card {
	out := make([][]poker.Card, len(cards))
	for i, s := range cards {
		out[i] = poker.MustParseCards(s)
	}
	return out
}

func TestSimulateOddsKnownBoard(t *testing.T) {
	t.Parallel()

	// With the whole board out there is nothing left to sample, so every
	// trial count gives the same exact answer.
	for _, trials := range []int{1, 10, 999, 5000} {
		odds := SimulateOdds(OddsRequest{
			Hands:  hands("AhAd", "KhKd"),
			Board:  poker.MustParseCards("2c7d9sJhQc"),
			Trials: trials,
		}, randutil.New(int64(trials)))
		assert.Equal(t, []float64{1, 0}, odds, "trials=%d", trials)
	}
}

func TestSimulateOddsSplitBoard(t *testing.T) {
	t.Parallel()

	odds := SimulateOdds(OddsRequest{
		Hands:  hands("2h3d", "4c5c", "7h8h"),
		Board:  poker.MustParseCards("AsKsQsJsTs"),
		Trials: 100,
	}, randutil.New(1))
	assert.Equal(t, []float64{1, 1, 1}, odds)
}

func TestSimulateOddsOutSeats(t *testing.T) {
	t.Parallel()

	odds := SimulateOdds(OddsRequest{
		Hands:  hands("AhAd", "KhKd", "2c7s"),
		Board:  poker.MustParseCards("Kc7d9sJhQc"),
		Out:    []bool{false, true, false},
		Trials: 10,
	}, randutil.New(3))
	assert.Equal(t, []float64{1, 0, 0}, odds)
}

func TestSimulateOddsEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("no trials", func(t *testing.T) {
		odds := SimulateOdds(OddsRequest{Hands: hands("AhAd", "KhKd")}, randutil.New(1))
		assert.Equal(t, []float64{0, 0}, odds)
	})

	t.Run("undealt seat never wins", func(t *testing.T) {
		odds := SimulateOdds(OddsRequest{
			Hands:  [][]poker.Card{poker.MustParseCards("AhAd"), nil},
			Board:  poker.MustParseCards("2c7d9sJhQc"),
			Trials: 3,
		}, randutil.New(1))
		assert.Equal(t, []float64{1, 0}, odds)
	})

	t.Run("request is not modified", func(t *testing.T) {
		undealt := undealtCards(hands("AhAd", "KhKd"), nil)
		before := append([]poker.Card(nil), undealt...)
		SimulateOdds(OddsRequest{Hands: hands("AhAd", "KhKd"), Undealt: undealt, Trials: 50}, randutil.New(1))
		assert.Equal(t, before, undealt)
	})
}

func TestSimulateOddsPreflopConverges(t *testing.T) {
	t.Parallel()

	odds := SimulateOdds(OddsRequest{
		Hands:  hands("AsAh", "KdKc"),
		Trials: 20000,
	}, randutil.New(42))
	require.Len(t, odds, 2)

	// Aces are roughly an 82% favourite over kings.
	assert.InDelta(t, 0.82, odds[0], 0.03)
	assert.InDelta(t, 0.18, odds[1], 0.03)
}

func TestSimulateOddsSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	req := OddsRequest{
		Hands:  hands("AsKs", "QhQd", "7c8c"),
		Trials: 4500,
	}
	a := SimulateOdds(req, randutil.New(11))
	b := SimulateOdds(req, randutil.New(11))
	assert.Equal(t, a, b)
}

func TestUndealtCards(t *testing.T) {
	t.Parallel()

	undealt := undealtCards(hands("AhAd", "KhKd"), poker.MustParseCards("2c7d9s"))
	assert.Len(t, undealt, poker.DeckSize-7)
	assert.NotContains(t, undealt, poker.NewCard(poker.Ace, poker.Hearts))
	assert.NotContains(t, undealt, poker.NewCard(poker.Nine, poker.Spades))
}

func BenchmarkSimulateOdds(b *testing.B) {
	req := OddsRequest{Hands: hands("AsAh", "KdKc", "7c8c"), Trials: 1000}
	rng := randutil.New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SimulateOdds(req, rng)
	}
}
