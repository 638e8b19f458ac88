package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemtable/poker"
)

func score(t *testing.T, cards string) Score {
	t.Helper()
	return Evaluate(poker.MustParseCards(cards)).Score
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    string
		expected Category
	}{
		{"royal flush", "AsKsQsJsTs9h8h", StraightFlush},
		{"straight flush", "9s8s7s6s5s4h3h", StraightFlush},
		{"steel wheel", "Ah2h3h4h5hKcQd", StraightFlush},
		{"four of a kind", "AsAhAdAcKs2h3h", FourOfAKind},
		{"full house", "AsAhAdKsKh2h3h", FullHouse},
		{"flush", "AsKsQs8s6s4h3h", Flush},
		{"broadway straight", "AsKhQdJcTs9h8h", Straight},
		{"wheel", "Ah2c3d4s5h9cJd", Straight},
		{"three of a kind", "AsAhAdKs9c7h5h", ThreeOfAKind},
		{"two pair", "AsAhKdKs9c7h5h", TwoPair},
		{"one pair", "AsAhKdQs9c7h5h", OnePair},
		{"high card", "AsJhKdQs9c7h5h", HighCard},
		{"five cards", "2c3c4c5c7d", HighCard},
		{"six cards", "2c3c4c5c7dAh", Straight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, score(t, tc.cards).Category())
		})
	}
}

func TestEvaluateLiteralScores(t *testing.T) {
	t.Parallel()

	t.Run("royal flush is the highest score", func(t *testing.T) {
		royal := score(t, "AsKsQsJsTs")
		assert.Equal(t, Score(0x9d000), royal)
		assert.Greater(t, royal, score(t, "KsQsJsTs9s"))
		assert.Greater(t, royal, score(t, "AhAdAcAsKs"))
	})

	t.Run("wheel is a straight below six-to-ten", func(t *testing.T) {
		wheel := score(t, "Ah2c3d4s5h")
		assert.Equal(t, Straight, wheel.Category())
		assert.Equal(t, Score(0x54000), wheel)
		assert.Less(t, wheel, score(t, "6c7d8h9sTc"))
		assert.Greater(t, wheel, score(t, "AhAcAd9s2c"))
	})

	t.Run("four of a kind beats aces full", func(t *testing.T) {
		quads := score(t, "KsKhKdKc2s")
		boat := score(t, "AsAhAdKsKh")
		assert.Equal(t, Score(0x8c100), quads)
		assert.Equal(t, Score(0x7dc00), boat)
		assert.Greater(t, quads, boat)
	})

	t.Run("identical full houses from different suits tie", func(t *testing.T) {
		assert.Equal(t, score(t, "QsQhQd7s7h"), score(t, "QcQsQh7c7d"))
		assert.Equal(t, 0, Compare(poker.MustParseCards("QsQhQd7s7h"), poker.MustParseCards("QcQsQh7c7d")))
	})
}

func TestEvaluateTieBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		better string
		worse  string
	}{
		{"ace-high flush over king-high flush", "AhKh9h7h2h", "KdQdJd9d7d"},
		{"second flush card decides", "AhKh9h7h2h", "AhQhJhTh8h"},
		{"last flush card decides", "Kh9h7h5h3h", "Kd9d7d5d2d"},
		{"pair of aces over pair of kings", "AsAh9d7c3s", "KsKh9d7c3s"},
		{"pair kicker", "9s9hAd7c3s", "9d9cKd7c3s"},
		{"two pair high pair", "AsAh2d2c3s", "KsKhQdQc3s"},
		{"two pair kicker", "KsKh5d5c9s", "KdKc5h5s8s"},
		{"trips kickers", "7s7h7dAcKs", "7c7h7sAd2s"},
		{"full house by trips", "3s3h3d2c2s", "2d2h2s3c3h"},
		{"quads kicker", "9s9h9d9cAs", "9s9h9d9cKs"},
		{"high card fourth kicker", "AsKh9d7c3s", "AdKc9h6s5s"},
		{"broadway over king-high straight", "AsKhQdJcTs", "KsQhJdTc9s"},
		{"ace-high flush over every straight", "Ah9h7h5h2h", "AsKhQdJcTs"},
		{"worst full house over best flush", "2s2h2d3c3s", "AhKhQhJh9h"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Greater(t, score(t, tc.better), score(t, tc.worse))
		})
	}
}

func TestEvaluateBestCards(t *testing.T) {
	t.Parallel()

	res := Evaluate(poker.MustParseCards("8h9hAsKsQsJsTs"))
	assert.Equal(t, poker.MustParseCards("AsKsQsJsTs"), res.Cards[:])
	assert.Equal(t, "Straight Flush [As Ks Qs Js Ts]", res.String())

	wheel := Evaluate(poker.MustParseCards("Ah2c3d4s5hKdQc"))
	assert.Equal(t, poker.MustParseCards("5h4s3d2cAh"), wheel.Cards[:])
}

func TestEvaluateInvalid(t *testing.T) {
	t.Parallel()

	res := Evaluate(poker.MustParseCards("AsKsQs"))
	assert.Equal(t, Score(0), res.Score)
	assert.Equal(t, Invalid, res.Category())
	assert.Equal(t, "Invalid", res.String())
}

// Every Ace in a subset is re-read as high together, so a pair of Aces always
// scores as the top pair and never as a mix of low and high Aces.
func TestEvaluateMultipleAcesRemapTogether(t *testing.T) {
	t.Parallel()

	aces := score(t, "AsAh2c3d4s5h9c")
	assert.Equal(t, Straight, aces.Category(), "wheel uses one low Ace")

	pair := Evaluate(poker.MustParseCards("AsAhKd9c7h"))
	assert.Equal(t, encode(OnePair, int(poker.AceHigh), int(poker.King), int(poker.Nine), int(poker.Seven)), pair.Score)

	trips := score(t, "AsAhAdKc2h")
	assert.Equal(t, encode(ThreeOfAKind, int(poker.AceHigh), int(poker.King), int(poker.Two)), trips)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()

	cards := poker.MustParseCards("Tc9d8h7s6c5d4h")
	first := Evaluate(cards)
	for range 5 {
		assert.Equal(t, first, Evaluate(cards))
	}
	assert.Equal(t, encode(Straight, int(poker.Ten)), first.Score)
}

func TestSubsetTables(t *testing.T) {
	t.Parallel()

	require.Len(t, subsetsOf(5), 1)
	require.Len(t, subsetsOf(6), 6)
	require.Len(t, subsetsOf(7), 21)
	require.Len(t, subsetsOf(8), 56)

	seen := make(map[[5]uint8]bool)
	for _, s := range subsetsOf(7) {
		assert.False(t, seen[s])
		seen[s] = true
		for i := 1; i < 5; i++ {
			assert.Less(t, s[i-1], s[i])
		}
		assert.Less(t, s[4], uint8(7))
	}
}

func TestScoreString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Full House (0x7dc00)", score(t, "AsAhAdKsKh").String())
	assert.Equal(t, "Straight Flush", StraightFlush.String())
	assert.Equal(t, "Invalid", Category(42).String())
}

func BenchmarkEvaluate7(b *testing.B) {
	cards := poker.MustParseCards("AsKhQd9c7h5s2d")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(cards)
	}
}
