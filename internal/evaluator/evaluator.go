package evaluator

import (
	"github.com/lox/holdemtable/poker"
)

// maxTableSize is the largest input size with a precomputed subset table.
const maxTableSize = 7

// subsetTables[n] lists every 5-element index subset of n cards in
// lexicographic order.
var subsetTables [maxTableSize + 1][][5]uint8

func init() {
	for n := 5; n <= maxTableSize; n++ {
		subsetTables[n] = fiveSubsets(n)
	}
}

// fiveSubsets enumerates the 5-element index subsets of n items iteratively.
func fiveSubsets(n int) [][5]uint8 {
	var out [][5]uint8
	idx := [5]uint8{0, 1, 2, 3, 4}
	for {
		out = append(out, idx)

		// Find the rightmost index that can still be advanced.
		i := 4
		for i >= 0 && int(idx[i]) == n-5+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < 5; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func subsetsOf(n int) [][5]uint8 {
	if n <= maxTableSize {
		return subsetTables[n]
	}
	return fiveSubsets(n)
}

// Evaluate returns the best five-card hand among cards.
//
// Every five-card subset is scored twice: once as dealt, where the Ace is
// rank 0 and completes the A-2-3-4-5 wheel, and once with each Ace counted as
// AceHigh. The highest score wins; among equal scores the first subset in
// enumeration order is reported. Fewer than five cards yields a zero Result.
// Inputs must not contain duplicate cards.
func Evaluate(cards []poker.Card) Result {
	var best Result
	if len(cards) < 5 {
		return best
	}

	var hand [5]poker.Card
	for _, subset := range subsetsOf(len(cards)) {
		for i, ci := range subset {
			hand[i] = cards[ci]
		}
		for _, aceHigh := range [2]bool{false, true} {
			score, ordered := scoreFive(hand, aceHigh)
			if score > best.Score {
				best = Result{Score: score, Cards: ordered}
			}
		}
	}
	return best
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 on a tie.
func Compare(a, b []poker.Card) int {
	sa, sb := Evaluate(a).Score, Evaluate(b).Score
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return -1
	default:
		return 0
	}
}

// scoreFive scores exactly five cards and returns them ordered by the rank
// they were scored with, highest first.
func scoreFive(hand [5]poker.Card, aceHigh bool) (Score, [5]poker.Card) {
	var ranks [5]int
	for i, c := range hand {
		r := int(c.Rank)
		if aceHigh && c.Rank == poker.Ace {
			r = int(poker.AceHigh)
		}
		ranks[i] = r
	}

	// Insertion sort descending, carrying the cards along.
	for i := 1; i < 5; i++ {
		for j := i; j > 0 && ranks[j] > ranks[j-1]; j-- {
			ranks[j], ranks[j-1] = ranks[j-1], ranks[j]
			hand[j], hand[j-1] = hand[j-1], hand[j]
		}
	}

	flush := true
	for _, c := range hand[1:] {
		if c.Suit != hand[0].Suit {
			flush = false
			break
		}
	}

	var counts [poker.AceHigh + 1]int
	for _, r := range ranks {
		counts[r]++
	}

	// Group ranks by multiplicity; ranks are visited high to low so each
	// group is already in descending order.
	var quads, trips, pairs, singles []int
	for i, r := range ranks {
		if i > 0 && r == ranks[i-1] {
			continue
		}
		switch counts[r] {
		case 4:
			quads = append(quads, r)
		case 3:
			trips = append(trips, r)
		case 2:
			pairs = append(pairs, r)
		default:
			singles = append(singles, r)
		}
	}

	straight := len(singles) == 5 && ranks[0]-ranks[4] == 4

	var score Score
	switch {
	case straight && flush:
		score = encode(StraightFlush, ranks[0])
	case len(quads) == 1:
		score = encode(FourOfAKind, quads[0], singles[0])
	case len(trips) == 1 && len(pairs) == 1:
		score = encode(FullHouse, trips[0], pairs[0])
	case flush:
		score = Score(Flush)<<categoryShift | flushWeight(ranks)
	case straight:
		score = encode(Straight, ranks[0])
	case len(trips) == 1:
		score = encode(ThreeOfAKind, trips[0], singles[0], singles[1])
	case len(pairs) == 2:
		score = encode(TwoPair, pairs[0], pairs[1], singles[0])
	case len(pairs) == 1:
		score = encode(OnePair, pairs[0], singles[0], singles[1], singles[2])
	default:
		score = encode(HighCard, ranks[0], ranks[1], ranks[2], ranks[3])
	}
	return score, hand
}

// encode packs the category and up to four tie-break ranks, one hex digit
// each, starting at the 0x1000 digit.
func encode(c Category, ranks ...int) Score {
	s := Score(c) << categoryShift
	shift := 12
	for _, r := range ranks {
		s |= Score(r) << shift
		shift -= 4
	}
	return s
}

// flushWeight maps five distinct descending ranks to their index in the
// combinatorial number system, sum(C(rank_i, 5-i)). The index preserves the
// lexicographic order of the ranks and stays below 0x10000, so every rank
// counts without spilling into the category digit.
func flushWeight(ranks [5]int) Score {
	var w Score
	for i, r := range ranks {
		w += Score(binomial(r, 5-i))
	}
	return w
}

func binomial(n, k int) int {
	if k < 0 || n < k {
		return 0
	}
	res := 1
	for i := 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}
	return res
}
