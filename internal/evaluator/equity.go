package evaluator

import (
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemtable/internal/randutil"
	"github.com/lox/holdemtable/poker"
)

// shardSize is the number of trials per worker shard. Sharding by a fixed
// size rather than by CPU count keeps results for a given seed identical on
// every machine.
const shardSize = 1024

// OddsRequest describes the known cards of a hand in progress.
type OddsRequest struct {
	Hands   [][]poker.Card // Hole cards per seat; seats without two cards never win
	Board   []poker.Card   // Community cards already dealt (0-5)
	Undealt []poker.Card   // Cards that may still come; derived from Hands and Board when nil
	Out     []bool         // Seats that no longer contend (folded); their cards stay out of the deck
	Trials  int
}

// SimulateOdds estimates each seat's probability of finishing with the best
// hand by completing the board Trials times from the undealt cards. Every seat
// tied for the best hand in a trial is credited with a win, so estimates can
// sum to more than one. The request is not modified.
func SimulateOdds(req OddsRequest, rng *rand.Rand) []float64 {
	odds := make([]float64, len(req.Hands))
	if req.Trials <= 0 || len(req.Board) > 5 {
		return odds
	}

	contending := make([]int, 0, len(req.Hands))
	for seat, hole := range req.Hands {
		if len(hole) != 2 || (seat < len(req.Out) && req.Out[seat]) {
			continue
		}
		contending = append(contending, seat)
	}
	if len(contending) == 0 {
		return odds
	}

	undealt := req.Undealt
	if undealt == nil {
		undealt = undealtCards(req.Hands, req.Board)
	}
	if len(undealt) < 5-len(req.Board) {
		return odds
	}

	wins := make([]int, len(req.Hands))
	shards := (req.Trials + shardSize - 1) / shardSize
	if shards == 1 {
		runTrials(req, contending, undealt, req.Trials, rng, wins)
	} else {
		results := make([][]int, shards)
		rngs := make([]*rand.Rand, shards)
		for i := range rngs {
			rngs[i] = randutil.Child(rng)
		}

		var g errgroup.Group
		g.SetLimit(runtime.NumCPU())
		for i := range shards {
			trials := shardSize
			if i == shards-1 {
				trials = req.Trials - shardSize*(shards-1)
			}
			g.Go(func() error {
				results[i] = make([]int, len(req.Hands))
				runTrials(req, contending, undealt, trials, rngs[i], results[i])
				return nil
			})
		}
		_ = g.Wait()

		for _, shard := range results {
			for seat, n := range shard {
				wins[seat] += n
			}
		}
	}

	for seat, n := range wins {
		odds[seat] = float64(n) / float64(req.Trials)
	}
	return odds
}

// runTrials plays out trials boards and adds each seat's wins to tally.
func runTrials(req OddsRequest, contending []int, undealt []poker.Card, trials int, rng *rand.Rand, tally []int) {
	deck := make([]poker.Card, len(undealt))
	copy(deck, undealt)

	need := 5 - len(req.Board)
	board := make([]poker.Card, 5)
	copy(board, req.Board)

	hand := make([]poker.Card, 7)
	scores := make([]Score, len(contending))

	for range trials {
		// Partial Fisher-Yates: draw the missing board cards from the back.
		for k := range need {
			last := len(deck) - 1 - k
			j := rng.IntN(last + 1)
			deck[j], deck[last] = deck[last], deck[j]
			board[len(req.Board)+k] = deck[last]
		}

		var best Score
		for i, seat := range contending {
			copy(hand[:2], req.Hands[seat])
			copy(hand[2:], board)
			scores[i] = Evaluate(hand).Score
			if scores[i] > best {
				best = scores[i]
			}
		}
		for i, seat := range contending {
			if scores[i] == best {
				tally[seat]++
			}
		}
	}
}

// undealtCards returns the standard deck minus every known card.
func undealtCards(hands [][]poker.Card, board []poker.Card) []poker.Card {
	var used [poker.DeckSize]bool
	for _, hole := range hands {
		for _, c := range hole {
			used[c.Index()] = true
		}
	}
	for _, c := range board {
		used[c.Index()] = true
	}

	out := make([]poker.Card, 0, poker.DeckSize)
	for _, c := range poker.AllCards() {
		if !used[c.Index()] {
			out = append(out, c)
		}
	}
	return out
}
