package game

import (
	"github.com/lox/holdemtable/internal/evaluator"
	"github.com/lox/holdemtable/poker"
)

// SimulateOdds estimates each seat's chance of winning the current round by
// completing the board trials times from the cards left in the deck. Folded
// and sitting-out seats get 0. The table is not modified.
func (t *Table) SimulateOdds(trials int) []float64 {
	if t.deck == nil {
		return make([]float64, len(t.players))
	}

	req := evaluator.OddsRequest{
		Hands:   make([][]poker.Card, len(t.players)),
		Board:   t.board,
		Undealt: t.deck.Remaining(),
		Out:     make([]bool, len(t.players)),
		Trials:  trials,
	}
	for i, p := range t.players {
		req.Hands[i] = p.HoleCards
		req.Out[i] = p.Folded || p.SittingOut
	}
	return evaluator.SimulateOdds(req, t.oddsRng)
}
