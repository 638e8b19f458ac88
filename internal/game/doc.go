// Package game implements the betting rules of a Texas Hold'em cash-game
// table.
//
// The main type is Table, a turn-based state machine driven by the caller:
// StartRound posts blinds and deals, PlaceBet and Fold act for the current
// player, and the table settles streets, side pots and showdowns on its own
// before starting the next round with the dealer button moved one seat.
//
// # Basic Usage
//
//	t, err := game.NewTable([]game.PlayerConfig{
//	    {Name: "Alice", Chips: 2000},
//	    {Name: "Bob", Chips: 2000},
//	    {Name: "Charlie", Chips: 2000},
//	}, 5, 10)
//	if err != nil {
//	    return err
//	}
//	if err := t.StartRound(0); err != nil {
//	    return err
//	}
//	if err := t.PlaceBet(10); errors.Is(err, game.ErrIllegalRaise) {
//	    // explain the rule and ask again
//	}
//	state := t.State()
//
// # Deterministic Testing
//
// Randomness is injected with WithRand, and WithDeckFactory replaces the
// shuffled deck entirely:
//
//	t, _ := game.NewTable(players, 5, 10,
//	    game.WithRand(randutil.New(42)),
//	    game.WithDeckFactory(func(*rand.Rand) *poker.Deck {
//	        return poker.NewStackedDeck(cards...)
//	    }))
//
// # Architecture
//
// Table delegates to specialized components:
//   - PotManager: layers street bets into main and side pots
//   - evaluator.Evaluate: scores seven-card hands at showdown
//   - evaluator.SimulateOdds: Monte Carlo equity for SimulateOdds
//   - poker.Deck: supplies shuffled cards from the injected RNG
package game
