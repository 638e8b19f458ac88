package game

import (
	"slices"

	"github.com/lox/holdemtable/internal/evaluator"
	"github.com/lox/holdemtable/poker"
)

// PlayerState is a player as seen by the table's driver
type PlayerState struct {
	Seat       int          `json:"seat"`
	Name       string       `json:"name"`
	Chips      int          `json:"chips"`
	Bet        int          `json:"bet"`
	TotalBet   int          `json:"total_bet"`
	Folded     bool         `json:"folded"`
	AllIn      bool         `json:"all_in"`
	SittingOut bool         `json:"sitting_out"`
	HoleCards  []poker.Card `json:"hole_cards,omitempty"` // Only for the acting player
}

// State is a snapshot of the table. Only the acting player's hole cards are
// included.
type State struct {
	Round      int           `json:"round"`
	Street     Street        `json:"street"`
	Dealer     int           `json:"dealer"`
	Current    int           `json:"current"` // -1 when nobody may act
	Players    []PlayerState `json:"players"`
	Board      []poker.Card  `json:"board"`
	CurrentBet int           `json:"current_bet"`
	MinRaise   int           `json:"min_raise"`
	Pots       []Pot         `json:"pots"`
	Finished   bool          `json:"finished"`
}

// State returns a snapshot of the table
func (t *Table) State() State {
	s := State{
		Round:      t.round,
		Street:     t.street,
		Dealer:     t.dealer,
		Current:    t.current,
		Players:    make([]PlayerState, len(t.players)),
		Board:      slices.Clone(t.board),
		CurrentBet: t.currentBet,
		MinRaise:   t.minRaise,
		Pots:       t.pots.Pots(),
		Finished:   t.finished,
	}
	for i, p := range t.players {
		s.Players[i] = PlayerState{
			Seat:       p.Seat,
			Name:       p.Name,
			Chips:      p.Chips,
			Bet:        p.Bet,
			TotalBet:   p.TotalBet,
			Folded:     p.Folded,
			AllIn:      p.AllIn,
			SittingOut: p.SittingOut,
		}
		if i == t.current {
			s.Players[i].HoleCards = slices.Clone(p.HoleCards)
		}
	}
	return s
}

// Acting returns the acting player, or false when nobody may act
func (s State) Acting() (PlayerState, bool) {
	if s.Current < 0 || s.Current >= len(s.Players) {
		return PlayerState{}, false
	}
	return s.Players[s.Current], true
}

// ToCall returns the chips the acting player needs to call
func (s State) ToCall() int {
	p, ok := s.Acting()
	if !ok {
		return 0
	}
	return min(max(s.CurrentBet-p.Bet, 0), p.Chips)
}

// MinRaiseTo returns the smallest total bet that is a legal raise
func (s State) MinRaiseTo() int {
	return s.CurrentBet + s.MinRaise
}

// PotTotal returns the chips in the pots, not counting open street bets
func (s State) PotTotal() int {
	total := 0
	for _, pot := range s.Pots {
		total += pot.Amount
	}
	return total
}

// ShownHand is a hand revealed at showdown
type ShownHand struct {
	Seat      int             `json:"seat"`
	Name      string          `json:"name"`
	HoleCards []poker.Card    `json:"hole_cards"`
	Best      [5]poker.Card   `json:"best"`
	Score     evaluator.Score `json:"score"`
	Category  string          `json:"category"`
}

// PotAward records how one pot was split. Shares line up with Winners.
type PotAward struct {
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
	Winners  []int `json:"winners"`
	Shares   []int `json:"shares"`
}

// RoundResult describes how a round was settled
type RoundResult struct {
	Round       int          `json:"round"`
	Players     []string     `json:"players"`   // Names in seat order
	Committed   []int        `json:"committed"` // Chips each seat put in this round
	Board       []poker.Card `json:"board"`
	Uncontested bool         `json:"uncontested"`
	Pots        []PotAward   `json:"pots"`
	Hands       []ShownHand  `json:"hands,omitempty"`
}

// Net returns each seat's profit or loss for the round, in seat order
func (r *RoundResult) Net() []int {
	net := make([]int, len(r.Committed))
	for seat, committed := range r.Committed {
		net[seat] = -committed
	}
	for seat, won := range r.Winnings() {
		if seat < len(net) {
			net[seat] += won
		}
	}
	return net
}

// Winnings returns the chips each seat took from the round
func (r *RoundResult) Winnings() map[int]int {
	won := make(map[int]int)
	for _, pot := range r.Pots {
		for i, seat := range pot.Winners {
			won[seat] += pot.Shares[i]
		}
	}
	return won
}

// PlayerResult is a player's standing in a Result
type PlayerResult struct {
	Name   string `json:"name"`
	Chips  int    `json:"chips"`
	AllIn  bool   `json:"all_in"`
	Folded bool   `json:"folded"`
}

// PotResult is a pot in a Result, with eligible players by name
type PotResult struct {
	Amount  int      `json:"amount"`
	Players []string `json:"players"`
}

// Result summarises the table for drivers
type Result struct {
	Players     []PlayerResult `json:"players"`
	TotalRounds int            `json:"total_rounds"`
	Pots        []PotResult    `json:"pots"`
	LastRound   *RoundResult   `json:"last_round,omitempty"`
	Finished    bool           `json:"finished"`
}

// GameResult returns the standings, the open pots and the last settled round
func (t *Table) GameResult() Result {
	r := Result{
		Players:     make([]PlayerResult, len(t.players)),
		TotalRounds: t.round,
		LastRound:   t.lastResult,
		Finished:    t.finished,
	}
	for i, p := range t.players {
		r.Players[i] = PlayerResult{
			Name:   p.Name,
			Chips:  p.Chips,
			AllIn:  p.AllIn,
			Folded: p.Folded,
		}
	}
	for _, pot := range t.pots.Pots() {
		r.Pots = append(r.Pots, PotResult{Amount: pot.Amount, Players: t.names(pot.Eligible)})
	}
	return r
}

// LastRound returns the most recently settled round, or nil
func (t *Table) LastRound() *RoundResult {
	return t.lastResult
}
