package game

import (
	"github.com/lox/holdemtable/poker"
)

// PlayerConfig describes a player taking a seat at the table
type PlayerConfig struct {
	Name  string
	Chips int
}

// Player represents a seated player. Seat is the player's identity for pot
// eligibility; Name is for display only.
type Player struct {
	Seat       int
	Name       string
	Chips      int
	HoleCards  []poker.Card
	Bet        int // Committed on the current street
	TotalBet   int // Committed this round
	Folded     bool
	AllIn      bool
	Acted      bool // Acted on the current street
	SittingOut bool // Had no chips when the round started
}

// CanAct returns true if the player can still put chips in
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn && p.Chips > 0
}

func (p *Player) resetForRound() {
	p.HoleCards = nil
	p.Bet = 0
	p.TotalBet = 0
	p.Folded = false
	p.AllIn = false
	p.Acted = false
	p.SittingOut = false
}

// commit moves chips from the stack into the street bet
func (p *Player) commit(amount int) {
	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.AllIn = true
	}
}
