package game

import (
	"slices"
	"sort"
)

// Pot represents a pot (main or side)
type Pot struct {
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"` // Seats that can win this pot, ascending
}

// PotManager layers street bets into main and side pots and carries them
// across the streets of a round.
type PotManager struct {
	pots []Pot
}

// NewPotManager creates an empty pot manager
func NewPotManager() *PotManager {
	return &PotManager{}
}

// Reset drops every pot
func (pm *PotManager) Reset() {
	pm.pots = nil
}

// Total returns the total amount in all pots
func (pm *PotManager) Total() int {
	total := 0
	for _, pot := range pm.pots {
		total += pot.Amount
	}
	return total
}

// Pots returns a copy of the current pots, main pot first
func (pm *PotManager) Pots() []Pot {
	out := make([]Pot, len(pm.pots))
	for i, pot := range pm.pots {
		out[i] = Pot{Amount: pot.Amount, Eligible: slices.Clone(pot.Eligible)}
	}
	return out
}

// Collect moves every player's street bet into the pots and zeroes the bets.
//
// Players are taken in ascending order of bet. The lowest outstanding bet
// forms a layer worth that bet from everyone still holding chips in front of
// them, open to the non-folded ones; it is subtracted from all of them and
// the lowest player drops out. Each all-in tier therefore gets its own pot.
// Layers nobody can win are folded into the layer below. Pots whose eligible
// seats match an existing pot are merged into it.
func (pm *PotManager) Collect(players []*Player) {
	remaining := make([]*Player, 0, len(players))
	bets := make(map[int]int, len(players))
	for _, p := range players {
		if p.Bet > 0 {
			remaining = append(remaining, p)
			bets[p.Seat] = p.Bet
		}
		p.Bet = 0
	}
	if len(remaining) == 0 {
		return
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		return bets[remaining[i].Seat] < bets[remaining[j].Seat]
	})

	var layers []Pot
	pending := 0
	for len(remaining) > 0 {
		low := bets[remaining[0].Seat]
		if low > 0 {
			layer := Pot{Amount: low * len(remaining) + pending}
			for _, p := range remaining {
				bets[p.Seat] -= low
				if !p.Folded {
					layer.Eligible = append(layer.Eligible, p.Seat)
				}
			}
			pending = 0

			switch {
			case len(layer.Eligible) > 0:
				sort.Ints(layer.Eligible)
				layers = append(layers, layer)
			case len(layers) > 0:
				layers[len(layers)-1].Amount += layer.Amount
			default:
				pending = layer.Amount
			}
		}
		remaining = remaining[1:]
	}

	if pending > 0 {
		// Everyone who bet has folded; the chips go to whoever is left.
		if len(pm.pots) > 0 {
			pm.pots[len(pm.pots)-1].Amount += pending
		} else {
			pm.pots = append(pm.pots, Pot{Amount: pending, Eligible: contenders(players)})
		}
	}

	for _, layer := range layers {
		pm.add(layer)
	}
}

// RemoveEligible takes a folded seat out of every pot and merges pots that
// end up with the same eligible seats.
func (pm *PotManager) RemoveEligible(seat int) {
	for i := range pm.pots {
		pm.pots[i].Eligible = slices.DeleteFunc(pm.pots[i].Eligible, func(s int) bool { return s == seat })
	}
	pots := pm.pots
	pm.pots = nil
	for _, pot := range pots {
		pm.add(pot)
	}
}

// add merges pot into an existing pot with the same eligible seats, or
// appends it.
func (pm *PotManager) add(pot Pot) {
	for i := range pm.pots {
		if slices.Equal(pm.pots[i].Eligible, pot.Eligible) {
			pm.pots[i].Amount += pot.Amount
			return
		}
	}
	pm.pots = append(pm.pots, pot)
}

// contenders returns the seats of players who have not folded
func contenders(players []*Player) []int {
	var seats []int
	for _, p := range players {
		if !p.Folded {
			seats = append(seats, p.Seat)
		}
	}
	return seats
}
