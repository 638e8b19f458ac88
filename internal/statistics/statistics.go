package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/holdemtable/internal/game"
)

// PlayerStats tracks one seat's results across rounds
type PlayerStats struct {
	Name            string
	Rounds          int
	SumNet          float64
	SumNet2         float64 // Sum of squares for variance calculation
	Values          []float64
	ShowdownWins    int // Rounds with chips won at showdown
	NonShowdownWins int // Rounds won uncontested
	ShowdownNet     float64
	NonShowdownNet  float64
	BiggestWin      int
}

// Mean returns the average net chips per round
func (p *PlayerStats) Mean() float64 {
	if p.Rounds == 0 {
		return 0
	}
	return p.SumNet / float64(p.Rounds)
}

// Variance returns the sample variance of net chips per round
func (p *PlayerStats) Variance() float64 {
	if p.Rounds < 2 {
		return 0
	}
	mean := p.Mean()
	return (p.SumNet2 - float64(p.Rounds)*mean*mean) / float64(p.Rounds-1)
}

// StdDev returns the sample standard deviation of net chips per round
func (p *PlayerStats) StdDev() float64 {
	return math.Sqrt(p.Variance())
}

// Median returns the median net chips per round
func (p *PlayerStats) Median() float64 {
	if len(p.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(p.Values))
	copy(sorted, p.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Wins returns the number of rounds in which the player took chips
func (p *PlayerStats) Wins() int {
	return p.ShowdownWins + p.NonShowdownWins
}

// Statistics tracks results for every seat at a table
type Statistics struct {
	Rounds      int
	Showdowns   int
	MaxPot      int
	TotalPotted int
	Players     []*PlayerStats // By seat
}

// Add incorporates a settled round. Seats that sat the round out are not
// counted as having played it.
func (s *Statistics) Add(result *game.RoundResult) {
	if result == nil {
		return
	}

	s.Rounds++
	if !result.Uncontested {
		s.Showdowns++
	}
	for len(s.Players) < len(result.Players) {
		s.Players = append(s.Players, &PlayerStats{Name: result.Players[len(s.Players)]})
	}

	pot := 0
	for _, award := range result.Pots {
		pot += award.Amount
	}
	s.TotalPotted += pot
	if pot > s.MaxPot {
		s.MaxPot = pot
	}

	won := result.Winnings()
	for seat, net := range result.Net() {
		ps := s.Players[seat]
		if result.Committed[seat] == 0 && won[seat] == 0 {
			continue
		}

		value := float64(net)
		ps.Rounds++
		ps.SumNet += value
		ps.SumNet2 += value * value
		ps.Values = append(ps.Values, value)

		if result.Uncontested {
			ps.NonShowdownNet += value
		} else {
			ps.ShowdownNet += value
		}
		if net > 0 {
			if result.Uncontested {
				ps.NonShowdownWins++
			} else {
				ps.ShowdownWins++
			}
			ps.BiggestWin = max(ps.BiggestWin, net)
		}
	}
}

// IsLedgerBalanced checks that every chip won was lost by someone else
func (s *Statistics) IsLedgerBalanced() bool {
	total := 0.0
	for _, ps := range s.Players {
		total += ps.SumNet
	}
	return math.Abs(total) <= 1e-6
}

// Validate performs consistency checks on the collected statistics
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: net chips across players do not sum to zero")
	}
	if s.Showdowns > s.Rounds {
		return fmt.Errorf("showdowns (%d) exceed rounds (%d)", s.Showdowns, s.Rounds)
	}

	for _, ps := range s.Players {
		if len(ps.Values) != ps.Rounds {
			return fmt.Errorf("%s: values array length (%d) does not match rounds (%d)",
				ps.Name, len(ps.Values), ps.Rounds)
		}
		if ps.Wins() > ps.Rounds {
			return fmt.Errorf("%s: wins (%d) exceed rounds (%d)", ps.Name, ps.Wins(), ps.Rounds)
		}
		if math.Abs(ps.SumNet-ps.ShowdownNet-ps.NonShowdownNet) > 1e-6 {
			return fmt.Errorf("%s: showdown and non-showdown results do not add up", ps.Name)
		}
	}
	return nil
}
