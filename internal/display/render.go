package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdemtable/internal/game"
	"github.com/lox/holdemtable/internal/statistics"
	"github.com/lox/holdemtable/poker"
)

// RenderCard renders a card with red or black suit colouring
func RenderCard(c poker.Card) string {
	if c.Suit.IsRed() {
		return RedCardStyle.Render(c.Pretty())
	}
	return BlackCardStyle.Render(c.Pretty())
}

// RenderCards renders cards separated by spaces, or a placeholder when empty
func RenderCards(cards []poker.Card) string {
	if len(cards) == 0 {
		return InfoStyle.Render("--")
	}
	formatted := make([]string, len(cards))
	for i, c := range cards {
		formatted[i] = RenderCard(c)
	}
	return strings.Join(formatted, " ")
}

// RenderState renders the table as seen by the acting player
func RenderState(s game.State) string {
	var lines []string

	header := fmt.Sprintf(" Round %d | %s ", s.Round, s.Street)
	if s.Finished {
		header = fmt.Sprintf(" Finished after %d rounds ", s.Round)
	}
	lines = append(lines, HeaderStyle.Render(header))
	lines = append(lines, "Board: "+RenderCards(s.Board))
	lines = append(lines, PotStyle.Render(potLine(s)))
	if s.Current >= 0 {
		lines = append(lines, fmt.Sprintf("Bet: %d  To call: %d  Min raise to: %d", s.CurrentBet, s.ToCall(), s.MinRaiseTo()))
	}
	lines = append(lines, "")

	for _, p := range s.Players {
		lines = append(lines, playerLine(s, p))
	}

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func potLine(s game.State) string {
	if len(s.Pots) == 0 {
		return "Pot: 0"
	}
	parts := make([]string, len(s.Pots))
	for i, pot := range s.Pots {
		name := "main"
		if i > 0 {
			name = fmt.Sprintf("side %d", i)
		}
		parts[i] = fmt.Sprintf("%s %d", name, pot.Amount)
	}
	if len(parts) == 1 {
		return fmt.Sprintf("Pot: %d", s.PotTotal())
	}
	return fmt.Sprintf("Pot: %d (%s)", s.PotTotal(), strings.Join(parts, ", "))
}

func playerLine(s game.State, p game.PlayerState) string {
	marker := "  "
	if p.Seat == s.Current {
		marker = "> "
	}
	button := " "
	if p.Seat == s.Dealer {
		button = "D"
	}

	var status []string
	switch {
	case p.SittingOut:
		status = append(status, "sitting out")
	case p.Folded:
		status = append(status, "folded")
	case p.AllIn:
		status = append(status, "all-in")
	}
	if p.Bet > 0 {
		status = append(status, fmt.Sprintf("bet %d", p.Bet))
	}

	cards := HiddenCardStyle.Render("?? ??")
	switch {
	case len(p.HoleCards) > 0:
		cards = RenderCards(p.HoleCards)
	case p.Folded || p.SittingOut:
		cards = "     "
	}

	line := fmt.Sprintf("%s%s %-10s %6d  %s  %s", marker, button, p.Name, p.Chips, cards, strings.Join(status, ", "))
	line = strings.TrimRight(line, " ")
	switch {
	case p.Seat == s.Current:
		return ActingStyle.Render(line)
	case p.Folded:
		return FoldedStyle.Render(line)
	default:
		return PlayerInfoStyle.Render(line)
	}
}

// RenderOdds renders each player's winning chances. Players who no longer
// contend are marked instead of showing 0%.
func RenderOdds(s game.State, odds []float64) string {
	lines := []string{HeaderStyle.Render(" Odds ")}
	for i, p := range s.Players {
		if i >= len(odds) {
			break
		}
		switch {
		case p.SittingOut:
			lines = append(lines, InfoStyle.Render(fmt.Sprintf("%-10s sitting out", p.Name)))
		case p.Folded:
			lines = append(lines, InfoStyle.Render(fmt.Sprintf("%-10s folded", p.Name)))
		default:
			lines = append(lines, PlayerInfoStyle.Render(fmt.Sprintf("%-10s %5.1f%%", p.Name, odds[i]*100)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderResult renders how a round was settled. A nil result renders as an
// empty string.
func RenderResult(r *game.RoundResult) string {
	if r == nil {
		return ""
	}

	name := func(seat int) string {
		if seat >= 0 && seat < len(r.Players) {
			return r.Players[seat]
		}
		return fmt.Sprintf("seat %d", seat)
	}

	lines := []string{HeaderStyle.Render(fmt.Sprintf(" Round %d result ", r.Round))}
	if len(r.Board) > 0 {
		lines = append(lines, "Board: "+RenderCards(r.Board))
	}
	for _, h := range r.Hands {
		lines = append(lines, fmt.Sprintf("%-10s %s  %s  %s",
			h.Name, RenderCards(h.HoleCards), RenderCards(h.Best[:]), h.Category))
	}

	for i, pot := range r.Pots {
		label := "Main pot"
		if i > 0 {
			label = fmt.Sprintf("Side pot %d", i)
		}
		winners := make([]string, len(pot.Winners))
		for j, seat := range pot.Winners {
			winners[j] = fmt.Sprintf("%s %d", name(seat), pot.Shares[j])
		}
		line := fmt.Sprintf("%s of %d won by %s", label, pot.Amount, strings.Join(winners, ", "))
		if r.Uncontested {
			line += " uncontested"
		}
		lines = append(lines, WinnerStyle.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderStats renders per-player results for the rounds played so far
func RenderStats(stats *statistics.Statistics) string {
	lines := []string{HeaderStyle.Render(fmt.Sprintf(" %d rounds, %d showdowns, biggest pot %d ",
		stats.Rounds, stats.Showdowns, stats.MaxPot))}
	for _, ps := range stats.Players {
		lines = append(lines, PlayerInfoStyle.Render(fmt.Sprintf("%-10s %4d played  %3d won  net %+6.0f  avg %+7.1f  best %d",
			ps.Name, ps.Rounds, ps.Wins(), ps.SumNet, ps.Mean(), ps.BiggestWin)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
