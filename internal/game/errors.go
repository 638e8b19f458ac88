package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned for a negative or non-numeric bet, or one
	// larger than the player's stack.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrIllegalCheck is returned for a check while facing a bet.
	ErrIllegalCheck = errors.New("illegal check")
	// ErrIllegalRaise is returned for a bet that neither calls, goes all-in,
	// nor reaches the minimum raise.
	ErrIllegalRaise = errors.New("illegal raise")

	ErrNoActivePlayer   = errors.New("no player can act")
	ErrNotEnoughPlayers = errors.New("at least 2 players with chips required")
	ErrInvalidSeat      = errors.New("seat out of range")
	ErrDuplicateName    = errors.New("duplicate player name")
	ErrInvalidBlinds    = errors.New("invalid blinds")
	ErrInvalidPlayer    = errors.New("invalid player")
)

// ActionError describes a rejected action. It wraps one of ErrInvalidAmount,
// ErrIllegalCheck or ErrIllegalRaise and carries what the caller needs to
// explain the rule and retry.
type ActionError struct {
	Err        error
	Player     string
	Input      string // Raw input when the amount could not be parsed
	Amount     int    // Chips the player tried to add
	Bet        int    // Already committed this street
	Chips      int    // Stack before the action
	CurrentBet int
	MinRaiseTo int // Smallest legal total for a raise
}

func (e *ActionError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidAmount) && e.Input != "":
		return fmt.Sprintf("%v: %q is not a whole number of chips", e.Err, e.Input)
	case errors.Is(e.Err, ErrInvalidAmount):
		return fmt.Sprintf("%v: %s cannot bet %d with a stack of %d", e.Err, e.Player, e.Amount, e.Chips)
	case errors.Is(e.Err, ErrIllegalCheck):
		return fmt.Sprintf("%v: current bet is %d, %s must call %d or fold", e.Err, e.CurrentBet, e.Player, e.ToCall())
	case errors.Is(e.Err, ErrIllegalRaise):
		return fmt.Sprintf("%v: total of %d is below the minimum raise to %d (current bet %d, call %d)",
			e.Err, e.Bet+e.Amount, e.MinRaiseTo, e.CurrentBet, e.ToCall())
	default:
		return e.Err.Error()
	}
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// ToCall returns the chips needed to match the current bet
func (e *ActionError) ToCall() int {
	return max(e.CurrentBet-e.Bet, 0)
}
