package game

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	if s < Preflop || s > Showdown {
		return "unknown"
	}
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	if a < Fold || a > AllIn {
		return "unknown"
	}
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// classifyBet names a bet that has already passed validation. An amount
// equal to the whole stack is an all-in whether or not it covers the bet.
func classifyBet(p *Player, amount, currentBet int) Action {
	switch {
	case amount == 0:
		return Check
	case amount == p.Chips:
		return AllIn
	case p.Bet+amount == currentBet:
		return Call
	default:
		return Raise
	}
}

func (s Street) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
