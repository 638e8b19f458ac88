package game

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemtable/internal/evaluator"
	"github.com/lox/holdemtable/internal/randutil"
	"github.com/lox/holdemtable/poker"
)

// Table is a cash-game table running one round at a time. It is not safe
// for concurrent use; a single caller drives it action by action.
type Table struct {
	players    []*Player
	smallBlind int
	bigBlind   int

	round         int
	dealer        int
	current       int // -1 when nobody may act
	street        Street
	board         []poker.Card
	deck          *poker.Deck
	currentBet    int
	minRaise      int
	lastAggressor int
	pots          *PotManager
	finished      bool
	lastResult    *RoundResult
	events        []Event

	rng     *rand.Rand
	oddsRng *rand.Rand
	newDeck func(*rand.Rand) *poker.Deck
	logger  *log.Logger
	clock   quartz.Clock
}

// NewTable seats the players in order. Names must be unique and non-empty;
// the big blind must be at least the small blind.
func NewTable(players []PlayerConfig, smallBlind, bigBlind int, opts ...TableOption) (*Table, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: got %d players", ErrNotEnoughPlayers, len(players))
	}
	if smallBlind <= 0 || bigBlind < smallBlind {
		return nil, fmt.Errorf("%w: small blind %d, big blind %d", ErrInvalidBlinds, smallBlind, bigBlind)
	}

	cfg := defaultTableConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = randutil.NewOrTime(0)
	}

	seen := make(map[string]bool, len(players))
	seats := make([]*Player, len(players))
	for i, pc := range players {
		name := strings.TrimSpace(pc.Name)
		switch {
		case name == "":
			return nil, fmt.Errorf("%w: seat %d has no name", ErrInvalidPlayer, i)
		case pc.Chips < 0:
			return nil, fmt.Errorf("%w: %s has negative chips", ErrInvalidPlayer, name)
		case seen[name]:
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		seen[name] = true
		seats[i] = &Player{Seat: i, Name: name, Chips: pc.Chips}
	}

	return &Table{
		players:       seats,
		smallBlind:    smallBlind,
		bigBlind:      bigBlind,
		current:       -1,
		lastAggressor: -1,
		pots:          NewPotManager(),
		rng:           cfg.rng,
		oddsRng:       randutil.Child(cfg.rng),
		newDeck:       cfg.newDeck,
		logger:        cfg.logger,
		clock:         cfg.clock,
	}, nil
}

// StartRound begins a new round with the button on dealer: it deals two
// cards to every player with chips and posts the blinds clockwise of the
// button. Players without chips sit the round out.
func (t *Table) StartRound(dealer int) error {
	if dealer < 0 || dealer >= len(t.players) {
		return fmt.Errorf("%w: dealer %d", ErrInvalidSeat, dealer)
	}
	if t.fundedCount() < 2 {
		return ErrNotEnoughPlayers
	}

	t.round++
	t.dealer = dealer
	t.street = Preflop
	t.board = nil
	t.pots.Reset()
	t.currentBet = 0
	t.minRaise = t.bigBlind
	t.lastAggressor = -1
	t.current = -1
	t.finished = false
	t.deck = t.newDeck(t.rng)

	t.record("starting round %d with dealer %s", t.round, t.players[dealer].Name)
	t.logger.Info("Starting round", "round", t.round, "dealer", t.players[dealer].Name, "chips", t.TotalChips())

	for _, p := range t.players {
		p.resetForRound()
		if p.Chips == 0 {
			p.SittingOut = true
			p.Folded = true
			t.record("%s sits out", p.Name)
		}
	}
	for _, p := range t.players {
		if !p.SittingOut {
			p.HoleCards = t.deck.Deal(2)
			t.record("%s dealt %s", p.Name, poker.FormatCards(p.HoleCards))
		}
	}

	sb := t.nextFunded(dealer)
	bb := t.nextFunded(sb)
	t.postBlind(t.players[sb], t.smallBlind, "small")
	t.postBlind(t.players[bb], t.bigBlind, "big")

	t.currentBet = t.bigBlind
	t.minRaise = t.bigBlind
	t.lastAggressor = bb
	t.current = bb
	t.advance()
	return nil
}

// postBlind posts a forced bet, or the whole stack when it does not cover it
func (t *Table) postBlind(p *Player, blind int, kind string) {
	amount := min(blind, p.Chips)
	p.commit(amount)
	if p.AllIn {
		t.record("Player %s [%d] posted a %s blind of %d chips and is all-in.", p.Name, p.Chips, kind, amount)
		return
	}
	t.record("Player %s [%d] posted a %s blind of %d chips.", p.Name, p.Chips, kind, amount)
}

// PlaceBet adds amount chips from the current player's stack. Zero checks,
// the whole stack goes all-in, matching the current bet calls, and anything
// else must raise by at least the minimum raise. A rejected bet returns an
// *ActionError and leaves the table unchanged.
func (t *Table) PlaceBet(amount int) error {
	if t.current < 0 {
		return ErrNoActivePlayer
	}
	p := t.players[t.current]
	if err := t.validateBet(p, amount); err != nil {
		return err
	}

	action := classifyBet(p, amount, t.currentBet)
	p.commit(amount)
	p.Acted = true

	if p.Bet > t.currentBet {
		// A short all-in lifts the bet without changing the minimum raise.
		if raise := p.Bet - t.currentBet; raise >= t.minRaise {
			t.minRaise = raise
		}
		t.currentBet = p.Bet
		t.lastAggressor = p.Seat
	}

	t.record("Player %s [%d] %s with %d chips, current bet %d.", p.Name, p.Chips, action, amount, p.Bet)
	t.advance()
	return nil
}

// PlaceBetString parses a decimal chip amount and places it. Input that is
// not a whole number is rejected with ErrInvalidAmount.
func (t *Table) PlaceBetString(s string) error {
	if t.current < 0 {
		return ErrNoActivePlayer
	}
	amount, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		p := t.players[t.current]
		return &ActionError{
			Err:        ErrInvalidAmount,
			Player:     p.Name,
			Input:      s,
			Bet:        p.Bet,
			Chips:      p.Chips,
			CurrentBet: t.currentBet,
			MinRaiseTo: t.currentBet + t.minRaise,
		}
	}
	return t.PlaceBet(amount)
}

func (t *Table) validateBet(p *Player, amount int) error {
	actionErr := func(err error) *ActionError {
		return &ActionError{
			Err:        err,
			Player:     p.Name,
			Amount:     amount,
			Bet:        p.Bet,
			Chips:      p.Chips,
			CurrentBet: t.currentBet,
			MinRaiseTo: t.currentBet + t.minRaise,
		}
	}

	switch {
	case amount < 0 || amount > p.Chips:
		return actionErr(ErrInvalidAmount)
	case amount == 0:
		if p.Bet != t.currentBet {
			return actionErr(ErrIllegalCheck)
		}
	case amount == p.Chips, p.Bet+amount == t.currentBet:
		// all-in or call
	case p.Bet+amount < t.currentBet+t.minRaise:
		return actionErr(ErrIllegalRaise)
	}
	return nil
}

// Fold folds the current player and removes them from every pot.
func (t *Table) Fold() error {
	if t.current < 0 {
		return ErrNoActivePlayer
	}
	p := t.players[t.current]
	p.Folded = true
	p.Acted = true
	t.pots.RemoveEligible(p.Seat)

	t.record("Player %s [%d] folded, current bet %d.", p.Name, p.Chips, p.Bet)
	t.advance()
	return nil
}

// advance moves the action on after a player acted or the blinds were posted.
func (t *Table) advance() {
	if t.contenderCount() == 1 {
		t.winUncontested()
		return
	}
	if !t.streetComplete() {
		if next := t.nextToAct(t.current); next >= 0 {
			t.current = next
			return
		}
	}
	t.settleStreet()
}

// needsAction reports whether p still owes an action on this street: they
// can bet and have either not acted yet or not matched a later raise.
func (t *Table) needsAction(p *Player) bool {
	return p.CanAct() && (!p.Acted || p.Bet != t.currentBet)
}

// streetComplete reports whether betting on the current street is over.
// With at most one player able to bet there is nobody left to bet against,
// so the street ends once that player has matched the current bet.
func (t *Table) streetComplete() bool {
	owing, able := 0, 0
	var last *Player
	for _, p := range t.players {
		if p.CanAct() {
			able++
			last = p
		}
		if t.needsAction(p) {
			owing++
		}
	}
	if owing == 0 {
		return true
	}
	return able == 1 && last.Bet >= t.currentBet
}

// nextToAct returns the first seat clockwise of from that needs to act, or -1.
func (t *Table) nextToAct(from int) int {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if t.needsAction(t.players[seat]) {
			return seat
		}
	}
	return -1
}

// settleStreet collects bets into pots and deals the next street, running
// out the board while nobody is left to bet, until someone must act or the
// round reaches showdown.
func (t *Table) settleStreet() {
	for {
		t.current = -1
		t.record("ending betting round with current high bet %d", t.currentBet)
		t.pots.Collect(t.players)
		for i, pot := range t.pots.Pots() {
			t.record("sidepot %d: %d %s", i, pot.Amount, strings.Join(t.names(pot.Eligible), ", "))
		}

		if len(t.board) >= 5 {
			t.showdown()
			return
		}

		n := 1
		if len(t.board) == 0 {
			n = 3
		}
		t.board = append(t.board, t.deck.Deal(n)...)
		t.street++
		t.currentBet = 0
		t.minRaise = t.bigBlind
		t.lastAggressor = -1
		for _, p := range t.players {
			p.Acted = false
		}
		t.record("%s: %s", t.street, poker.FormatCards(t.board))
		t.logger.Debug("Street dealt", "round", t.round, "street", t.street, "board", poker.FormatCards(t.board))

		if !t.streetComplete() {
			t.current = t.nextToAct(t.dealer)
			return
		}
	}
}

// showdown awards every pot to the best hands among its eligible players.
func (t *Table) showdown() {
	t.street = Showdown
	t.record("##SHOWDOWN")

	result := &RoundResult{
		Round:   t.round,
		Players:   t.seatNames(),
		Committed: t.committed(),
		Board:     append([]poker.Card(nil), t.board...),
	}

	best := make(map[int]evaluator.Result)
	for _, p := range t.players {
		if p.Folded || len(p.HoleCards) != 2 {
			continue
		}
		cards := append(append([]poker.Card(nil), p.HoleCards...), t.board...)
		res := evaluator.Evaluate(cards)
		best[p.Seat] = res
		result.Hands = append(result.Hands, ShownHand{
			Seat:      p.Seat,
			Name:      p.Name,
			HoleCards: append([]poker.Card(nil), p.HoleCards...),
			Best:      res.Cards,
			Score:     res.Score,
			Category:  res.Category().String(),
		})
		t.record("%s: %s %s (0x%x)", p.Name, poker.FormatCards(res.Cards[:]), res.Category(), uint32(res.Score))
	}

	for _, pot := range t.pots.Pots() {
		var contenders []int
		for _, seat := range pot.Eligible {
			if _, ok := best[seat]; ok {
				contenders = append(contenders, seat)
			}
		}
		if len(contenders) == 0 {
			// Nobody eligible is left; the pot goes to everyone still in.
			for seat := range best {
				contenders = append(contenders, seat)
			}
			sort.Ints(contenders)
		}

		var top evaluator.Score
		var winners []int
		for _, seat := range contenders {
			switch score := best[seat].Score; {
			case score > top:
				top = score
				winners = []int{seat}
			case score == top:
				winners = append(winners, seat)
			}
		}
		result.Pots = append(result.Pots, t.award(pot, winners))
	}

	t.pots.Reset()
	t.finishRound(result)
}

// winUncontested gives every pot to the last player who has not folded.
func (t *Table) winUncontested() {
	t.current = -1
	t.pots.Collect(t.players)

	var winner *Player
	for _, p := range t.players {
		if !p.Folded {
			winner = p
			break
		}
	}

	result := &RoundResult{
		Round:       t.round,
		Players:     t.seatNames(),
		Committed:   t.committed(),
		Board:       append([]poker.Card(nil), t.board...),
		Uncontested: true,
	}
	for _, pot := range t.pots.Pots() {
		result.Pots = append(result.Pots, t.award(pot, []int{winner.Seat}))
	}
	t.pots.Reset()
	t.finishRound(result)
}

// award splits a pot between winners. Chips that do not divide evenly go
// one at a time to the winners nearest the dealer's left.
func (t *Table) award(pot Pot, winners []int) PotAward {
	n := len(t.players)
	sort.Slice(winners, func(i, j int) bool {
		return (winners[i]-t.dealer-1+n)%n < (winners[j]-t.dealer-1+n)%n
	})

	share, odd := pot.Amount/len(winners), pot.Amount%len(winners)
	award := PotAward{
		Amount:   pot.Amount,
		Eligible: pot.Eligible,
		Winners:  winners,
		Shares:   make([]int, len(winners)),
	}
	for i, seat := range winners {
		amount := share
		if i < odd {
			amount++
		}
		award.Shares[i] = amount
		t.players[seat].Chips += amount
	}

	t.record("winners: %s (%d)", strings.Join(t.names(winners), ", "), pot.Amount)
	t.logger.Info("Pot awarded", "round", t.round, "amount", pot.Amount, "winners", strings.Join(t.names(winners), ","))
	return award
}

// finishRound stores the result and deals the next round, unless fewer than
// two players have chips left.
func (t *Table) finishRound(result *RoundResult) {
	t.lastResult = result
	t.current = -1

	if t.fundedCount() < 2 {
		t.finished = true
		t.record("table finished after %d rounds", t.round)
		t.logger.Info("Table finished", "rounds", t.round)
		return
	}
	_ = t.StartRound(t.nextFunded(t.dealer))
}

// nextFunded returns the first seat clockwise of from with chips behind.
func (t *Table) nextFunded(from int) int {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if t.players[seat].Chips > 0 && !t.players[seat].SittingOut {
			return seat
		}
	}
	return from
}

func (t *Table) fundedCount() int {
	count := 0
	for _, p := range t.players {
		if p.Chips > 0 {
			count++
		}
	}
	return count
}

// contenderCount returns the number of players who have not folded
func (t *Table) contenderCount() int {
	count := 0
	for _, p := range t.players {
		if !p.Folded {
			count++
		}
	}
	return count
}

func (t *Table) seatNames() []string {
	names := make([]string, len(t.players))
	for i, p := range t.players {
		names[i] = p.Name
	}
	return names
}

func (t *Table) committed() []int {
	committed := make([]int, len(t.players))
	for i, p := range t.players {
		committed[i] = p.TotalBet
	}
	return committed
}

func (t *Table) names(seats []int) []string {
	names := make([]string, len(seats))
	for i, seat := range seats {
		names[i] = t.players[seat].Name
	}
	return names
}

// TotalChips returns every chip at the table: stacks, street bets and pots.
func (t *Table) TotalChips() int {
	total := t.pots.Total()
	for _, p := range t.players {
		total += p.Chips + p.Bet
	}
	return total
}

// Finished returns true once fewer than two players have chips
func (t *Table) Finished() bool {
	return t.finished
}
