package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemtable/internal/randutil"
	"github.com/lox/holdemtable/poker"
)

// TableOption configures a Table during creation.
type TableOption func(*tableConfig)

// tableConfig holds the optional configuration for creating a table.
type tableConfig struct {
	rng     *rand.Rand
	newDeck func(*rand.Rand) *poker.Deck
	logger  *log.Logger
	clock   quartz.Clock
}

func defaultTableConfig() *tableConfig {
	return &tableConfig{
		newDeck: poker.NewDeck,
		logger:  log.New(io.Discard),
		clock:   quartz.NewReal(),
	}
}

// WithRand sets the random source used for shuffling and odds sampling.
// Defaults to a time-seeded generator.
func WithRand(rng *rand.Rand) TableOption {
	return func(c *tableConfig) {
		c.rng = rng
	}
}

// WithSeed is shorthand for WithRand(randutil.New(seed)).
func WithSeed(seed int64) TableOption {
	return WithRand(randutil.New(seed))
}

// WithDeckFactory replaces how each round's deck is built. The factory is
// called once per round with the table's RNG.
func WithDeckFactory(newDeck func(*rand.Rand) *poker.Deck) TableOption {
	return func(c *tableConfig) {
		c.newDeck = newDeck
	}
}

// WithLogger sets the structured logger. Defaults to discarding output.
func WithLogger(logger *log.Logger) TableOption {
	return func(c *tableConfig) {
		c.logger = logger
	}
}

// WithClock sets the clock used to timestamp the event log.
func WithClock(clock quartz.Clock) TableOption {
	return func(c *tableConfig) {
		c.clock = clock
	}
}
