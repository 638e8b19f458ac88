package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdemtable/internal/game"
)

const (
	DefaultChips      = 2000
	DefaultSmallBlind = 5
	DefaultBigBlind   = 10
	DefaultOddsTrials = 2000
	DefaultLogLevel   = "info"
)

// Config represents the complete configuration file
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Tables   []TableConfig `hcl:"table,block"`
}

// TableConfig defines a table and the players seated at it
type TableConfig struct {
	Name       string         `hcl:"name,label"`
	SmallBlind int            `hcl:"small_blind,optional"`
	BigBlind   int            `hcl:"big_blind,optional"`
	Dealer     int            `hcl:"dealer,optional"`
	OddsTrials int            `hcl:"odds_trials,optional"`
	Seed       int64          `hcl:"seed,optional"` // 0 seeds from the time
	Seats      []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig defines a seated player
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Chips int    `hcl:"chips,optional"`
}

// Default returns a five player table with the default blinds and stacks
func Default() *Config {
	table := TableConfig{
		Name:       "main",
		SmallBlind: DefaultSmallBlind,
		BigBlind:   DefaultBigBlind,
		OddsTrials: DefaultOddsTrials,
	}
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave", "Eve"} {
		table.Seats = append(table.Seats, PlayerConfig{Name: name, Chips: DefaultChips})
	}
	return &Config{
		LogLevel: DefaultLogLevel,
		Tables:   []TableConfig{table},
	}
}

// Load loads configuration from an HCL file, returning Default when the file
// does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse loads configuration from HCL source. The filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	for i := range config.Tables {
		table := &config.Tables[i]
		if table.SmallBlind == 0 {
			table.SmallBlind = DefaultSmallBlind
		}
		if table.BigBlind == 0 {
			table.BigBlind = table.SmallBlind * 2
		}
		if table.OddsTrials == 0 {
			table.OddsTrials = DefaultOddsTrials
		}
		for j := range table.Seats {
			if table.Seats[j].Chips == 0 {
				table.Seats[j].Chips = DefaultChips
			}
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}

	for _, table := range c.Tables {
		if table.SmallBlind <= 0 {
			return fmt.Errorf("table %s: small blind must be positive", table.Name)
		}
		if table.BigBlind < table.SmallBlind {
			return fmt.Errorf("table %s: big blind must be at least the small blind", table.Name)
		}
		if len(table.Seats) < 2 {
			return fmt.Errorf("table %s: at least 2 players must be seated", table.Name)
		}
		if table.Dealer < 0 || table.Dealer >= len(table.Seats) {
			return fmt.Errorf("table %s: dealer %d is not a seat", table.Name, table.Dealer)
		}
		if table.OddsTrials < 0 {
			return fmt.Errorf("table %s: odds_trials cannot be negative", table.Name)
		}

		seen := make(map[string]bool, len(table.Seats))
		for _, p := range table.Seats {
			if seen[p.Name] {
				return fmt.Errorf("table %s: player %s is seated twice", table.Name, p.Name)
			}
			seen[p.Name] = true
			if p.Chips < 0 {
				return fmt.Errorf("table %s: player %s has negative chips", table.Name, p.Name)
			}
		}
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Table returns a table configuration by name, or the first table when name
// is empty.
func (c *Config) Table(name string) (*TableConfig, error) {
	if name == "" && len(c.Tables) > 0 {
		return &c.Tables[0], nil
	}
	for i := range c.Tables {
		if c.Tables[i].Name == name {
			return &c.Tables[i], nil
		}
	}
	return nil, fmt.Errorf("no table named %q", name)
}

// Players returns the seated players in seat order
func (tc *TableConfig) Players() []game.PlayerConfig {
	players := make([]game.PlayerConfig, len(tc.Seats))
	for i, p := range tc.Seats {
		players[i] = game.PlayerConfig{Name: p.Name, Chips: p.Chips}
	}
	return players
}

// NewTable creates the configured table. A non-zero seed is applied before
// opts, so an explicit game.WithRand still wins.
func (tc *TableConfig) NewTable(opts ...game.TableOption) (*game.Table, error) {
	if tc.Seed != 0 {
		opts = append([]game.TableOption{game.WithSeed(tc.Seed)}, opts...)
	}
	table, err := game.NewTable(tc.Players(), tc.SmallBlind, tc.BigBlind, opts...)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", tc.Name, err)
	}
	return table, nil
}
