package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/holdemtable/internal/config"
	"github.com/lox/holdemtable/internal/display"
	"github.com/lox/holdemtable/internal/game"
	"github.com/lox/holdemtable/internal/statistics"
)

// PlayCmd runs a table driven by commands on stdin
type PlayCmd struct {
	Config string `short:"c" default:"table.hcl" help:"HCL table configuration (defaults apply when missing)"`
	Table  string `help:"Table to play when the configuration has several"`
	Seed   *int64 `help:"Random seed for reproducible deals (overrides the configuration)"`
	Trials int    `short:"t" help:"Trials for the odds command (overrides the configuration)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Level()
	if c.Debug {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	tc, err := cfg.Table(c.Table)
	if err != nil {
		return err
	}

	opts := []game.TableOption{game.WithLogger(logger)}
	if c.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *c.Seed)
		opts = append(opts, game.WithSeed(*c.Seed))
	}
	table, err := tc.NewTable(opts...)
	if err != nil {
		return err
	}
	if err := table.StartRound(tc.Dealer); err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	trials := tc.OddsTrials
	if c.Trials > 0 {
		trials = c.Trials
	}

	s := &session{
		table:  table,
		in:     os.Stdin,
		out:    os.Stdout,
		trials: trials,
		stats:  &statistics.Statistics{},
		logger: logger,
	}
	return s.run()
}

// session reads commands and applies them to the acting player
type session struct {
	table  *game.Table
	in     io.Reader
	out    io.Writer
	trials int
	stats  *statistics.Statistics
	logger *log.Logger
}

func (s *session) run() error {
	scanner := bufio.NewScanner(s.in)
	fmt.Fprintln(s.out, display.RenderState(s.table.State()))

	for !s.table.Finished() {
		s.prompt()
		if !scanner.Scan() {
			break
		}
		if len(scanner.Bytes()) == 0 {
			continue
		}

		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(s.out, display.ErrorStyle.Render(err.Error()))
			continue
		}
		if cmd.kind == cmdQuit {
			break
		}

		if err := s.execute(cmd); err != nil {
			s.logger.Debug("Action rejected", "error", err)
			fmt.Fprintln(s.out, display.ErrorStyle.Render(err.Error()))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}

	fmt.Fprintln(s.out, display.RenderState(s.table.State()))
	if s.stats.Rounds > 0 {
		fmt.Fprintln(s.out, display.RenderStats(s.stats))
	}
	return nil
}

func (s *session) prompt() {
	st := s.table.State()
	p, ok := st.Acting()
	if !ok {
		return
	}
	if toCall := st.ToCall(); toCall > 0 {
		fmt.Fprintf(s.out, "%s, %d to call> ", p.Name, toCall)
		return
	}
	fmt.Fprintf(s.out, "%s> ", p.Name)
}

// execute applies a command. Betting errors come back from the table
// unchanged; informational commands only print.
func (s *session) execute(cmd command) error {
	st := s.table.State()

	switch cmd.kind {
	case cmdOdds:
		fmt.Fprintln(s.out, display.RenderOdds(st, s.table.SimulateOdds(s.trials)))
		return nil
	case cmdState:
		fmt.Fprintln(s.out, display.RenderState(st))
		return nil
	case cmdResult:
		out, err := json.MarshalIndent(s.table.GameResult(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(s.out, string(out))
		return nil
	case cmdLog:
		fmt.Fprint(s.out, s.table.LogText())
		return nil
	case cmdStats:
		fmt.Fprintln(s.out, display.RenderStats(s.stats))
		return nil
	case cmdHelp:
		fmt.Fprintln(s.out, helpText)
		return nil
	}

	last := s.table.LastRound()
	var err error
	switch cmd.kind {
	case cmdCheck:
		err = s.table.PlaceBet(0)
	case cmdCall:
		err = s.table.PlaceBet(st.ToCall())
	case cmdBet:
		err = s.table.PlaceBetString(cmd.amount)
	case cmdAllIn:
		p, ok := st.Acting()
		if !ok {
			return game.ErrNoActivePlayer
		}
		err = s.table.PlaceBet(p.Chips)
	case cmdFold:
		err = s.table.Fold()
	}
	if err != nil {
		return err
	}

	if settled := s.table.LastRound(); settled != last {
		s.stats.Add(settled)
		if err := s.stats.Validate(); err != nil {
			s.logger.Warn("Statistics out of balance", "error", err)
		}
		fmt.Fprintln(s.out, display.RenderResult(settled))
	}
	if !s.table.Finished() {
		fmt.Fprintln(s.out, display.RenderState(s.table.State()))
	}
	return nil
}
