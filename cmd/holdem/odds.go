package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lox/holdemtable/internal/display"
	"github.com/lox/holdemtable/internal/evaluator"
	"github.com/lox/holdemtable/internal/randutil"
	"github.com/lox/holdemtable/poker"
)

// OddsCmd estimates equity for hands given on the command line
type OddsCmd struct {
	Hands  []string `arg:"" required:"" help:"Hole cards per player, e.g. AhKh QsQc"`
	Board  string   `short:"b" help:"Community cards, e.g. 2c7d9h"`
	Trials int      `short:"t" default:"10000" help:"Number of simulated run-outs"`
	Seed   *int64   `help:"Random seed for reproducible results"`
}

func (c *OddsCmd) Run() error {
	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}
	if err := validateNoDuplicates(hands, board); err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	}
	odds := evaluator.SimulateOdds(evaluator.OddsRequest{
		Hands:  hands,
		Board:  board,
		Trials: c.Trials,
	}, randutil.NewOrTime(seed))

	return writeOdds(os.Stdout, hands, board, odds)
}

func parseHands(handStrings []string) ([][]poker.Card, error) {
	if len(handStrings) < 2 {
		return nil, fmt.Errorf("at least 2 hands are required")
	}

	hands := make([][]poker.Card, 0, len(handStrings))
	for i, handStr := range handStrings {
		hand, err := poker.ParseCards(handStr)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) != 2 {
			return nil, fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(hand))
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

func parseBoard(s string) ([]poker.Card, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	board, err := poker.ParseCards(s)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if len(board) > 5 {
		return nil, fmt.Errorf("board cannot have more than 5 cards, got %d", len(board))
	}
	return board, nil
}

func validateNoDuplicates(hands [][]poker.Card, board []poker.Card) error {
	seen := make(map[poker.Card]bool)
	check := func(cards []poker.Card) error {
		for _, c := range cards {
			if seen[c] {
				return fmt.Errorf("duplicate card: %s", c)
			}
			seen[c] = true
		}
		return nil
	}
	for _, hand := range hands {
		if err := check(hand); err != nil {
			return err
		}
	}
	return check(board)
}

func writeOdds(w io.Writer, hands [][]poker.Card, board []poker.Card, odds []float64) error {
	if len(board) > 0 {
		fmt.Fprintf(w, "Board: %s\n\n", display.RenderCards(board))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Hand\tWin\tMade hand")
	for i, hand := range hands {
		made := ""
		if len(board) >= 3 {
			made = evaluator.Evaluate(append(append([]poker.Card(nil), hand...), board...)).Category().String()
		}
		fmt.Fprintf(tw, "%s\t%.1f%%\t%s\n", poker.FormatCards(hand), odds[i]*100, made)
	}
	return tw.Flush()
}
