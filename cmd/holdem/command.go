package main

import (
	"fmt"
	"strings"
)

type commandKind int

const (
	cmdCheck commandKind = iota
	cmdCall
	cmdBet
	cmdAllIn
	cmdFold
	cmdOdds
	cmdState
	cmdResult
	cmdLog
	cmdStats
	cmdHelp
	cmdQuit
)

// command is one parsed line of player input
type command struct {
	kind   commandKind
	amount string // Raw chip amount for bet and raise
}

var commandNames = map[string]commandKind{
	"check":  cmdCheck,
	"x":      cmdCheck,
	"call":   cmdCall,
	"c":      cmdCall,
	"bet":    cmdBet,
	"raise":  cmdBet,
	"b":      cmdBet,
	"r":      cmdBet,
	"allin":  cmdAllIn,
	"all-in": cmdAllIn,
	"fold":   cmdFold,
	"f":      cmdFold,
	"odds":   cmdOdds,
	"state":  cmdState,
	"s":      cmdState,
	"result": cmdResult,
	"log":    cmdLog,
	"stats":  cmdStats,
	"help":   cmdHelp,
	"?":      cmdHelp,
	"quit":   cmdQuit,
	"q":      cmdQuit,
	"exit":   cmdQuit,
}

const helpText = `Commands:
  check, x          check when nothing is owed
  call, c           match the current bet
  bet N, raise N    put N more chips in
  allin             push the whole stack
  fold, f           give up the hand
  odds              estimate everyone's winning chances
  state, s          show the table
  result            print the standings as JSON
  log               print the event log
  stats             show results for the rounds played
  quit, q           leave the table`

// parseCommand parses a line of input. Bet amounts are passed through
// unparsed so the table can reject them with its own error.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{}, fmt.Errorf("empty command")
	}

	kind, ok := commandNames[fields[0]]
	if !ok {
		return command{}, fmt.Errorf("unknown command %q, try help", fields[0])
	}

	switch {
	case kind == cmdBet && len(fields) != 2:
		return command{}, fmt.Errorf("%s needs an amount, e.g. %s 20", fields[0], fields[0])
	case kind != cmdBet && len(fields) != 1:
		return command{}, fmt.Errorf("%s takes no arguments", fields[0])
	}

	cmd := command{kind: kind}
	if kind == cmdBet {
		cmd.amount = fields[1]
	}
	return cmd, nil
}
