// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

// Command bitops reports how the bitops package dispatches on this
// machine, evaluates single primitives, and generates Go constants
// from bit expressions for use with go generate.
//
// Usage:
//
//	bitops info [-json]
//	bitops eval -type T op operand [shift]
//	bitops gen -type T -pkg P [-o file] name=op:operand[,shift] ...
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

var verbose bool

func init() {
	flag.BoolVar(&verbose, "v", false, "log debug messages")
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&infoCmd{}, "")
	subcommands.Register(&evalCmd{}, "")
	subcommands.Register(&genCmd{}, "")

	flag.Parse()

	ctx := withLogger(context.Background(), newLogger(os.Stderr, verbose))
	os.Exit(int(subcommands.Execute(ctx)))
}
