// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type evalCmd struct {
	typ string
}

func (*evalCmd) Name() string { return "eval" }

func (*evalCmd) Synopsis() string {
	return "evaluates one operation through the dispatcher and the portable code"
}

func (*evalCmd) Usage() string {
	return "eval [-type T] op operand [shift]\n\noperations: " + strings.Join(opNames, ", ") + "\n\nflags:\n"
}

func (cmd *evalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.typ, "type", "uint64", "operand type, one of "+strings.Join(typeNames, ", "))
}

// evaluate e both ways and print the results.  Differing results are
// an error.
func (cmd *evalCmd) execute(ctx context.Context, w io.Writer, e expr) error {
	hw, err := evaluate(cmd.typ, e, true)
	if err != nil {
		return err
	}

	sw, err := evaluate(cmd.typ, e, false)
	if err != nil {
		return err
	}

	loggerFrom(ctx).Debug("evaluated", "type", cmd.typ, "expr", e.String(), "dispatch", hw.String(), "portable", sw.String())
	if hw != sw {
		return fmt.Errorf("%s: dispatcher yields %v, portable code yields %v", e, hw, sw)
	}

	_, err = fmt.Fprintln(w, hw)
	return err
}

func (cmd *evalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 || f.NArg() > 3 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	e := expr{op: f.Arg(0), operand: f.Arg(1), shift: f.Arg(2)}
	if err := cmd.execute(ctx, os.Stdout, e); err != nil {
		loggerFrom(ctx).Error("eval failed", "err", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
