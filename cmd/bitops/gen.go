// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type genCmd struct {
	typ    string
	pkg    string
	output string
}

func (*genCmd) Name() string { return "gen" }

func (*genCmd) Synopsis() string {
	return "generates Go constants from bit expressions"
}

func (*genCmd) Usage() string {
	return `gen -type T -pkg P [-o file] name=op:operand[,shift] ...

Evaluates each expression with the portable implementations and writes
a Go file declaring the results as constants.  An expression that
cannot be evaluated, such as a bit ceiling that does not fit the type,
is an error and no file is written.  Meant for go:generate lines:

	//go:generate go run github.com/clausecker/bitops/cmd/bitops gen -type uint32 -pkg mem -o sizes.go pageSize=bitceil:3000

operations: ` + strings.Join(opNames, ", ") + "\n\nflags:\n"
}

func (cmd *genCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.typ, "type", "uint64", "operand type, one of "+strings.Join(typeNames, ", "))
	f.StringVar(&cmd.pkg, "pkg", "", "package name of the generated file")
	f.StringVar(&cmd.output, "o", "", "output file, standard output if empty")
}

// one name=op:operand[,shift] argument
type constSpec struct {
	name string
	expr expr
}

var errSyntax = errors.New("expected name=op:operand[,shift]")

func parseSpec(arg string) (constSpec, error) {
	name, rhs, ok := strings.Cut(arg, "=")
	if !ok {
		return constSpec{}, fmt.Errorf("%q: %w", arg, errSyntax)
	}

	name = strings.TrimSpace(name)
	if !token.IsIdentifier(name) {
		return constSpec{}, fmt.Errorf("%q: %q is not an identifier", arg, name)
	}

	op, operands, ok := strings.Cut(rhs, ":")
	if !ok {
		return constSpec{}, fmt.Errorf("%q: %w", arg, errSyntax)
	}

	operand, shift, _ := strings.Cut(operands, ",")
	e := expr{
		op:      strings.ToLower(strings.TrimSpace(op)),
		operand: strings.TrimSpace(operand),
		shift:   strings.TrimSpace(shift),
	}

	return constSpec{name: name, expr: e}, nil
}

// generate the source of a Go file for specs.  args is recorded in
// the header.
func (cmd *genCmd) generate(ctx context.Context, specs []constSpec, args []string) ([]byte, error) {
	if !token.IsIdentifier(cmd.pkg) {
		return nil, fmt.Errorf("package name %q is not an identifier", cmd.pkg)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by \"bitops gen %s\"; DO NOT EDIT.\n\n", strings.Join(args, " "))
	fmt.Fprintf(&b, "package %s\n\nconst (\n", cmd.pkg)

	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if seen[s.name] {
			return nil, fmt.Errorf("%s declared twice", s.name)
		}

		seen[s.name] = true

		r, err := evaluate(cmd.typ, s.expr, false)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}

		loggerFrom(ctx).Debug("constant", "name", s.name, "expr", s.expr.String(), "value", r.literal())
		if r.kind == valueResult {
			fmt.Fprintf(&b, "%s %s = %s // %s\n", s.name, cmd.typ, r.literal(), s.expr)
		} else {
			fmt.Fprintf(&b, "%s = %s // %s\n", s.name, r.literal(), s.expr)
		}
	}

	b.WriteString(")\n")

	return format.Source(b.Bytes())
}

func (cmd *genCmd) execute(ctx context.Context, args []string) error {
	specs := make([]constSpec, 0, len(args))
	for _, arg := range args {
		s, err := parseSpec(arg)
		if err != nil {
			return err
		}

		specs = append(specs, s)
	}

	header := append([]string{"-type", cmd.typ, "-pkg", cmd.pkg}, args...)
	src, err := cmd.generate(ctx, specs, header)
	if err != nil {
		return err
	}

	if cmd.output == "" {
		return write(os.Stdout, src)
	}

	if err := os.WriteFile(cmd.output, src, 0o666); err != nil {
		return fmt.Errorf("writing generated file: %w", err)
	}

	loggerFrom(ctx).Info("generated", "file", cmd.output, "constants", len(specs))
	return nil
}

func write(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}

func (cmd *genCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 || cmd.pkg == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	if err := cmd.execute(ctx, f.Args()); err != nil {
		loggerFrom(ctx).Error("gen failed", "err", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
