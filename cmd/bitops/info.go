// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/clausecker/bitops"
)

type infoCmd struct {
	json bool
}

func (*infoCmd) Name() string { return "info" }

func (*infoCmd) Synopsis() string {
	return "shows the capability facts, the probe result, and the chosen implementations"
}

func (*infoCmd) Usage() string {
	return "info [-json]\n\nflags:\n"
}

func (cmd *infoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.json, "json", false, "print the report as JSON")
}

// the report printed by info
type report struct {
	Facts      bitops.Facts        `json:"facts"`
	ByteOrder  string              `json:"byteOrder"`
	NoHW       string              `json:"noHW"`
	Probe      bitops.Capabilities `json:"probe"`
	Selections []bitops.Selection  `json:"selections"`
}

func newReport() report {
	return report{
		Facts:      bitops.BuildFacts(),
		ByteOrder:  byteOrder().String(),
		NoHW:       os.Getenv(bitops.EnvNoHW),
		Probe:      bitops.Probe(),
		Selections: bitops.Selections(),
	}
}

// byte order of the running program
func byteOrder() bitops.ByteOrder {
	if bitops.BitCast[[2]byte](uint16(1))[0] == 1 {
		return bitops.LittleEndian
	}

	return bitops.BigEndian
}

func (r *report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r *report) writeText(w io.Writer) error {
	fmt.Fprintf(w, "arch %s, %d bit words, %s endian\n", r.Facts.Arch, r.Facts.WordBits, r.ByteOrder)
	if r.NoHW != "" {
		fmt.Fprintf(w, "%s=%q\n", bitops.EnvNoHW, r.NoHW)
	}

	fmt.Fprintf(w, "probe: popcount=%v leadingzeros=%v trailingzeros=%v\n\n",
		r.Probe.PopCount, r.Probe.LeadingZeros, r.Probe.TrailingZeros)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "OP\tWIDTH\tSUPPORT\tIMPL\tSPLIT")
	for _, s := range r.Selections {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", s.Op, s.Width, s.Support, s.Impl, strconv.FormatBool(s.Split))
	}

	return tw.Flush()
}

func (cmd *infoCmd) execute(ctx context.Context, w io.Writer) error {
	r := newReport()
	loggerFrom(ctx).Debug("probed", "arch", r.Facts.Arch, "capabilities", r.Probe)

	if cmd.json {
		return r.writeJSON(w)
	}

	return r.writeText(w)
}

func (cmd *infoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	if err := cmd.execute(ctx, os.Stdout); err != nil {
		loggerFrom(ctx).Error("info failed", "err", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
