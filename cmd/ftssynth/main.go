// Command ftssynth renders a synthetic line spectrum from a SYN line list.
//
// Usage:
//
//	ftssynth <linelist> <output> <wstart> <wstop> <delw>
//
// <linelist> is a SYN-format line list: one record per line carrying an
// optional label followed by center wavenumber, width in mK, peak, and
// damping. The spectrum is rendered onto the uniform grid [wstart, wstop]
// with spacing delw and written as <output>.dat plus a matching
// <output>.hdr header.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/cwbudde/algo-fts/fts/header"
	"github.com/cwbudde/algo-fts/fts/spectrum"
	"github.com/cwbudde/algo-fts/fts/synth"
)

var errUsage = errors.New("usage error")

type config struct {
	lineFile   string
	outputBase string
	grid       header.Grid
}

func parseArgs(args []string) (config, error) {
	if len(args) != 5 {
		return config{}, fmt.Errorf("%w: want 5 arguments, got %d", errUsage, len(args))
	}
	cfg := config{lineFile: args[0], outputBase: args[1]}

	var err error
	if cfg.grid.Start, err = strconv.ParseFloat(args[2], 64); err != nil {
		return config{}, fmt.Errorf("%w: wstart must be a number", errUsage)
	}
	if cfg.grid.Stop, err = strconv.ParseFloat(args[3], 64); err != nil {
		return config{}, fmt.Errorf("%w: wstop must be a number", errUsage)
	}
	if cfg.grid.Spacing, err = strconv.ParseFloat(args[4], 64); err != nil {
		return config{}, fmt.Errorf("%w: delw must be a number", errUsage)
	}
	if cfg.grid.Spacing <= 0 || cfg.grid.Stop <= cfg.grid.Start {
		return config{}, fmt.Errorf("%w: need wstart < wstop and delw > 0", errUsage)
	}
	cfg.grid.Count = int(math.Round((cfg.grid.Stop-cfg.grid.Start)/cfg.grid.Spacing)) + 1

	return cfg, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: ftssynth <linelist> <output> <wstart> <wstop> <delw>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Renders a synthetic line spectrum from a SYN line list.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  <linelist>  SYN-format records: label, center, width [mK], peak, damping")
	fmt.Fprintln(os.Stderr, "  <output>    basename for the '.dat' and '.hdr' pair")
	fmt.Fprintln(os.Stderr, "  <wstart> <wstop> <delw>  uniform wavenumber grid in cm^-1")
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		usage()
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	f, err := os.Open(cfg.lineFile)
	if err != nil {
		return err
	}
	lines, err := synth.ParseLineList(f)
	f.Close()
	if err != nil {
		return err
	}
	fmt.Printf("Rendering %d lines onto %d grid samples\n", len(lines), cfg.grid.Count)

	records, err := synth.Render(lines, cfg.grid)
	if err != nil {
		return err
	}

	outputDAT := cfg.outputBase + ".dat"
	outputHDR := cfg.outputBase + ".hdr"

	out, err := os.Create(outputDAT)
	if err != nil {
		return err
	}
	if err := spectrum.Write(out, records); err != nil {
		out.Close()
		os.Remove(outputDAT)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(outputDAT)
		return fmt.Errorf("writing %s: %w", outputDAT, err)
	}

	if err := os.WriteFile(outputHDR, header.Format(cfg.grid), 0o644); err != nil {
		os.Remove(outputDAT)
		return err
	}

	fmt.Printf("Wrote %s and %s\n", outputDAT, outputHDR)
	return nil
}
