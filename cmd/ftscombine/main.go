// Command ftscombine combines binary spectrum files elementwise.
//
// Usage:
//
//	ftscombine <file 1> <op> <file 2> [<op> <file 3> ...] <output>
//
// Each <op> is one of + - x (or *) and / for addition, subtraction,
// multiplication, and division. Every operand file must hold the same number
// of 32-bit float records as the first; the combined result is written to
// <output> in the same format. Division by a zero record yields Inf or NaN
// in the output, per IEEE-754.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/algo-fts/fts/spectrum"
)

var errUsage = errors.New("usage error")

type step struct {
	op   spectrum.Op
	path string
}

type config struct {
	first  string
	steps  []step
	output string
}

// parseArgs expects an even argument count of at least 4: operand files
// alternating with operators, then the output path.
func parseArgs(args []string) (config, error) {
	if len(args) < 4 {
		return config{}, fmt.Errorf("%w: too few arguments", errUsage)
	}
	if len(args)%2 != 0 {
		return config{}, fmt.Errorf("%w: operands and operators do not alternate", errUsage)
	}

	cfg := config{first: args[0], output: args[len(args)-1]}
	for i := 1; i < len(args)-1; i += 2 {
		op, err := spectrum.ParseOp(args[i])
		if err != nil {
			return config{}, fmt.Errorf("%w: argument %d: %v", errUsage, i+1, err)
		}
		cfg.steps = append(cfg.steps, step{op: op, path: args[i+1]})
	}
	return cfg, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: ftscombine <file 1> <op> <file 2> [<op> <file 3> ...] <output>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Combines binary spectrum files elementwise.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  <op>  one of + - x * or / applied record by record")
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
	result, err := loadRecords(cfg.first)
	if err != nil {
		return err
	}
	fmt.Printf("Read %d records from %s\n", len(result), cfg.first)

	acc := spectrum.Widen(result)
	for _, st := range cfg.steps {
		operand, err := loadRecords(st.path)
		if err != nil {
			return err
		}
		if len(operand) != len(result) {
			return fmt.Errorf("%s holds %d records, want %d as in %s",
				st.path, len(operand), len(result), cfg.first)
		}
		fmt.Printf("   %c %s\n", st.op, st.path)
		if err := spectrum.Combine(st.op, acc, spectrum.Widen(operand)); err != nil {
			return err
		}
	}

	out, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	if err := spectrum.Write(out, spectrum.Narrow(acc)); err != nil {
		out.Close()
		os.Remove(cfg.output)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(cfg.output)
		return fmt.Errorf("writing %s: %w", cfg.output, err)
	}

	fmt.Printf("Wrote the result to %s\n", cfg.output)
	return nil
}

func loadRecords(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return spectrum.ReadAll(f)
}
