package main

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-fts/fts/spectrum"
)

func TestParseArgs(t *testing.T) {
	cfg, err := parseArgs([]string{"a.dat", "+", "b.dat", "out.dat"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cfg.first != "a.dat" || cfg.output != "out.dat" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.steps) != 1 || cfg.steps[0].op != spectrum.OpAdd || cfg.steps[0].path != "b.dat" {
		t.Fatalf("steps = %+v", cfg.steps)
	}
}

func TestParseArgsChain(t *testing.T) {
	cfg, err := parseArgs([]string{"a.dat", "x", "b.dat", "/", "c.dat", "out.dat"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if len(cfg.steps) != 2 {
		t.Fatalf("steps = %+v", cfg.steps)
	}
	if cfg.steps[0].op != spectrum.OpMul || cfg.steps[1].op != spectrum.OpDiv {
		t.Fatalf("ops = %c %c", cfg.steps[0].op, cfg.steps[1].op)
	}
	if cfg.steps[1].path != "c.dat" {
		t.Fatalf("second operand = %q", cfg.steps[1].path)
	}
}

func TestParseArgsRejectsBadInput(t *testing.T) {
	cases := [][]string{
		{},
		{"a.dat", "+", "out.dat"},          // missing operand
		{"a.dat", "+", "b.dat", "x", "out"}, // trailing operator
		{"a.dat", "?", "b.dat", "out.dat"},  // unknown operator
	}
	for _, args := range cases {
		if _, err := parseArgs(args); !errors.Is(err, errUsage) {
			t.Fatalf("args %v: err = %v, want usage error", args, err)
		}
	}
}
