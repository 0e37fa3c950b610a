package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Op is an elementwise combination operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = 'x'
	OpDiv Op = '/'
)

// Errors returned by combine operations.
var (
	ErrUnknownOp      = errors.New("spectrum: unknown operator")
	ErrLengthMismatch = errors.New("spectrum: operand length mismatch")
)

// ParseOp maps a command-line operator token to an Op. Both "x" and "*"
// select multiplication.
func ParseOp(s string) (Op, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "x", "*":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Combine applies dst = dst <op> operand elementwise. Division inherits
// IEEE-754 behavior: a zero operand record yields Inf or NaN in dst.
func Combine(op Op, dst, operand []float64) error {
	if len(dst) != len(operand) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(dst), len(operand))
	}
	switch op {
	case OpAdd:
		for i, v := range operand {
			dst[i] += v
		}
	case OpSub:
		for i, v := range operand {
			dst[i] -= v
		}
	case OpMul:
		vecmath.MulBlockInPlace(dst, operand)
	case OpDiv:
		for i, v := range operand {
			dst[i] /= v
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, byte(op))
	}
	return nil
}
