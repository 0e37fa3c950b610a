package bspline

import (
	"errors"
	"fmt"
	"sort"
)

// Order is the spline order (degree + 1). The basis is cubic.
const Order = 4

// Errors returned by basis construction and evaluation.
var (
	ErrTooFewCoeffs  = errors.New("bspline: basis needs at least 4 coefficients")
	ErrInvalidDomain = errors.New("bspline: domain lower bound must be less than upper bound")
	ErrOutOfDomain   = errors.New("bspline: evaluation point outside basis domain")
	ErrBadLength     = errors.New("bspline: destination length does not match coefficient count")
)

// Basis is an immutable cubic B-spline basis with uniform breakpoints.
type Basis struct {
	breaks []float64 // nbreak uniform breakpoints, including both domain ends
	knots  []float64 // breaks with end knots repeated to multiplicity Order
	n      int       // number of basis functions (coefficients)
}

// New builds a cubic basis of ncoeffs functions on [xmin, xmax].
//
// The number of breakpoints follows the standard relation
// nbreak = ncoeffs + 2 - Order, so ncoeffs must be at least 4.
func New(ncoeffs int, xmin, xmax float64) (*Basis, error) {
	if ncoeffs < Order {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewCoeffs, ncoeffs)
	}
	if !(xmin < xmax) {
		return nil, fmt.Errorf("%w [%g, %g]", ErrInvalidDomain, xmin, xmax)
	}

	nbreak := ncoeffs + 2 - Order
	breaks := make([]float64, nbreak)
	step := (xmax - xmin) / float64(nbreak-1)
	for i := range breaks {
		breaks[i] = xmin + float64(i)*step
	}
	breaks[nbreak-1] = xmax

	knots := make([]float64, ncoeffs+Order)
	for i := 0; i < Order; i++ {
		knots[i] = xmin
		knots[len(knots)-1-i] = xmax
	}
	copy(knots[Order:], breaks[1:nbreak-1])

	return &Basis{breaks: breaks, knots: knots, n: ncoeffs}, nil
}

// NumCoeffs returns the number of basis functions.
func (b *Basis) NumCoeffs() int { return b.n }

// Domain returns the interval the basis spans.
func (b *Basis) Domain() (xmin, xmax float64) {
	return b.breaks[0], b.breaks[len(b.breaks)-1]
}

// Contains reports whether x lies inside the basis domain, both ends
// inclusive.
func (b *Basis) Contains(x float64) bool {
	return x >= b.breaks[0] && x <= b.breaks[len(b.breaks)-1]
}

// Eval fills dst with the value of every basis function at x. dst must have
// length NumCoeffs. At most Order entries are nonzero; the rest are set to
// zero.
func (b *Basis) Eval(x float64, dst []float64) error {
	if len(dst) != b.n {
		return fmt.Errorf("%w (len %d, want %d)", ErrBadLength, len(dst), b.n)
	}
	if !b.Contains(x) {
		xmin, xmax := b.Domain()
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, x, xmin, xmax)
	}

	for i := range dst {
		dst[i] = 0
	}

	var nz [Order]float64
	first := b.evalNonzero(x, &nz)
	copy(dst[first:first+Order], nz[:])
	return nil
}

// segment returns the breakpoint segment index j such that x lies in
// [breaks[j], breaks[j+1]), with x == xmax assigned to the last segment.
func (b *Basis) segment(x float64) int {
	j := sort.SearchFloat64s(b.breaks, x)
	if j > 0 && (j == len(b.breaks) || b.breaks[j] != x) {
		j--
	}
	if j > len(b.breaks)-2 {
		j = len(b.breaks) - 2
	}
	return j
}

// evalNonzero computes the Order nonzero basis functions at x using the
// Cox-de Boor recursion and returns the index of the first one.
func (b *Basis) evalNonzero(x float64, out *[Order]float64) int {
	mu := b.segment(x) + Order - 1 // knot span [knots[mu], knots[mu+1])

	var left, right [Order]float64
	out[0] = 1
	for j := 1; j < Order; j++ {
		left[j] = x - b.knots[mu+1-j]
		right[j] = b.knots[mu+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := out[r] / (right[r+1] + left[j-r])
			out[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		out[j] = saved
	}

	return mu - (Order - 1)
}
