package response

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-fts/fit/bspline"
	"github.com/cwbudde/algo-fts/fit/linfit"
)

// Model is an immutable fitted response curve: a cubic B-spline basis over
// the sampled domain together with least-squares coefficients and their
// covariance.
type Model struct {
	basis      *bspline.Basis
	fit        *linfit.Model
	xmin, xmax float64

	// Pooled scratch for basis rows so Eval stays allocation-free in steady
	// state and the Model can be shared across goroutines.
	rows sync.Pool
}

// Fit builds the cubic B-spline least-squares model of the samples using
// ncoeffs basis functions, all samples carrying uniform weight 1.0.
//
// The fit spans exactly [s.X[0], s.X[len-1]]. There must be strictly more
// samples than coefficients; an under-determined fit is a hard error.
func Fit(s Samples, ncoeffs int) (*Model, error) {
	if s.Len() == 0 {
		return nil, ErrNoSamples
	}
	if s.Len() <= ncoeffs {
		return nil, fmt.Errorf("%w (%d samples, %d coefficients)",
			ErrInsufficientSamples, s.Len(), ncoeffs)
	}

	xmin, xmax := s.Domain()
	basis, err := bspline.New(ncoeffs, xmin, xmax)
	if err != nil {
		return nil, err
	}

	n := s.Len()
	design := mat.NewDense(n, ncoeffs, nil)
	row := make([]float64, ncoeffs)
	for i := 0; i < n; i++ {
		if err := basis.Eval(s.X[i], row); err != nil {
			return nil, err
		}
		design.SetRow(i, row)
	}

	fit, err := linfit.Fit(design, s.Y, nil)
	if err != nil {
		return nil, err
	}

	m := &Model{basis: basis, fit: fit, xmin: xmin, xmax: xmax}
	m.rows.New = func() any {
		buf := make([]float64, ncoeffs)
		return &buf
	}
	return m, nil
}

// Domain returns the fitted interval.
func (m *Model) Domain() (xmin, xmax float64) { return m.xmin, m.xmax }

// NumCoeffs returns the number of spline coefficients.
func (m *Model) NumCoeffs() int { return m.basis.NumCoeffs() }

// Quality returns chi-square per degree of freedom and R² of the fit. Both
// are advisory diagnostics and never alter calibration behavior.
func (m *Model) Quality() (chiSqPerDof, rsq float64) {
	return m.fit.ChiSq() / float64(m.fit.Dof()), m.fit.RSquared()
}

// Eval returns the fitted response and its estimation standard error at x.
// ok is false when x lies outside the fitted domain; the returned values are
// zero in that case.
func (m *Model) Eval(x float64) (value, stderr float64, ok bool) {
	if x < m.xmin || x > m.xmax {
		return 0, 0, false
	}
	row := m.rows.Get().(*[]float64)
	// Contains already held, so Eval cannot fail on domain; a length error
	// is impossible for pooled rows.
	_ = m.basis.Eval(x, *row)
	value, stderr = m.fit.Estimate(*row)
	m.rows.Put(row)
	return value, stderr, true
}
