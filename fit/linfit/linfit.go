package linfit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by Fit.
var (
	ErrDimensionMismatch = errors.New("linfit: observation count does not match design matrix")
	ErrUnderdetermined   = errors.New("linfit: need more observations than parameters")
	ErrSingular          = errors.New("linfit: design matrix is numerically singular")
)

// Model is an immutable weighted least-squares solution.
type Model struct {
	coeffs []float64
	cov    *mat.SymDense
	chisq  float64
	tss    float64
	dof    int
}

// Fit solves the weighted linear least-squares problem min ||√W(y - Xc)||².
//
// w holds one non-negative weight per observation; a nil w means uniform
// weight 1.0. The covariance of the returned coefficients is (XᵀWX)⁻¹,
// which treats the weights as inverse observation variances.
func Fit(x *mat.Dense, y, w []float64) (*Model, error) {
	n, p := x.Dims()
	if len(y) != n || (w != nil && len(w) != n) {
		return nil, fmt.Errorf("%w (n=%d, len(y)=%d)", ErrDimensionMismatch, n, len(y))
	}
	if n <= p {
		return nil, fmt.Errorf("%w (%d observations, %d parameters)", ErrUnderdetermined, n, p)
	}

	// Bring the problem to standard form by scaling each row with √w.
	xw := mat.NewDense(n, p, nil)
	yw := mat.NewVecDense(n, nil)
	wsum := 0.0
	ymean := 0.0
	for i := 0; i < n; i++ {
		wi := 1.0
		if w != nil {
			wi = w[i]
		}
		s := math.Sqrt(wi)
		for j := 0; j < p; j++ {
			xw.Set(i, j, s*x.At(i, j))
		}
		yw.SetVec(i, s*y[i])
		wsum += wi
		ymean += wi * y[i]
	}
	ymean /= wsum

	var qr mat.QR
	qr.Factorize(xw)

	coeffs := mat.NewVecDense(p, nil)
	if err := qr.SolveVecTo(coeffs, false, yw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	// chisq = ||√W(y - Xc)||², tss = Σ w (y - ȳ)².
	resid := mat.NewVecDense(n, nil)
	resid.MulVec(xw, coeffs)
	resid.SubVec(yw, resid)
	chisq := mat.Dot(resid, resid)

	tss := 0.0
	for i := 0; i < n; i++ {
		wi := 1.0
		if w != nil {
			wi = w[i]
		}
		d := y[i] - ymean
		tss += wi * d * d
	}

	var xtx mat.SymDense
	xtx.SymOuterK(1, xw.T())

	var chol mat.Cholesky
	if ok := chol.Factorize(&xtx); !ok {
		return nil, ErrSingular
	}
	cov := mat.NewSymDense(p, nil)
	if err := chol.InverseTo(cov); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	m := &Model{
		coeffs: make([]float64, p),
		cov:    cov,
		chisq:  chisq,
		tss:    tss,
		dof:    n - p,
	}
	for j := 0; j < p; j++ {
		m.coeffs[j] = coeffs.AtVec(j)
	}
	return m, nil
}

// Len returns the number of fitted coefficients.
func (m *Model) Len() int { return len(m.coeffs) }

// Coeffs returns a copy of the coefficient vector.
func (m *Model) Coeffs() []float64 {
	out := make([]float64, len(m.coeffs))
	copy(out, m.coeffs)
	return out
}

// ChiSq returns the weighted sum of squared residuals.
func (m *Model) ChiSq() float64 { return m.chisq }

// Dof returns the degrees of freedom, observations minus parameters.
func (m *Model) Dof() int { return m.dof }

// RSquared returns 1 - chisq/tss. It is NaN when the observations carry no
// variance about their weighted mean.
func (m *Model) RSquared() float64 { return 1 - m.chisq/m.tss }

// Estimate predicts the model value bᵀc for a basis-value row b, together
// with its estimation standard error √(bᵀ·Cov·b). b must have Len entries.
func (m *Model) Estimate(b []float64) (value, stderr float64) {
	vb := mat.NewVecDense(len(b), b)
	vc := mat.NewVecDense(len(m.coeffs), m.coeffs)
	value = mat.Dot(vb, vc)
	stderr = math.Sqrt(mat.Inner(vb, m.cov, vb))
	return value, stderr
}
