package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fts/internal/testutil"
)

// rampSamples builds n samples of f over [x0, x1] in ascending order.
func rampSamples(n int, x0, x1 float64, f func(float64) float64) Samples {
	s := Samples{X: make([]float64, n), Y: make([]float64, n)}
	step := (x1 - x0) / float64(n-1)
	for i := range s.X {
		s.X[i] = x0 + float64(i)*step
		s.Y[i] = f(s.X[i])
	}
	s.X[n-1] = x1
	s.Y[n-1] = f(x1)
	return s
}

func TestFitInsufficientSamples(t *testing.T) {
	s := rampSamples(10, 0, 1, func(float64) float64 { return 1 })
	if _, err := Fit(s, 10); !errors.Is(err, ErrInsufficientSamples) {
		t.Fatalf("n == ncoeffs: err = %v, want ErrInsufficientSamples", err)
	}
	if _, err := Fit(s, 12); !errors.Is(err, ErrInsufficientSamples) {
		t.Fatalf("n < ncoeffs: err = %v, want ErrInsufficientSamples", err)
	}
	if _, err := Fit(Samples{}, 4); !errors.Is(err, ErrNoSamples) {
		t.Fatalf("empty: err = %v, want ErrNoSamples", err)
	}
}

func TestFitConstantResponse(t *testing.T) {
	s := rampSamples(25, 0, 24, func(float64) float64 { return 1 })
	m, err := Fit(s, 4)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	xmin, xmax := m.Domain()
	if xmin != 0 || xmax != 24 {
		t.Fatalf("Domain = [%v, %v], want [0, 24]", xmin, xmax)
	}
	if m.NumCoeffs() != 4 {
		t.Fatalf("NumCoeffs = %d, want 4", m.NumCoeffs())
	}

	for _, x := range []float64{0, 3.7, 12, 19.9, 24} {
		value, stderr, ok := m.Eval(x)
		if !ok {
			t.Fatalf("Eval(%g): outside domain", x)
		}
		testutil.RequireNear(t, value, 1, 1e-6)
		if math.IsNaN(stderr) || stderr < 0 {
			t.Fatalf("Eval(%g): stderr = %v", x, stderr)
		}
	}
}

func TestFitLinearResponse(t *testing.T) {
	// Cubic splines contain linear functions, so the fit is exact up to
	// conditioning.
	f := func(x float64) float64 { return 2*x + 1 }
	s := rampSamples(30, 1, 5, f)
	m, err := Fit(s, 6)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for _, x := range []float64{1, 2.2, 3.14, 5} {
		value, _, ok := m.Eval(x)
		if !ok {
			t.Fatalf("Eval(%g): outside domain", x)
		}
		testutil.RequireNear(t, value, f(x), 1e-7)
	}

	chiSqPerDof, rsq := m.Quality()
	if chiSqPerDof > 1e-12 {
		t.Fatalf("chisq/dof = %v, want ~0", chiSqPerDof)
	}
	testutil.RequireNear(t, rsq, 1, 1e-9)
}

func TestEvalOutsideDomain(t *testing.T) {
	s := rampSamples(20, 10, 20, func(float64) float64 { return 1 })
	m, err := Fit(s, 4)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for _, x := range []float64{9.999, 20.001, -5, 100} {
		if value, stderr, ok := m.Eval(x); ok || value != 0 || stderr != 0 {
			t.Fatalf("Eval(%g) = (%v, %v, %v), want (0, 0, false)", x, value, stderr, ok)
		}
	}
}

func TestGenerateFlatResponse(t *testing.T) {
	// A lamp whose intensity exactly cancels the sigma^3 photon factor
	// against a flat radiance yields a response of 1 everywhere in domain.
	const radianceValue = 2.0
	radiance := rampSamples(31, 400, 700, func(float64) float64 {
		return math.Log(radianceValue)
	})
	logModel, err := Fit(radiance, 4)
	if err != nil {
		t.Fatalf("Fit radiance: %v", err)
	}

	lamp := rampSamples(20, 15000, 24000, func(sigma float64) float64 {
		return radianceValue / (sigma * sigma * sigma)
	})
	// One extra sample whose wavelength (350 nm) falls outside the radiance
	// domain; it must be kept with a zero response.
	lamp.X = append(lamp.X, 1e7/350)
	lamp.Y = append(lamp.Y, 1)

	got := Generate(lamp, logModel)
	if got.Len() != lamp.Len() {
		t.Fatalf("Len = %d, want %d", got.Len(), lamp.Len())
	}
	for i := 0; i < 20; i++ {
		if got.X[i] != lamp.X[i] {
			t.Fatalf("X[%d] changed: %v != %v", i, got.X[i], lamp.X[i])
		}
		testutil.RequireNear(t, got.Y[i], 1, 1e-6)
	}
	if got.Y[20] != 0 {
		t.Fatalf("out-of-domain response = %v, want 0", got.Y[20])
	}
}
