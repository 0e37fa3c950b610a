package synth

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-fts/fts/header"
	"github.com/cwbudde/algo-fts/fts/spectrum"
)

// profile identifies one line-shape kernel. Lines sharing a profile are
// rendered with a single convolution pass.
type profile struct {
	width   float64
	damping float64
}

// Render draws every line onto the grid and returns the synthetic spectrum
// records.
//
// Line centers are distributed linearly between the two neighboring grid
// samples, so sub-sample positions keep their centroid. The stick comb of
// each distinct (width, damping) profile is convolved with a peak-normalized
// pseudo-Voigt kernel: a Gaussian of the given FWHM blended with a Lorentzian
// by the damping fraction. A non-positive width leaves the sticks unconvolved.
func Render(lines []Line, grid header.Grid) ([]float32, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	combs := make(map[profile][]float64)
	for _, l := range lines {
		pos := (l.Center - grid.Start) / grid.Spacing
		i0 := int(math.Floor(pos))
		frac := pos - float64(i0)

		p := profile{width: l.Width, damping: clamp01(l.Damping)}
		comb := combs[p]
		if comb == nil {
			comb = make([]float64, grid.Count)
			combs[p] = comb
		}
		if i0 >= 0 && i0 < grid.Count {
			comb[i0] += l.Peak * (1 - frac)
		}
		if i0+1 >= 0 && i0+1 < grid.Count {
			comb[i0+1] += l.Peak * frac
		}
	}

	out := make([]float64, grid.Count)
	for p, comb := range combs {
		kernel := p.kernel(grid.Spacing, grid.Count)
		if len(kernel) == 1 {
			for i, v := range comb {
				out[i] += v
			}
			continue
		}
		smeared, err := convolveCentered(comb, kernel)
		if err != nil {
			return nil, err
		}
		for i, v := range smeared {
			out[i] += v
		}
	}

	return spectrum.Narrow(out), nil
}

// kernel builds the symmetric, odd-length, peak-normalized profile kernel in
// grid-sample units. maxHalf bounds the half-width so extreme line widths
// cannot blow up the FFT size beyond the grid itself.
func (p profile) kernel(spacing float64, maxHalf int) []float64 {
	fwhm := p.width * 1e-3 / spacing // mK to cm⁻¹ to samples
	if fwhm <= 0 {
		return []float64{1}
	}

	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))
	gamma := fwhm / 2

	half := int(math.Ceil(6 * sigma))
	if p.damping > 0 {
		if lh := int(math.Ceil(25 * gamma)); lh > half {
			half = lh
		}
	}
	if half < 1 {
		half = 1
	}
	if half > maxHalf {
		half = maxHalf
	}

	kernel := make([]float64, 2*half+1)
	for t := -half; t <= half; t++ {
		ft := float64(t)
		g := math.Exp(-ft * ft / (2 * sigma * sigma))
		l := 1 / (1 + (ft/gamma)*(ft/gamma))
		kernel[t+half] = (1-p.damping)*g + p.damping*l
	}
	return kernel
}

// convolveCentered convolves signal with an odd-length kernel and returns the
// segment aligned with the signal, using a zero-padded FFT multiply.
func convolveCentered(signal, kernel []float64) ([]float64, error) {
	n := len(signal) + len(kernel) - 1
	size := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("synth: create FFT plan: %w", err)
	}

	sigFreq := make([]complex128, size)
	kerFreq := make([]complex128, size)

	padded := make([]complex128, size)
	for i, v := range signal {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(sigFreq, padded); err != nil {
		return nil, fmt.Errorf("synth: forward FFT: %w", err)
	}

	for i := range padded {
		padded[i] = 0
	}
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(kerFreq, padded); err != nil {
		return nil, fmt.Errorf("synth: forward FFT: %w", err)
	}

	for i := range sigFreq {
		sigFreq[i] *= kerFreq[i]
	}
	if err := plan.Inverse(padded, sigFreq); err != nil {
		return nil, fmt.Errorf("synth: inverse FFT: %w", err)
	}

	// The kernel peak sits at index (len(kernel)-1)/2, so the output segment
	// aligned with signal starts there.
	half := (len(kernel) - 1) / 2
	out := make([]float64, len(signal))
	for i := range out {
		out[i] = real(padded[i+half])
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
