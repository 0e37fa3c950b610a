package response

import "math"

// wavenumber (cm⁻¹) to vacuum wavelength (nm)
const nmPerKayser = 1e7

// Generate derives a normalized response function from a measured
// standard-lamp spectrum and a model of the lamp's log spectral radiance.
//
// lamp holds the measured lamp line spectrum as (wavenumber, intensity)
// pairs. logRadiance is a Model fitted to (vacuum wavelength in nm,
// log radiance) calibration data. For every lamp sample inside the radiance
// domain the response is
//
//	r(σ) = σ³ · I(σ) / exp(fit(1e7/σ))
//
// following the photon-flux convention; samples whose
// wavelength falls outside that domain are kept with a zero response. The
// result is scaled so its largest value is 1.
func Generate(lamp Samples, logRadiance *Model) Samples {
	out := Samples{
		X: make([]float64, lamp.Len()),
		Y: make([]float64, lamp.Len()),
	}
	ymax := 0.0
	for i := range lamp.X {
		sigma := lamp.X[i]
		out.X[i] = sigma

		wavelength := nmPerKayser / sigma
		logRad, _, ok := logRadiance.Eval(wavelength)
		if !ok {
			continue
		}
		y := sigma * sigma * sigma * lamp.Y[i] / math.Exp(logRad)
		out.Y[i] = y
		if y > ymax {
			ymax = y
		}
	}
	if ymax > 0 {
		for i := range out.Y {
			out.Y[i] /= ymax
		}
	}
	return out
}
