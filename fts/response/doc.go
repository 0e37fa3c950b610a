// Package response loads instrument response samples and fits them with a
// smooth cubic B-spline model.
//
// A response function is the wavenumber-dependent sensitivity of the
// spectrometer, normalized to a peak of 1 and known only at a finite set of
// sample points. Fit produces an immutable Model that re-samples the response
// at arbitrary wavenumbers inside the sampled domain, along with the local
// estimation error of the fit. Generate derives a fresh response function
// from a standard-lamp measurement and the lamp's calibrated spectral
// radiance.
package response
