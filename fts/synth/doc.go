// Package synth renders synthetic line spectra onto a uniform wavenumber
// grid.
//
// Input is a SYN-format line list: one record per spectral line carrying the
// line center, width, peak and damping. Rendering places peak-weighted sticks
// on the grid and convolves them with the line-profile kernel through a
// zero-padded FFT multiply. Synthetic spectra are useful as calibration
// test inputs and for comparing observed spectra against predicted line
// positions.
package synth
