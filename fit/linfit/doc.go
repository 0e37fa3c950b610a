// Package linfit solves weighted linear least-squares problems.
//
// Given an observation matrix X, observations y, and per-observation weights
// w, Fit minimizes the weighted sum of squared residuals and returns the
// coefficient vector together with its covariance matrix (XᵀWX)⁻¹. The
// resulting Model predicts new values with their estimation standard error,
// which makes it suitable as the backend for smoothing-basis fits.
package linfit
