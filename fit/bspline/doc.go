// Package bspline provides a cubic B-spline basis over uniform breakpoints.
//
// A Basis of n coefficients spans [xmin, xmax] with n-2 uniformly spaced
// breakpoints and order-4 (cubic) basis functions. The end knots carry full
// multiplicity, so the basis interpolates the boundary in the usual
// clamped-spline sense. Evaluating the basis at a point yields the row of a
// least-squares design matrix; at most four functions are nonzero at any
// point.
package bspline
