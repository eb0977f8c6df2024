// Package analysis quantifies grid-refinement convergence of the
// solver. A [Study] runs the integrator at several resolutions,
// interpolates each result onto the finest grid and reduces the sweep
// to a [Table] of L2 errors and mass diagnostics, from which
// [FittedOrders] estimates the observed order of accuracy.
package analysis
