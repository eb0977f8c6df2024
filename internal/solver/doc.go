// Package solver implements the time-stepping core of the actomyosin
// model: upwind face fluxes for the density, the tridiagonal
// force-balance solve for the velocity, and the per-step orchestration
// that keeps the (rho, a, V) triple consistent.
//
// A typical run:
//
//	sim := solver.New(acto.Params{N: 100, TFinal: 10, K: 0.0225, W: 0.5, Gamma: 0.5})
//	res, err := sim.Run(ctx)
//
// For step-at-a-time control (live views, custom loops) use [Session]
// directly.
package solver
