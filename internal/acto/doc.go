// Package acto provides the core primitives of the 1-D actomyosin
// network model.
//
// The model couples three fields on a uniform grid over [-1, 1]:
//
//   - [State].Rho: motor density, advected and diffused, mass-conserving
//   - [State].A: activity, advected and relaxing toward one
//   - [State].V: velocity, resolved each step from a force balance
//
// The package defines the shared types ([Field], [State], [Grid],
// [Params]) together with the derivation of the dimensionless numbers
// and the stable time step. The stepping machinery lives in the solver
// package; convergence analysis in the analysis package.
package acto
