package solver

import "github.com/san-kum/actsim/internal/acto"

// Stepper advances the coupled (rho, a, V) state by one time step.
//
// The order inside a step is fixed: the velocity is solved from the
// previous density and activity, then activity and density both update
// against that freshly solved velocity, never against each other's new
// values.
type Stepper struct {
	grid *acto.Grid
	dt   float64
	w    float64

	flux *Flux
	vel  *Velocity
}

func NewStepper(g *acto.Grid, p acto.Params, d acto.Derived) *Stepper {
	return &Stepper{
		grid: g,
		dt:   d.Dt,
		w:    p.W,
		flux: NewFlux(g.N, d.Pe, d.Dx),
		vel:  NewVelocity(g.N, d.Dx, p.Gamma),
	}
}

// Step computes the next state as a fresh triple. The input state is
// left untouched so callers observe either the old triple or the new
// one, never a mix.
func (st *Stepper) Step(s acto.State) (acto.State, error) {
	n := st.grid.N
	dx := st.grid.Dx

	v := make(acto.Field, n)
	if err := st.vel.Solve(s.Rho, s.A, v); err != nil {
		return acto.State{}, err
	}

	// Activity: upwind convection with the new velocity plus linear
	// relaxation toward one. Boundary values stay pinned to zero.
	aNew := make(acto.Field, n)
	for i := 1; i < n-1; i++ {
		var conv float64
		if v[i] >= 0 {
			conv = v[i] * (s.A[i] - s.A[i-1]) / dx
		} else {
			conv = v[i] * (s.A[i+1] - s.A[i]) / dx
		}
		aNew[i] = s.A[i] - st.dt*conv + st.dt*st.w*(1-s.A[i])
	}

	// Density: conservative finite-volume update from face fluxes.
	faces := st.flux.Faces(s.Rho, v)
	rhoNew := make(acto.Field, n)
	r := st.dt / dx
	for i := 0; i < n; i++ {
		rhoNew[i] = s.Rho[i] - r*(faces[i+1]-faces[i])
	}

	return acto.State{Rho: rhoNew, A: aNew, V: v}, nil
}

// BoundaryLeak reports the diagnostic one-sided boundary flux
// estimates for a state. Informational only.
func (st *Stepper) BoundaryLeak(s acto.State) (left, right float64) {
	return st.flux.Boundary(s.Rho, s.V)
}
