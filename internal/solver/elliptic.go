package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/actsim/internal/acto"
)

// Velocity solves the force-balance system M*V = C each step: a second
// difference of V damped by gamma*a on the diagonal, driven by the
// density gradient. The system is tridiagonal, so it is assembled in
// banded form and handed to a direct tridiagonal solve.
type Velocity struct {
	n     int
	dx    float64
	gamma float64

	dl, d, du []float64
	rhs       []float64
	sol       *mat.VecDense
}

func NewVelocity(n int, dx, gamma float64) *Velocity {
	return &Velocity{
		n:     n,
		dx:    dx,
		gamma: gamma,
		dl:    make([]float64, n-1),
		d:     make([]float64, n),
		du:    make([]float64, n-1),
		rhs:   make([]float64, n),
		sol:   mat.NewVecDense(n, nil),
	}
}

func (e *Velocity) assemble(rho, a acto.Field) {
	n, dx := e.n, e.dx
	inv2 := 1 / (dx * dx)

	for i := 1; i < n-1; i++ {
		e.dl[i-1] = inv2
		e.du[i] = inv2
		e.d[i] = -2*inv2 - e.gamma*a[i]
		e.rhs[i] = -(rho[i+1] - rho[i-1]) / (2 * dx)
	}

	// Boundary rows: ghost points eliminated through the Robin closure.
	// The right-hand side pairs a one-sided derivative of rho with the
	// first-order 2*rho/dx term; both rows must keep these coefficients
	// exactly, they encode the model's boundary physics.
	e.d[0] = -2*inv2 - e.gamma*a[0]
	e.du[0] = 2 * inv2
	e.rhs[0] = -(-3*rho[0]+4*rho[1]-rho[2])/(2*dx) - 2*rho[0]/dx

	e.d[n-1] = -2*inv2 - e.gamma*a[n-1]
	e.dl[n-2] = 2 * inv2
	e.rhs[n-1] = -(3*rho[n-1]-4*rho[n-2]+rho[n-3])/(2*dx) + 2*rho[n-1]/dx
}

// Solve assembles the system for the given density and activity and
// writes the velocity into dst. A singular or ill-conditioned system
// fails with acto.ErrLinearSolve rather than propagating NaNs.
func (e *Velocity) Solve(rho, a acto.Field, dst acto.Field) error {
	e.assemble(rho, a)

	tri := mat.NewTridiag(e.n, e.dl, e.d, e.du)
	b := mat.NewVecDense(e.n, e.rhs)
	if err := tri.SolveVecTo(e.sol, false, b); err != nil {
		return fmt.Errorf("%w: %v", acto.ErrLinearSolve, err)
	}

	copy(dst, e.sol.RawVector().Data)
	if !dst.IsValid() {
		return fmt.Errorf("%w: non-finite velocity", acto.ErrLinearSolve)
	}
	return nil
}

// Coefficients exposes the assembled bands and right-hand side for the
// given fields. Used by diagnostics and tests; Solve remains the only
// consumer inside the step loop.
func (e *Velocity) Coefficients(rho, a acto.Field) (dl, d, du, rhs []float64) {
	e.assemble(rho, a)
	return e.dl, e.d, e.du, e.rhs
}
