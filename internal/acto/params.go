package acto

import (
	"math"
)

// Physical constants of the actomyosin model. The domain is fixed to
// [-1, 1]; the remaining constants set the advective and diffusive
// scales from which the Peclet number and the stable time step derive.
const (
	Domain    = 2.0  // length of [-1, 1]
	Rho0      = 1.0  // reference density
	Diffusion = 0.05 // motor diffusivity D
	Length    = 2.0  // characteristic length L
	Alpha     = 10.0 // contractile coupling per unit density
	Mu0       = 2.0  // reference viscosity
	Drag      = 1.0  // substrate friction S

	InitSigma = 0.15 // width of the initial density bump

	MinGridSize = 3
	MinDt       = 1e-6

	// Safety divisor applied to the smaller of the convective and
	// diffusive step limits.
	dtSafety = 5.0
)

// Params bundles everything one run needs. Immutable for the duration
// of a run.
type Params struct {
	N      int     // grid size
	TFinal float64 // final simulated time
	K      float64 // reaction rate, sets the Peclet number
	W      float64 // activity relaxation rate
	Gamma  float64 // activity-velocity coupling strength
}

// Derived holds the quantities computed from Params before stepping
// begins.
type Derived struct {
	Dx    float64
	Pe    float64
	Dt    float64
	Steps int
}

// Peclet is the ratio of advective to diffusive transport,
// k*rho0*L^2*alpha / (mu0*S*D).
func (p Params) Peclet() float64 {
	return p.K * Rho0 * Length * Length * Alpha / (Mu0 * Drag * Diffusion)
}

// Derive validates the parameter set and computes the grid spacing,
// Peclet number, time step and step count. A derived dt below MinDt
// means the combination is numerically unstable at this resolution and
// is rejected outright.
func (p Params) Derive() (Derived, error) {
	if p.N < MinGridSize {
		return Derived{}, ErrGridSize
	}
	dx := Domain / float64(p.N-1)

	speed := p.K * Rho0 * Length * Alpha / (Mu0 * Drag)
	dtConv := dx / speed
	dtDiff := dx * dx / (2 * Diffusion)

	dt := math.Min(dtConv, dtDiff) / dtSafety
	if dt < MinDt {
		return Derived{}, ErrUnstableParams
	}

	return Derived{
		Dx:    dx,
		Pe:    p.Peclet(),
		Dt:    dt,
		Steps: int(math.Round(p.TFinal / dt)),
	}, nil
}
