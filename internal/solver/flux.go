package solver

import "github.com/san-kum/actsim/internal/acto"

// Flux evaluates face-centered density fluxes: first-order upwind
// advection plus central diffusion scaled by 1/Pe. The two boundary
// faces are impermeable and carry exactly zero flux.
type Flux struct {
	Pe float64
	Dx float64

	faces []float64
}

func NewFlux(n int, pe, dx float64) *Flux {
	return &Flux{Pe: pe, Dx: dx, faces: make([]float64, n+1)}
}

// Faces returns the N+1 face fluxes for the current density and
// velocity. The returned slice is reused between calls.
func (f *Flux) Faces(rho, v acto.Field) []float64 {
	n := len(rho)
	f.faces[0] = 0
	f.faces[n] = 0
	for i := 1; i < n; i++ {
		vf := 0.5 * (v[i-1] + v[i])
		up := rho[i]
		if vf >= 0 {
			up = rho[i-1]
		}
		f.faces[i] = up*vf - (rho[i]-rho[i-1])/f.Dx/f.Pe
	}
	return f.faces
}

// Boundary estimates the flux that would cross each domain edge using
// second-order one-sided derivatives. The integrator forces both edge
// fluxes to zero; this estimate exists for reporting only and never
// feeds back into the update.
func (f *Flux) Boundary(rho, v acto.Field) (left, right float64) {
	n := len(rho)
	dL := (-3*rho[0] + 4*rho[1] - rho[2]) / (2 * f.Dx)
	dR := (3*rho[n-1] - 4*rho[n-2] + rho[n-3]) / (2 * f.Dx)
	left = v[0]*rho[0] - dL/f.Pe
	right = v[n-1]*rho[n-1] - dR/f.Pe
	return left, right
}
