package metrics

import (
	"math"

	"github.com/san-kum/actsim/internal/acto"
	"github.com/san-kum/actsim/internal/solver"
)

// BoundaryLeak tracks the largest one-sided boundary flux estimate
// seen over a run. The integrator pins the boundary faces to zero; the
// estimate reports how much flux the fields would push through the
// edges if they were open.
type BoundaryLeak struct {
	name string
	flux *solver.Flux
	max  float64
}

func NewBoundaryLeak(g *acto.Grid, pe float64) *BoundaryLeak {
	return &BoundaryLeak{name: "boundary_leak", flux: solver.NewFlux(g.N, pe, g.Dx)}
}

func (b *BoundaryLeak) Name() string { return b.name }

func (b *BoundaryLeak) Observe(s acto.State, t float64) {
	left, right := b.flux.Boundary(s.Rho, s.V)
	b.max = math.Max(b.max, math.Max(math.Abs(left), math.Abs(right)))
}

func (b *BoundaryLeak) Value() float64 { return b.max }

func (b *BoundaryLeak) Reset() { b.max = 0 }
