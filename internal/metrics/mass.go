package metrics

import (
	"math"

	"github.com/san-kum/actsim/internal/acto"
)

// Mass tracks the trapezoidal integral of the density over the grid.
// Its value is the most recently observed mass.
type Mass struct {
	name string
	grid *acto.Grid
	last float64
	seen bool
}

func NewMass(g *acto.Grid) *Mass {
	return &Mass{name: "mass", grid: g}
}

func (m *Mass) Name() string { return m.name }

func (m *Mass) Observe(s acto.State, t float64) {
	m.last = m.grid.Mass(s.Rho)
	m.seen = true
}

func (m *Mass) Value() float64 {
	if !m.seen {
		return 0
	}
	return m.last
}

func (m *Mass) Reset() {
	m.last = 0
	m.seen = false
}

// MassDrift tracks the largest relative deviation of the density mass
// from its initial value. Boundary fluxes are forced to zero, so drift
// beyond discretization noise points at a stepping bug.
type MassDrift struct {
	name     string
	grid     *acto.Grid
	initial  float64
	maxDrift float64
	samples  int
}

func NewMassDrift(g *acto.Grid) *MassDrift {
	return &MassDrift{name: "mass_drift", grid: g}
}

func (m *MassDrift) Name() string { return m.name }

func (m *MassDrift) Observe(s acto.State, t float64) {
	mass := m.grid.Mass(s.Rho)
	if m.samples == 0 {
		m.initial = mass
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(mass-m.initial) / math.Abs(m.initial)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MassDrift) Value() float64 {
	return m.maxDrift
}

func (m *MassDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
