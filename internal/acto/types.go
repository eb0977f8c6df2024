package acto

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Field is a cell-centered scalar field sampled on a Grid.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (f Field) MaxAbs() float64 {
	m := 0.0
	for _, v := range f {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

// State holds the full solver state at one instant: density, activity
// and velocity. The three fields always have the same length and are
// replaced together, never partially.
type State struct {
	Rho Field
	A   Field
	V   Field
}

func (s State) Clone() State {
	return State{Rho: s.Rho.Clone(), A: s.A.Clone(), V: s.V.Clone()}
}

func (s State) IsValid() bool {
	return s.Rho.IsValid() && s.A.IsValid() && s.V.IsValid()
}

// Grid is a uniform 1-D grid of cell centers spanning [-1, 1].
// Immutable once constructed.
type Grid struct {
	X  Field
	Dx float64
	N  int
}

func NewGrid(n int) (*Grid, error) {
	if n < MinGridSize {
		return nil, ErrGridSize
	}
	x := make(Field, n)
	dx := Domain / float64(n-1)
	for i := range x {
		x[i] = -1.0 + float64(i)*dx
	}
	return &Grid{X: x, Dx: dx, N: n}, nil
}

// Mass is the trapezoidal integral of rho over the grid.
func (g *Grid) Mass(rho Field) float64 {
	return integrate.Trapezoidal(g.X, rho)
}

// InitialState builds the t=0 state: a Gaussian density bump of width
// InitSigma normalized to unit mass, activity at one everywhere and
// velocity at rest.
func (g *Grid) InitialState() State {
	rho := make(Field, g.N)
	for i, x := range g.X {
		rho[i] = math.Exp(-x * x / (2 * InitSigma * InitSigma))
	}
	floats.Scale(1/g.Mass(rho), rho)

	a := make(Field, g.N)
	for i := range a {
		a[i] = 1.0
	}

	return State{Rho: rho, A: a, V: make(Field, g.N)}
}

// Metric accumulates a scalar diagnostic over the course of a run.
type Metric interface {
	Name() string
	Observe(s State, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every completed step with the full,
// already-swapped state triple.
type Observer interface {
	OnStep(s State, t float64)
}

// Result is the outcome of one simulation run.
type Result struct {
	X   Field
	Rho Field
	A   Field
	V   Field

	Mass        float64
	InitialMass float64
	Steps       int
	Dt          float64
	Pe          float64
	Metrics     map[string]float64
}
