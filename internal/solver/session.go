package solver

import "github.com/san-kum/actsim/internal/acto"

// Session is a stepping handle over one run: it owns the grid, the
// derived quantities and the current state, and advances one step at a
// time. The simulator and the live view both drive a Session.
type Session struct {
	grid    *acto.Grid
	params  acto.Params
	derived acto.Derived
	stepper *Stepper

	state       acto.State
	step        int
	t           float64
	initialMass float64
}

// NewSession validates the parameters, derives the time step and
// builds the initial condition. All parameter failures surface here,
// before any stepping.
func NewSession(p acto.Params) (*Session, error) {
	d, err := p.Derive()
	if err != nil {
		return nil, err
	}
	g, err := acto.NewGrid(p.N)
	if err != nil {
		return nil, err
	}

	state := g.InitialState()
	return &Session{
		grid:        g,
		params:      p,
		derived:     d,
		stepper:     NewStepper(g, p, d),
		state:       state,
		initialMass: g.Mass(state.Rho),
	}, nil
}

// Step advances one time step, swapping in the new triple atomically.
// Failures carry the step index and simulated time.
func (s *Session) Step() error {
	next, err := s.stepper.Step(s.state)
	if err != nil {
		return &acto.StepError{Step: s.step, Time: s.t, Wrapped: err}
	}
	if !next.IsValid() {
		return &acto.StepError{Step: s.step, Time: s.t, Wrapped: acto.ErrInvalidState}
	}
	s.state = next
	s.step++
	s.t += s.derived.Dt
	return nil
}

func (s *Session) Done() bool           { return s.step >= s.derived.Steps }
func (s *Session) State() acto.State    { return s.state }
func (s *Session) Grid() *acto.Grid     { return s.grid }
func (s *Session) Time() float64        { return s.t }
func (s *Session) StepCount() int       { return s.step }
func (s *Session) TotalSteps() int      { return s.derived.Steps }
func (s *Session) Dt() float64          { return s.derived.Dt }
func (s *Session) Pe() float64          { return s.derived.Pe }
func (s *Session) InitialMass() float64 { return s.initialMass }
func (s *Session) Mass() float64        { return s.grid.Mass(s.state.Rho) }
func (s *Session) BoundaryLeak() (float64, float64) {
	return s.stepper.BoundaryLeak(s.state)
}
