package solver

import (
	"context"

	"github.com/san-kum/actsim/internal/acto"
)

// Simulator runs one parameter set to its final time, feeding metrics
// and observers after every completed step.
type Simulator struct {
	params    acto.Params
	metrics   []acto.Metric
	observers []acto.Observer
}

func New(p acto.Params) *Simulator {
	return &Simulator{params: p}
}

func (s *Simulator) AddMetric(m acto.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o acto.Observer) { s.observers = append(s.observers, o) }

// Run executes the full step loop. There is no early stopping: the run
// ends after the derived number of steps, on the first step failure,
// or on context cancellation.
func (s *Simulator) Run(ctx context.Context) (*acto.Result, error) {
	sess, err := NewSession(s.params)
	if err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}
	s.notify(sess.State(), sess.Time())

	for !sess.Done() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := sess.Step(); err != nil {
			return nil, err
		}
		s.notify(sess.State(), sess.Time())
	}

	final := sess.State()
	res := &acto.Result{
		X:           sess.Grid().X.Clone(),
		Rho:         final.Rho.Clone(),
		A:           final.A.Clone(),
		V:           final.V.Clone(),
		Mass:        sess.Mass(),
		InitialMass: sess.InitialMass(),
		Steps:       sess.StepCount(),
		Dt:          sess.Dt(),
		Pe:          sess.Pe(),
		Metrics:     make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res, nil
}

func (s *Simulator) notify(st acto.State, t float64) {
	for _, m := range s.metrics {
		m.Observe(st, t)
	}
	for _, o := range s.observers {
		o.OnStep(st, t)
	}
}
