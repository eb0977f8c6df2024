package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"

	"github.com/san-kum/actsim/internal/acto"
	"github.com/san-kum/actsim/internal/solver"
)

// Row is one line of a convergence table: L2 errors of the three
// fields against the reference solution, plus the trapezoidal mass of
// the run's own density as a conservation diagnostic.
type Row struct {
	N     int
	L2Rho float64
	L2A   float64
	L2V   float64
	Mass  float64
}

// Table is a convergence table sorted ascending by N. Built once per
// parameter set and never mutated afterwards.
type Table []Row

// Study drives the integrator across a range of grid sizes and reduces
// the runs to a Table. The finest grid serves as the reference
// solution; coarser results are linearly interpolated onto its
// coordinates before the L2 norm is taken.
type Study struct {
	NList  []int
	TFinal float64
	K      float64
	W      float64
	Gamma  float64

	// Parallel fans the independent runs out across goroutines. The
	// runs share no state, so the table is identical either way.
	Parallel bool
}

func (st *Study) params(n int) acto.Params {
	return acto.Params{N: n, TFinal: st.TFinal, K: st.K, W: st.W, Gamma: st.Gamma}
}

// Run executes the full study. A failure in any requested N aborts the
// study; no partial tables are returned.
func (st *Study) Run(ctx context.Context) (Table, error) {
	if len(st.NList) == 0 {
		return nil, fmt.Errorf("analysis: empty grid size list")
	}

	results, err := st.runAll(ctx)
	if err != nil {
		return nil, err
	}

	finest := 0
	for i, n := range st.NList {
		if n > st.NList[finest] {
			finest = i
		}
	}
	ref := results[finest]

	table := make(Table, 0, len(st.NList))
	for i, res := range results {
		row := Row{
			N:    st.NList[i],
			Mass: integrate.Trapezoidal(res.X, res.Rho),
		}
		if i == finest {
			// The reference compared against itself is exact.
			table = append(table, row)
			continue
		}
		if row.L2Rho, err = l2Against(ref.X, ref.Rho, res.X, res.Rho); err != nil {
			return nil, err
		}
		if row.L2A, err = l2Against(ref.X, ref.A, res.X, res.A); err != nil {
			return nil, err
		}
		if row.L2V, err = l2Against(ref.X, ref.V, res.X, res.V); err != nil {
			return nil, err
		}
		table = append(table, row)
	}

	sort.Slice(table, func(i, j int) bool { return table[i].N < table[j].N })
	return table, nil
}

func (st *Study) runAll(ctx context.Context) ([]*acto.Result, error) {
	results := make([]*acto.Result, len(st.NList))

	if !st.Parallel {
		for i, n := range st.NList {
			res, err := solver.New(st.params(n)).Run(ctx)
			if err != nil {
				return nil, fmt.Errorf("analysis: run at N=%d: %w", n, err)
			}
			results[i] = res
		}
		return results, nil
	}

	errs := make([]error, len(st.NList))
	var wg sync.WaitGroup
	for i, n := range st.NList {
		wg.Add(1)
		go func(idx, n int) {
			defer wg.Done()
			results[idx], errs[idx] = solver.New(st.params(n)).Run(ctx)
		}(i, n)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("analysis: run at N=%d: %w", st.NList[i], err)
		}
	}
	return results, nil
}

// l2Against interpolates y from grid x onto xRef and returns
// sqrt(trapz((yRef - y)^2)) over xRef.
func l2Against(xRef, yRef, x, y acto.Field) (float64, error) {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(x, y); err != nil {
		return 0, fmt.Errorf("analysis: interpolation: %w", err)
	}
	sq := make([]float64, len(xRef))
	for i, xr := range xRef {
		d := yRef[i] - pl.Predict(xr)
		sq[i] = d * d
	}
	return math.Sqrt(integrate.Trapezoidal(xRef, sq)), nil
}
