package analysis

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
)

func baseStudy() *Study {
	return &Study{
		NList:  []int{20, 40, 60, 80, 100},
		TFinal: 10.0,
		K:      0.0225,
		W:      0.5,
		Gamma:  0.5,
	}
}

func TestStudyTableShape(t *testing.T) {
	g := NewWithT(t)

	table, err := baseStudy().Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(table).To(HaveLen(5))

	for i, row := range table {
		g.Expect(row.L2Rho).To(BeNumerically(">=", 0), "row %d", i)
		g.Expect(row.L2A).To(BeNumerically(">=", 0), "row %d", i)
		g.Expect(row.L2V).To(BeNumerically(">=", 0), "row %d", i)
		g.Expect(row.Mass).To(BeNumerically("~", 1.0, 0.05), "row %d", i)
		if i > 0 {
			g.Expect(row.N).To(BeNumerically(">", table[i-1].N), "table must sort ascending by N")
		}
	}
}

func TestStudyReferenceRowIsExact(t *testing.T) {
	g := NewWithT(t)

	table, err := baseStudy().Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())

	ref := table[len(table)-1]
	g.Expect(ref.N).To(Equal(100))
	g.Expect(ref.L2Rho).To(BeZero())
	g.Expect(ref.L2A).To(BeZero())
	g.Expect(ref.L2V).To(BeZero())
}

func TestStudyErrorsShrinkWithRefinement(t *testing.T) {
	g := NewWithT(t)

	table, err := baseStudy().Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())

	orders := FittedOrders(table)
	// first-order upwind: the fitted log-log slope must point downhill
	g.Expect(orders.Rho).To(BeNumerically(">", 0))
	g.Expect(orders.A).To(BeNumerically(">", 0))
	g.Expect(orders.V).To(BeNumerically(">", 0))
}

func TestStudyParallelMatchesSequential(t *testing.T) {
	g := NewWithT(t)

	st := baseStudy()
	st.NList = []int{20, 40, 60}
	st.TFinal = 2.0

	seq, err := st.Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())

	st.Parallel = true
	par, err := st.Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())

	// runs share no state, so the fan-out changes nothing observable
	g.Expect(par).To(Equal(seq))
}

func TestStudyEmptyNList(t *testing.T) {
	g := NewWithT(t)

	st := baseStudy()
	st.NList = nil
	_, err := st.Run(context.Background())
	g.Expect(err).To(HaveOccurred())
}

func TestStudyAbortsOnBadN(t *testing.T) {
	g := NewWithT(t)

	st := baseStudy()
	st.NList = []int{20, 2, 40}
	_, err := st.Run(context.Background())
	g.Expect(err).To(HaveOccurred())
}
