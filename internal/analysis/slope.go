package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Orders holds the fitted log-log slopes of L2 error versus N for each
// field, negated so a first-order scheme reads as roughly +1.
type Orders struct {
	Rho float64
	A   float64
	V   float64
}

// FittedOrders least-squares fits log(error) against log(N) per field.
// Rows with zero error (the reference resolution compared against
// itself) carry no slope information and are skipped.
func FittedOrders(t Table) Orders {
	return Orders{
		Rho: fitOrder(t, func(r Row) float64 { return r.L2Rho }),
		A:   fitOrder(t, func(r Row) float64 { return r.L2A }),
		V:   fitOrder(t, func(r Row) float64 { return r.L2V }),
	}
}

func fitOrder(t Table, pick func(Row) float64) float64 {
	var logN, logE []float64
	for _, row := range t {
		e := pick(row)
		if e <= 0 {
			continue
		}
		logN = append(logN, math.Log(float64(row.N)))
		logE = append(logE, math.Log(e))
	}
	if len(logN) < 2 {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(logN, logE, nil, false)
	return -beta
}
