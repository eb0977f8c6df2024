package solver

import (
	"testing"

	"github.com/san-kum/actsim/internal/acto"
)

func benchSession(b *testing.B, n int) *Session {
	b.Helper()
	sess, err := NewSession(acto.Params{N: n, TFinal: 1e9, K: 0.0225, W: 0.5, Gamma: 0.5})
	if err != nil {
		b.Fatalf("session failed: %v", err)
	}
	return sess
}

func BenchmarkStepN50(b *testing.B) {
	sess := benchSession(b, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := sess.Step(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStepN200(b *testing.B) {
	sess := benchSession(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := sess.Step(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVelocitySolveN200(b *testing.B) {
	n := 200
	dx := 2.0 / float64(n-1)
	rho, a := testFields(n)
	e := NewVelocity(n, dx, 0.5)
	v := make(acto.Field, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := e.Solve(rho, a, v); err != nil {
			b.Fatal(err)
		}
	}
}
