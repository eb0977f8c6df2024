package solver

import (
	"math"
	"testing"

	"github.com/san-kum/actsim/internal/acto"
)

func testFields(n int) (rho, a acto.Field) {
	rho = make(acto.Field, n)
	a = make(acto.Field, n)
	for i := range rho {
		x := -1.0 + 2.0*float64(i)/float64(n-1)
		rho[i] = math.Exp(-x * x / 0.045)
		a[i] = 0.5 + 0.5*math.Cos(x)
	}
	return rho, a
}

func TestVelocitySolveResidual(t *testing.T) {
	n := 16
	dx := 2.0 / float64(n-1)
	gamma := 0.5
	rho, a := testFields(n)

	e := NewVelocity(n, dx, gamma)
	v := make(acto.Field, n)
	if err := e.Solve(rho, a, v); err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	dl, d, du, rhs := e.Coefficients(rho, a)
	for i := 0; i < n; i++ {
		got := d[i] * v[i]
		if i > 0 {
			got += dl[i-1] * v[i-1]
		}
		if i < n-1 {
			got += du[i] * v[i+1]
		}
		if math.Abs(got-rhs[i]) > 1e-9*math.Abs(d[i]) {
			t.Errorf("row %d residual too large: M*V=%.12f, rhs=%.12f", i, got, rhs[i])
		}
	}
}

func TestVelocityBoundaryRows(t *testing.T) {
	n := 8
	dx := 0.25
	gamma := 0.7
	rho, a := testFields(n)

	e := NewVelocity(n, dx, gamma)
	dl, d, du, rhs := e.Coefficients(rho, a)

	inv2 := 1 / (dx * dx)

	if math.Abs(d[0]-(-2*inv2-gamma*a[0])) > 1e-12 {
		t.Errorf("left diagonal: got %.8f", d[0])
	}
	if math.Abs(du[0]-2*inv2) > 1e-12 {
		t.Errorf("left off-diagonal: got %.8f", du[0])
	}
	wantRHS := -(-3*rho[0]+4*rho[1]-rho[2])/(2*dx) - 2*rho[0]/dx
	if math.Abs(rhs[0]-wantRHS) > 1e-12 {
		t.Errorf("left rhs: expected %.8f, got %.8f", wantRHS, rhs[0])
	}

	if math.Abs(d[n-1]-(-2*inv2-gamma*a[n-1])) > 1e-12 {
		t.Errorf("right diagonal: got %.8f", d[n-1])
	}
	if math.Abs(dl[n-2]-2*inv2) > 1e-12 {
		t.Errorf("right off-diagonal: got %.8f", dl[n-2])
	}
	wantRHS = -(3*rho[n-1]-4*rho[n-2]+rho[n-3])/(2*dx) + 2*rho[n-1]/dx
	if math.Abs(rhs[n-1]-wantRHS) > 1e-12 {
		t.Errorf("right rhs: expected %.8f, got %.8f", wantRHS, rhs[n-1])
	}

	// interior row spot check
	if math.Abs(d[3]-(-2*inv2-gamma*a[3])) > 1e-12 || math.Abs(dl[2]-inv2) > 1e-12 || math.Abs(du[3]-inv2) > 1e-12 {
		t.Error("interior row coefficients wrong")
	}
}

func TestVelocityDampedByActivity(t *testing.T) {
	n := 32
	dx := 2.0 / float64(n-1)
	rho, _ := testFields(n)

	weak := make(acto.Field, n)
	strong := make(acto.Field, n)
	for i := range weak {
		weak[i] = 0.1
		strong[i] = 10.0
	}

	vWeak := make(acto.Field, n)
	vStrong := make(acto.Field, n)
	if err := NewVelocity(n, dx, 1.0).Solve(rho, weak, vWeak); err != nil {
		t.Fatalf("weak solve failed: %v", err)
	}
	if err := NewVelocity(n, dx, 1.0).Solve(rho, strong, vStrong); err != nil {
		t.Fatalf("strong solve failed: %v", err)
	}

	if vStrong.MaxAbs() >= vWeak.MaxAbs() {
		t.Errorf("stronger activity damping should shrink velocity: %.6f vs %.6f",
			vStrong.MaxAbs(), vWeak.MaxAbs())
	}
}
