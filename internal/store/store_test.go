package store

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/actsim/internal/acto"
	"github.com/san-kum/actsim/internal/analysis"
)

func sampleResult() *acto.Result {
	return &acto.Result{
		X:           acto.Field{-1, 0, 1},
		Rho:         acto.Field{0.1, 0.8, 0.1},
		A:           acto.Field{0, 1, 0},
		V:           acto.Field{0.05, 0, -0.05},
		Mass:        0.9,
		InitialMass: 1.0,
		Steps:       42,
		Dt:          0.01,
		Pe:          9.0,
		Metrics:     map[string]float64{"mass_drift": 0.001},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p := acto.Params{N: 3, TFinal: 1.0, K: 0.0225, W: 0.5, Gamma: 0.5}
	runID, err := st.Save(p, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.N != 3 || meta.K != 0.0225 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Metrics["mass_drift"] != 0.001 {
		t.Errorf("metrics not persisted: %+v", meta.Metrics)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreLoadFields(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	res := sampleResult()
	p := acto.Params{N: 3, TFinal: 1.0, K: 0.0225, W: 0.5, Gamma: 0.5}
	runID, err := st.Save(p, res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	x, rho, a, v, err := st.LoadFields(runID)
	if err != nil {
		t.Fatalf("load fields failed: %v", err)
	}
	if len(x) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(x))
	}
	for i := range x {
		if math.Abs(rho[i]-res.Rho[i]) > 1e-6 || math.Abs(a[i]-res.A[i]) > 1e-6 || math.Abs(v[i]-res.V[i]) > 1e-6 {
			t.Errorf("row %d mismatch", i)
		}
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestWriteTableCSV(t *testing.T) {
	table := analysis.Table{
		{N: 20, L2Rho: 0.01, L2A: 0.02, L2V: 0.003, Mass: 0.999},
		{N: 40, L2Rho: 0.005, L2A: 0.01, L2V: 0.001, Mass: 1.0},
	}

	var buf bytes.Buffer
	if err := WriteTableCSV(&buf, table); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "n,l2_rho,l2_a,l2_v,mass" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "20,") || !strings.HasPrefix(lines[2], "40,") {
		t.Error("rows out of order or malformed")
	}
}
