package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/actsim/internal/acto"
)

// Store persists runs under a base directory: one subdirectory per run
// with a metadata.json and the final fields as fields.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	N           int                `json:"n"`
	TFinal      float64            `json:"t_final"`
	K           float64            `json:"k"`
	W           float64            `json:"w"`
	Gamma       float64            `json:"gamma"`
	Dt          float64            `json:"dt"`
	Pe          float64            `json:"pe"`
	Steps       int                `json:"steps"`
	Mass        float64            `json:"mass"`
	InitialMass float64            `json:"initial_mass"`
	Metrics     map[string]float64 `json:"metrics"`
}

func (s *Store) Save(p acto.Params, result *acto.Result) (string, error) {
	runID := fmt.Sprintf("n%d_%d", p.N, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		N:           p.N,
		TFinal:      p.TFinal,
		K:           p.K,
		W:           p.W,
		Gamma:       p.Gamma,
		Dt:          result.Dt,
		Pe:          result.Pe,
		Steps:       result.Steps,
		Mass:        result.Mass,
		InitialMass: result.InitialMass,
		Metrics:     result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "fields.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "rho", "a", "v"}); err != nil {
		return "", err
	}
	for i := range result.X {
		row := []string{
			strconv.FormatFloat(result.X[i], 'f', 6, 64),
			strconv.FormatFloat(result.Rho[i], 'f', 6, 64),
			strconv.FormatFloat(result.A[i], 'f', 6, 64),
			strconv.FormatFloat(result.V[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadFields reads back the stored x, rho, a, v columns for a run.
func (s *Store) LoadFields(runID string) (x, rho, a, v acto.Field, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "fields.csv"))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if len(records) < 2 {
		return acto.Field{}, acto.Field{}, acto.Field{}, acto.Field{}, nil
	}

	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		vals := make([]float64, 4)
		ok := true
		for j := 0; j < 4; j++ {
			vals[j], err = strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		x = append(x, vals[0])
		rho = append(rho, vals[1])
		a = append(a, vals[2])
		v = append(v, vals[3])
	}

	return x, rho, a, v, nil
}
