package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/actsim/internal/analysis"
)

// WriteTableCSV writes a convergence table in the column layout the
// external plotting layer consumes: N, L2_rho, L2_a, L2_V, mass.
func WriteTableCSV(w io.Writer, table analysis.Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"n", "l2_rho", "l2_a", "l2_v", "mass"}); err != nil {
		return err
	}
	for _, row := range table {
		rec := []string{
			strconv.Itoa(row.N),
			strconv.FormatFloat(row.L2Rho, 'e', 8, 64),
			strconv.FormatFloat(row.L2A, 'e', 8, 64),
			strconv.FormatFloat(row.L2V, 'e', 8, 64),
			strconv.FormatFloat(row.Mass, 'f', 8, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return cw.Error()
}

// ExportTableCSV writes the table to a file.
func ExportTableCSV(path string, table analysis.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTableCSV(f, table)
}

// ExportRunJSON dumps a stored run's metadata to w.
func ExportRunJSON(w io.Writer, meta *RunMetadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
