// Package report renders the per-species results table as flat files.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gossdi/domain/morph"
)

const (
	tabFileName = "SSDi-Results.txt"
	csvFileName = "SSDi-Results.csv"
)

var header = []string{
	"Species", "Number_Males", "Number_Females", "Avg_Male", "Avg_Female",
	"Standard_SSDi", "Avg_Pairwise_SSDi", "AbsDifference",
	"Dimorphism_PValue", "2.5_percentile", "97.5_percentile",
}

// FileWriter writes both the tab-delimited and comma-separated result
// files into a single output directory
type FileWriter struct {
	outDir string
}

// NewFileWriter creates a writer targeting outDir, which must exist
func NewFileWriter(outDir string) *FileWriter {
	return &FileWriter{outDir: outDir}
}

// Write renders results alphabetically by species into both output files.
// Existing files are replaced.
func (w *FileWriter) Write(results morph.ResultSet) error {
	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, header)
	for _, key := range results.SortedKeys() {
		rows = append(rows, renderRow(results[key]))
	}

	if err := w.writeFile(tabFileName, '\t', rows); err != nil {
		return err
	}
	return w.writeFile(csvFileName, ',', rows)
}

func (w *FileWriter) writeFile(name string, comma rune, rows [][]string) error {
	path := filepath.Join(w.outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	cw.Comma = comma
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// renderRow lays out one species result in output column order. The
// Dimorphism_PValue column carries the permutation p-value; the t-test
// p-value is diagnostic-only.
func renderRow(r morph.SpeciesResult) []string {
	return []string{
		r.Species.String(),
		strconv.Itoa(r.MaleCount),
		strconv.Itoa(r.FemaleCount),
		r.AvgMale.Format(),
		r.AvgFemale.Format(),
		strconv.FormatFloat(r.StandardSSDi, 'g', -1, 64),
		r.AvgPairwiseSSDi.Format(),
		r.AbsDifference.Format(),
		r.PermPValue.String(),
		r.PermLow.Format(),
		r.PermHigh.Format(),
	}
}
