package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gossdi/domain/morph"
)

func sampleResults() morph.ResultSet {
	return morph.ResultSet{
		"Fox": {
			Species:         "Fox",
			MaleCount:       2,
			FemaleCount:     2,
			AvgMale:         morph.SomeMetric(10.5),
			AvgFemale:       morph.SomeMetric(12.5),
			StandardSSDi:    0.19,
			AvgPairwiseSSDi: morph.SomeMetric(0.193),
			AbsDifference:   morph.SomeMetric(0.003),
			TTestPValue:     "0.012",
			PermPValue:      "<0.001",
			PermLow:         morph.SomeMetric(-0.146),
			PermHigh:        morph.SomeMetric(0.146),
		},
		"Bear": {
			Species:      "Bear",
			MaleCount:    1,
			FemaleCount:  1,
			StandardSSDi: 0.1,
			TTestPValue:  morph.PValueNA,
			PermPValue:   morph.PValueNA,
		},
	}
}

func TestFileWriter_WritesBothFormats(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)
	require.NoError(t, w.Write(sampleResults()))

	for _, name := range []string{"SSDi-Results.txt", "SSDi-Results.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestFileWriter_ColumnOrderAndRowOrder(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)
	require.NoError(t, w.Write(sampleResults()))

	f, err := os.Open(filepath.Join(dir, "SSDi-Results.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Species", "Number_Males", "Number_Females", "Avg_Male", "Avg_Female",
		"Standard_SSDi", "Avg_Pairwise_SSDi", "AbsDifference",
		"Dimorphism_PValue", "2.5_percentile", "97.5_percentile",
	}, rows[0])

	// Alphabetical by species
	assert.Equal(t, "Bear", rows[1][0])
	assert.Equal(t, "Fox", rows[2][0])

	// Dimorphism_PValue carries the permutation p-value
	assert.Equal(t, "<0.001", rows[2][8])

	// Both-single species render NA for every pairwise field
	bear := rows[1]
	for _, col := range []int{3, 4, 6, 7, 8, 9, 10} {
		assert.Equal(t, "NA", bear[col], "column %d", col)
	}
	assert.Equal(t, "0.1", bear[5])
}

func TestFileWriter_TabFileUsesTabs(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)
	require.NoError(t, w.Write(sampleResults()))

	data, err := os.ReadFile(filepath.Join(dir, "SSDi-Results.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 11, len(strings.Split(lines[0], "\t")))
}
