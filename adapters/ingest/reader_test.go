package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gossdi/domain/core"
	"gossdi/ports"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func drain(t *testing.T, src ports.RecordSourcePort) []ports.RawRecord {
	t.Helper()
	var records []ports.RawRecord
	for {
		rec, ok, err := src.Next()
		require.NoError(t, err)
		if !ok {
			return records
		}
		records = append(records, rec)
	}
}

func TestFileSource_TabDelimited(t *testing.T) {
	path := writeTempFile(t, "sizes.txt",
		"Species\tSex\tSize\nFox\tM\t10.0\nFox\tF\t12.0\n")

	src, err := NewFileSource(path, FormatTab)
	require.NoError(t, err)
	defer src.Close()

	records := drain(t, src)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Fox", "M", "10.0"}, records[0].Fields)
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, []string{"Fox", "F", "12.0"}, records[1].Fields)
}

func TestFileSource_CSVSkipsHeaderAndBlankLines(t *testing.T) {
	path := writeTempFile(t, "sizes.csv",
		"Species,Sex,Size\nFox,M,10.0\n\nFox,F,12.0\n")

	src, err := NewFileSource(path, FormatCSV)
	require.NoError(t, err)
	defer src.Close()

	records := drain(t, src)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Fox", "M", "10.0"}, records[0].Fields)
	assert.Equal(t, []string{"Fox", "F", "12.0"}, records[1].Fields)
}

func TestFileSource_MissingFileIsFatal(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.txt"), FormatTab)
	require.Error(t, err)
	assert.True(t, core.IsFatalInputError(err))
}

func TestFileSource_WorkbookMatchesCSV(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "sizes.xlsx")

	wb := excelize.NewFile()
	rows := [][]interface{}{
		{"Species", "Sex", "Size"},
		{"Fox", "M", 10.0},
		{"Fox", "F", 12.0},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, wb.SaveAs(xlsxPath))
	require.NoError(t, wb.Close())

	src, err := NewFileSource(xlsxPath, FormatTab)
	require.NoError(t, err)
	defer src.Close()

	records := drain(t, src)
	require.Len(t, records, 2)
	assert.Equal(t, "Fox", records[0].Fields[0])
	assert.Equal(t, "M", records[0].Fields[1])
	assert.Equal(t, "10", records[0].Fields[2])
}

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"tab", "csv", "TAB", "Csv"} {
		_, err := ParseFormat(ok)
		assert.NoError(t, err, ok)
	}
	_, err := ParseFormat("pipe")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnsupportedInput)
}
