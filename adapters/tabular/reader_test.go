package tabular

import (
	"testing"

	"desa/internal/errors"
	"desa/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable_CSV(t *testing.T) {
	data := testkit.CSVBytes(testkit.EvaluationRows())

	table, err := NewDataReader("eval.csv", data).ReadTable()
	require.NoError(t, err)

	assert.Equal(t, "eval.csv", table.Name)
	// Placeholder "Unnamed: 0" column is dropped, the other nine survive.
	assert.Len(t, table.Columns, 9)
	assert.NotContains(t, table.Headers(), "Unnamed: 0")
	assert.Equal(t, 3, table.RowCount())

	first := table.Columns[0]
	assert.Equal(t, "Participant Name", first.Header)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, first.Cells)
}

func TestReadTable_XLSX(t *testing.T) {
	data := testkit.XLSXBytes(testkit.EvaluationRows())

	table, err := NewDataReader("eval.xlsx", data).ReadTable()
	require.NoError(t, err)

	assert.Len(t, table.Columns, 9)
	assert.Equal(t, 3, table.RowCount())
}

func TestReadTable_FormatSelectionIsCaseInsensitive(t *testing.T) {
	data := testkit.CSVBytes(testkit.EvaluationRows())

	table, err := NewDataReader("EVAL.CSV", data).ReadTable()
	require.NoError(t, err)
	assert.Len(t, table.Columns, 9)
}

func TestReadTable_RaggedCSVRows(t *testing.T) {
	rows := [][]string{
		{"FOOD/MEALS", "ACCOMMODATION"},
		{"4"},
		{"5", "3", "stray"},
	}

	table, err := NewDataReader("ragged.csv", testkit.CSVBytes(rows)).ReadTable()
	require.NoError(t, err)

	require.Len(t, table.Columns, 2)
	assert.Equal(t, []string{"4", "5"}, table.Columns[0].Cells)
	assert.Equal(t, []string{"", "3"}, table.Columns[1].Cells)
}

func TestReadTable_MalformedContent(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
	}{
		{"empty csv", "empty.csv", nil},
		{"binary junk as xlsx", "junk.xlsx", []byte("this is not a zip archive")},
		{"empty xlsx", "empty.xlsx", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataReader(tt.filename, tt.data).ReadTable()
			require.Error(t, err)
			assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.filename)
		})
	}
}

func TestReadTable_HeaderOnlyFileIsValid(t *testing.T) {
	rows := [][]string{{"FOOD/MEALS", "Participant Name"}}

	table, err := NewDataReader("headers.csv", testkit.CSVBytes(rows)).ReadTable()
	require.NoError(t, err)
	assert.Len(t, table.Columns, 2)
	assert.Equal(t, 0, table.RowCount())
}

func TestCachingLoader_MemoizesByContent(t *testing.T) {
	loader := NewCachingLoader(8)
	data := testkit.CSVBytes(testkit.EvaluationRows())

	first, err := loader.Load("a.csv", data)
	require.NoError(t, err)
	second, err := loader.Load("other-name.csv", data)
	require.NoError(t, err)

	// Identical content maps to the same cached table regardless of name.
	assert.Same(t, first, second)
	assert.Equal(t, 1, loader.Len())
}

func TestCachingLoader_ParseErrorsAreNotCached(t *testing.T) {
	loader := NewCachingLoader(8)

	_, err := loader.Load("bad.csv", []byte("\"unterminated"))
	require.Error(t, err)
	assert.Equal(t, 0, loader.Len())

	_, err = loader.Load("bad.csv", []byte("\"unterminated"))
	require.Error(t, err)
}

func TestCachingLoader_ResetsWhenFull(t *testing.T) {
	loader := NewCachingLoader(2)

	for i, body := range []string{"FOOD/MEALS\n1", "FOOD/MEALS\n2", "FOOD/MEALS\n3"} {
		_, err := loader.Load("f.csv", []byte(body))
		require.NoError(t, err, "file %d", i)
	}

	assert.LessOrEqual(t, loader.Len(), 2)
}
