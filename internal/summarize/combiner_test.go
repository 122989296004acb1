package summarize

import (
	"testing"

	"desa/domain/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestCombine_OuterJoinAndSort(t *testing.T) {
	records := []FileRecord{
		{File: "day2.csv", Record: survey.AverageRecord{"TRAINING VENUE": 3.0, "FOOD/MEALS": 4.0}},
		{File: "day1.csv", Record: survey.AverageRecord{"ACCOMMODATION": 2.0, "FOOD/MEALS": 5.0}},
	}

	table := Combine("Category", records)
	require.NotNil(t, table)

	assert.Equal(t, []string{"day2.csv", "day1.csv"}, table.Files)

	keys := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		keys[i] = row.Key
	}
	assert.Equal(t, []string{"ACCOMMODATION", "FOOD/MEALS", "TRAINING VENUE"}, keys)

	// ACCOMMODATION exists only in day1.csv; day2.csv's cell is nil.
	acc := table.Rows[0]
	assert.Nil(t, acc.Values[0])
	require.NotNil(t, acc.Values[1])
	assert.Equal(t, 2.0, *acc.Values[1])
	require.NotNil(t, acc.Overall)
	assert.Equal(t, 2.0, *acc.Overall)
}

func TestCombine_OverallAvgExcludesNulls(t *testing.T) {
	records := []FileRecord{
		{File: "file1.csv", Record: survey.AverageRecord{"FOOD/MEALS": 4.0}},
		{File: "file2.csv", Record: survey.AverageRecord{}},
		{File: "file3.csv", Record: survey.AverageRecord{"FOOD/MEALS": 2.0}},
	}

	table := Combine("Category", records)
	require.NotNil(t, table)
	require.Len(t, table.Rows, 1)

	row := table.Rows[0]
	assert.Equal(t, "FOOD/MEALS", row.Key)
	require.NotNil(t, row.Overall)
	// Mean of {4.00, 2.00}: the null is excluded, not treated as zero.
	assert.Equal(t, 3.0, *row.Overall)
}

func TestCombine_NoRecordsNoTable(t *testing.T) {
	assert.Nil(t, Combine("Session", nil))
}

func TestCombine_RowKeysAreUnionOfPerFileKeys(t *testing.T) {
	alone1 := Combine("Category", []FileRecord{
		{File: "a.csv", Record: survey.AverageRecord{"FOOD/MEALS": 4.0}},
	})
	alone2 := Combine("Category", []FileRecord{
		{File: "b.csv", Record: survey.AverageRecord{"TRAINING VENUE": 3.0}},
	})
	together := Combine("Category", []FileRecord{
		{File: "a.csv", Record: survey.AverageRecord{"FOOD/MEALS": 4.0}},
		{File: "b.csv", Record: survey.AverageRecord{"TRAINING VENUE": 3.0}},
	})

	union := make(map[string]struct{})
	for _, tbl := range []*SummaryTable{alone1, alone2} {
		for _, row := range tbl.Rows {
			union[row.Key] = struct{}{}
		}
	}

	assert.Len(t, together.Rows, len(union))
	for _, row := range together.Rows {
		_, ok := union[row.Key]
		assert.True(t, ok, "row %s must come from one of the per-file records", row.Key)
	}
}

func TestSummaryTableCSV(t *testing.T) {
	table := &SummaryTable{
		RowLabel: "Category",
		Files:    []string{"day1.csv", "day2.csv"},
		Rows: []SummaryRow{
			{Key: "ACCOMMODATION", Values: []*float64{ptr(2), nil}, Overall: ptr(2)},
			{Key: "FOOD/MEALS", Values: []*float64{ptr(4.5), ptr(3.25)}, Overall: ptr(3.88)},
		},
	}

	out, err := table.CSV()
	require.NoError(t, err)

	expected := ",day1.csv,day2.csv,Overall Avg\n" +
		"ACCOMMODATION,2.00,,2.00\n" +
		"FOOD/MEALS,4.50,3.25,3.88\n"
	assert.Equal(t, expected, string(out))
}
