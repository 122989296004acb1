// Package testkit provides shared fixtures for exercising the
// summarization pipeline: a canonical evaluation sheet plus CSV and xlsx
// encodings of arbitrary row data.
package testkit

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// EvaluationRows returns a small but representative evaluation export:
// an ignored identity column, a pandas-style placeholder column, the
// five fixed categories and two session groups spread across question
// columns.
func EvaluationRows() [][]string {
	return [][]string{
		{
			"Participant Name",
			"Unnamed: 0",
			"PROGRAM MANAGEMENT rating",
			"TRAINING VENUE rating",
			"FOOD/MEALS rating",
			"ACCOMMODATION rating",
			"ADMINISTRATIVE ARRANGEMENTS rating",
			"Q1 DAY1-LM1 Program Objectives",
			"Q2 DAY1-LM1 Content Relevance",
			"Q3_DAY1 LM2 Content Relevance",
		},
		{"Alice", "0", "4", "5", "4", "3", "5", "5", "4", "3"},
		{"Bob", "1", "5", "4", "3", "4", "4", "4", "5", "4"},
		{"Carol", "2", "3", "n/a", "5", "", "3", "3", "", "5"},
	}
}

// CSVBytes encodes rows as comma-separated text.
func CSVBytes(rows [][]string) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			panic(fmt.Sprintf("testkit: csv write failed: %v", err))
		}
	}
	w.Flush()
	return buf.Bytes()
}

// XLSXBytes encodes rows as a single-sheet workbook.
func XLSXBytes(rows [][]string) []byte {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				panic(fmt.Sprintf("testkit: bad cell coordinates: %v", err))
			}
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				panic(fmt.Sprintf("testkit: xlsx write failed: %v", err))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		panic(fmt.Sprintf("testkit: xlsx encode failed: %v", err))
	}
	return buf.Bytes()
}
