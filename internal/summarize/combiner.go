package summarize

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"desa/domain/survey"

	"gonum.org/v1/gonum/stat"
)

// FileRecord pairs a source filename with the Average Record it produced.
type FileRecord struct {
	File   string
	Record survey.AverageRecord
}

// SummaryTable is the cross-file combination of Average Records of one
// kind: rows indexed by row-key, one column per source file, plus a
// derived Overall Avg column.
type SummaryTable struct {
	RowLabel string
	Files    []string
	Rows     []SummaryRow
}

// SummaryRow is one row-key with its per-file averages (nil where a file
// produced no value) and the row-wise overall average.
type SummaryRow struct {
	Key     string
	Values  []*float64
	Overall *float64
}

// Combine outer-joins per-file Average Records on row-key: a key present
// in any record appears in the output, with nil entries for files that
// lack it. Rows are sorted by key ascending. The Overall Avg column is
// the row-wise mean across file columns with nils excluded, nil when
// every file is nil. Returns nil when no file produced a record, so the
// caller renders nothing instead of an empty table.
func Combine(rowLabel string, records []FileRecord) *SummaryTable {
	if len(records) == 0 {
		return nil
	}

	keySet := make(map[string]struct{})
	for _, fr := range records {
		for key := range fr.Record {
			keySet[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	table := &SummaryTable{RowLabel: rowLabel}
	for _, fr := range records {
		table.Files = append(table.Files, fr.File)
	}

	for _, key := range keys {
		row := SummaryRow{Key: key, Values: make([]*float64, len(records))}
		var present []float64
		for i, fr := range records {
			if v, ok := fr.Record[key]; ok {
				v := v
				row.Values[i] = &v
				present = append(present, v)
			}
		}
		if len(present) > 0 {
			overall := round2(stat.Mean(present, nil))
			row.Overall = &overall
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// CSV renders the table as comma-separated text: an unnamed row-key
// column first, one column per source file, then Overall Avg. Numeric
// cells carry 2 decimals; absent values are empty.
func (t *SummaryTable) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{""}, t.Files...)
	header = append(header, "Overall Avg")
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range t.Rows {
		record := make([]string, 0, len(row.Values)+2)
		record = append(record, row.Key)
		for _, v := range row.Values {
			record = append(record, formatCell(v))
		}
		record = append(record, formatCell(row.Overall))
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}
