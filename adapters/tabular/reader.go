package tabular

import (
	"bytes"
	"encoding/csv"
	"log"
	"path/filepath"
	"strings"

	"desa/domain/survey"
	"desa/internal/errors"

	"github.com/xuri/excelize/v2"
)

// placeholderPrefix marks auto-generated index columns that spreadsheet
// tools emit for unnamed headers. Columns with this prefix are dropped
// after parsing.
const placeholderPrefix = "Unnamed"

// DataReader parses one uploaded CSV or spreadsheet file into a survey
// table. Format selection is by filename extension: ".csv" is parsed as
// comma-separated text, everything else goes through excelize.
type DataReader struct {
	name     string
	data     []byte
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader over raw uploaded bytes.
func NewDataReader(name string, data []byte) *DataReader {
	ext := strings.ToLower(filepath.Ext(name))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{name: name, data: data, fileType: fileType}
}

// ReadTable parses the file into a Table. Structurally invalid content
// yields a ParseError carrying the filename; the caller is expected to
// skip the file and continue with the rest of the batch.
func (r *DataReader) ReadTable() (*survey.Table, error) {
	log.Printf("[DataReader] Reading %s file: %s (%d bytes)", r.fileType, r.name, len(r.data))

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, errors.ParseError(r.name, err)
	}

	if len(rows) == 0 {
		return nil, errors.ParseError(r.name, errors.InvalidInput("file has no header row"))
	}

	return r.buildTable(rows), nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(r.data))
	// Survey exports are often ragged; column alignment is restored in
	// buildTable.
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(r.data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InvalidInput("workbook has no sheets")
	}

	return f.GetRows(sheets[0])
}

// buildTable converts raw string rows into ordered columns, dropping
// auto-generated placeholder columns.
func (r *DataReader) buildTable(rows [][]string) *survey.Table {
	headerRow := rows[0]
	dataRows := rows[1:]

	var columns []survey.Column
	dropped := 0
	for colIdx, header := range headerRow {
		header = strings.TrimSpace(header)
		if strings.HasPrefix(header, placeholderPrefix) {
			dropped++
			continue
		}

		cells := make([]string, len(dataRows))
		for rowIdx, row := range dataRows {
			if colIdx < len(row) {
				cells[rowIdx] = strings.TrimSpace(row[colIdx])
			}
		}
		columns = append(columns, survey.Column{Header: header, Cells: cells})
	}

	log.Printf("[DataReader] %s parsed (%d columns, %d rows, %d placeholder columns dropped)",
		r.name, len(columns), len(dataRows), dropped)

	return &survey.Table{Name: r.name, Columns: columns}
}
