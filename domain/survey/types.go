package survey

// Table is one parsed survey export: an ordered sequence of named columns.
// Cells are kept as raw strings; numeric coercion happens at aggregation
// time. Immutable after load.
type Table struct {
	Name    string
	Columns []Column
}

// Column is a single survey column with its header and raw cell values.
type Column struct {
	Header string
	Cells  []string
}

// Headers returns the column headers in table order.
func (t *Table) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Header
	}
	return headers
}

// RowCount returns the length of the longest column.
func (t *Table) RowCount() int {
	max := 0
	for _, col := range t.Columns {
		if len(col.Cells) > max {
			max = len(col.Cells)
		}
	}
	return max
}

// Category is one of the fixed evaluation dimensions used to bucket
// survey columns.
type Category string

const (
	CategoryProgramManagement Category = "PROGRAM MANAGEMENT"
	CategoryTrainingVenue     Category = "TRAINING VENUE"
	CategoryFoodMeals         Category = "FOOD/MEALS"
	CategoryAccommodation     Category = "ACCOMMODATION"
	CategoryAdministrative    Category = "ADMINISTRATIVE ARRANGEMENTS"
	CategorySession           Category = "SESSION"
)

// CategoryOrder is the fixed classification priority. The first matching
// category wins, so reordering this list changes which columns are
// counted where.
var CategoryOrder = []Category{
	CategoryProgramManagement,
	CategoryTrainingVenue,
	CategoryFoodMeals,
	CategoryAccommodation,
	CategoryAdministrative,
	CategorySession,
}

// AverageRecord maps a row-key (category label or session key) to a
// rounded mean for one file. Keys with empty pools are absent, never zero.
type AverageRecord map[string]float64

// Severity grades a diagnostic message.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a non-fatal message surfaced next to the output tables:
// one per file that failed to parse, one per SESSION column that matched
// no session pattern.
type Diagnostic struct {
	Severity Severity
	File     string
	Column   string
	Message  string
}
