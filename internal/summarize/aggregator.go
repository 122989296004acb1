package summarize

import (
	"fmt"

	"desa/domain/survey"

	"github.com/montanaflynn/stats"
)

// averagedCategories are the row-keys the category table reports, in the
// classifier's priority order. SESSION is aggregated separately by
// session key.
var averagedCategories = []survey.Category{
	survey.CategoryProgramManagement,
	survey.CategoryTrainingVenue,
	survey.CategoryFoodMeals,
	survey.CategoryAccommodation,
	survey.CategoryAdministrative,
}

// poolMean flattens every cell of the given columns into one pool of
// numeric values and returns its mean rounded to 2 decimals. Missing
// and unparseable cells are excluded; an empty pool reports ok=false.
// The pool is a pure statistical reduction, so row and column order
// never affect the result.
func poolMean(t *survey.Table, columnIdxs []int) (float64, bool) {
	var pool []float64
	for _, idx := range columnIdxs {
		for _, cell := range t.Columns[idx].Cells {
			if v, ok := coerceNumeric(cell); ok {
				pool = append(pool, v)
			}
		}
	}
	if len(pool) == 0 {
		return 0, false
	}

	mean, err := stats.Mean(pool)
	if err != nil {
		return 0, false
	}
	return round2(mean), true
}

// CategoryAverages computes the per-category means for one file. A
// category with no assigned columns or no numeric values is absent from
// the record, not zero.
func CategoryAverages(t *survey.Table, assignment survey.Assignment) survey.AverageRecord {
	record := make(survey.AverageRecord)
	for _, cat := range averagedCategories {
		idxs := assignment[cat]
		if len(idxs) == 0 {
			continue
		}
		if mean, ok := poolMean(t, idxs); ok {
			record[string(cat)] = mean
		}
	}
	return record
}

// SessionAverages groups the SESSION columns by extracted session key
// and computes one mean per group under the same pooling rules as
// CategoryAverages. Columns yielding no key are excluded and reported
// as warnings naming the file and column.
func SessionAverages(t *survey.Table, sessionIdxs []int) (survey.AverageRecord, []survey.Diagnostic) {
	groups := make(map[string][]int)
	var diagnostics []survey.Diagnostic

	for _, idx := range sessionIdxs {
		header := t.Columns[idx].Header
		key, ok := survey.SessionKeyFor(header)
		if !ok {
			diagnostics = append(diagnostics, survey.Diagnostic{
				Severity: survey.SeverityWarning,
				File:     t.Name,
				Column:   header,
				Message:  fmt.Sprintf("skipped column (no session match): %s", header),
			})
			continue
		}
		groups[key] = append(groups[key], idx)
	}

	record := make(survey.AverageRecord)
	for key, idxs := range groups {
		if mean, ok := poolMean(t, idxs); ok {
			record[key] = mean
		}
	}
	return record, diagnostics
}
