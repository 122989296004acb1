package summarize

import (
	"context"
	"log"

	"desa/adapters/tabular"
	"desa/domain/survey"

	"github.com/google/uuid"
)

// UploadedFile is one user-supplied file in a batch.
type UploadedFile struct {
	Name string
	Data []byte
}

// Report is the outcome of summarizing one batch: up to two summary
// tables plus the non-fatal diagnostics collected along the way. Either
// table is nil when no file produced averages of that kind.
type Report struct {
	BatchID     string
	Category    *SummaryTable
	Session     *SummaryTable
	Diagnostics []survey.Diagnostic
	FileCount   int
}

// Empty reports whether the batch produced no tables at all.
func (r *Report) Empty() bool {
	return r.Category == nil && r.Session == nil
}

// Pipeline runs the full upload → classify → aggregate → combine
// transform. It is stateless: every invocation recomputes everything
// from the batch it is handed; the only carry-over is the loader's
// content-addressed parse cache.
type Pipeline struct {
	loader *tabular.CachingLoader
	rules  []survey.Rule
}

// New creates a pipeline using the given loader and classification
// rules. Pass survey.DefaultRules() unless the deployment extends the
// SESSION keyword list.
func New(loader *tabular.CachingLoader, rules []survey.Rule) *Pipeline {
	return &Pipeline{loader: loader, rules: rules}
}

// Summarize processes the batch sequentially, isolating failures at
// file granularity: a file that fails to parse becomes an error
// diagnostic and the rest of the batch proceeds.
func (p *Pipeline) Summarize(ctx context.Context, files []UploadedFile) *Report {
	report := &Report{BatchID: uuid.NewString()}
	log.Printf("[Pipeline] Batch %s: summarizing %d file(s)", report.BatchID, len(files))

	var categoryRecords, sessionRecords []FileRecord

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			log.Printf("[Pipeline] Batch %s cancelled: %v", report.BatchID, err)
			break
		}

		table, err := p.loader.Load(file.Name, file.Data)
		if err != nil {
			log.Printf("[Pipeline] Skipping %s: %v", file.Name, err)
			report.Diagnostics = append(report.Diagnostics, survey.Diagnostic{
				Severity: survey.SeverityError,
				File:     file.Name,
				Message:  err.Error(),
			})
			continue
		}
		report.FileCount++

		assignment := survey.Classify(table, p.rules)

		if record := CategoryAverages(table, assignment); len(record) > 0 {
			categoryRecords = append(categoryRecords, FileRecord{File: file.Name, Record: record})
		}

		record, diagnostics := SessionAverages(table, assignment[survey.CategorySession])
		report.Diagnostics = append(report.Diagnostics, diagnostics...)
		if len(record) > 0 {
			sessionRecords = append(sessionRecords, FileRecord{File: file.Name, Record: record})
		}
	}

	report.Category = Combine("Category", categoryRecords)
	report.Session = Combine("Session", sessionRecords)

	log.Printf("[Pipeline] Batch %s done: %d file(s) processed, %d diagnostic(s)",
		report.BatchID, report.FileCount, len(report.Diagnostics))
	return report
}
