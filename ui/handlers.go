package ui

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"desa/internal/summarize"
)

type indexData struct {
	About         template.HTML
	Report        *summarize.Report
	CategoryChart template.JS
	SessionChart  template.JS
}

// handleIndex renders the upload form plus, when a batch has been
// summarized, the comparison tables and charts. With no report yet it
// shows the idle-state prompt.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	report := a.currentReport()

	data := indexData{About: a.aboutHTML, Report: report}
	if report != nil {
		var err error
		if data.CategoryChart, err = chartJSON(report.Category); err != nil {
			http.Error(w, "Failed to build chart data", http.StatusInternalServerError)
			return
		}
		if data.SessionChart, err = chartJSON(report.Session); err != nil {
			http.Error(w, "Failed to build chart data", http.StatusInternalServerError)
			return
		}
	}

	a.renderTemplate(w, "index.html", data)
}

// handleUpload accepts a multipart batch of CSV/XLSX files, runs the
// summarization pipeline over it and makes the result the current
// report.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := a.cfg.Upload.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		log.Printf("[UI] Rejecting upload: %v", err)
		http.Error(w, "Upload too large or malformed", http.StatusBadRequest)
		return
	}

	var batch []summarize.UploadedFile
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			data, err := readUpload(header)
			if err != nil {
				log.Printf("[UI] Failed to read upload %s: %v", header.Filename, err)
				http.Error(w, fmt.Sprintf("Failed to read %s", header.Filename), http.StatusBadRequest)
				return
			}
			batch = append(batch, summarize.UploadedFile{Name: header.Filename, Data: data})
		}
	}

	if len(batch) == 0 {
		http.Error(w, "No files uploaded", http.StatusBadRequest)
		return
	}

	report := a.pipeline.Summarize(r.Context(), batch)
	a.setReport(report)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDownload serves the current report's category or session table
// as CSV.
func (a *App) handleDownload(w http.ResponseWriter, r *http.Request) {
	report := a.currentReport()
	if report == nil {
		http.NotFound(w, r)
		return
	}

	var table *summarize.SummaryTable
	var filename string
	switch chi.URLParam(r, "kind") {
	case "category":
		table, filename = report.Category, "Category_Summary.csv"
	case "session":
		table, filename = report.Session, "Session_Summary.csv"
	default:
		http.NotFound(w, r)
		return
	}
	if table == nil {
		http.NotFound(w, r)
		return
	}

	out, err := table.CSV()
	if err != nil {
		log.Printf("[UI] CSV export failed: %v", err)
		http.Error(w, "CSV export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Type", "text/csv")
	w.Write(out)
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// chartDataset is one bar series (one source file) for the grouped bar
// chart.
type chartDataset struct {
	Label string     `json:"label"`
	Data  []*float64 `json:"data"`
}

type chartPayload struct {
	Labels   []string       `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
}

// chartJSON converts a summary table into the grouped-bar payload the
// template feeds to Chart.js: x-axis = row-key, one series per file.
// The Overall Avg column is a table-only derivation and stays off the
// chart.
func chartJSON(table *summarize.SummaryTable) (template.JS, error) {
	if table == nil {
		return "", nil
	}

	payload := chartPayload{}
	for _, row := range table.Rows {
		payload.Labels = append(payload.Labels, row.Key)
	}
	for i, file := range table.Files {
		ds := chartDataset{Label: file}
		for _, row := range table.Rows {
			ds.Data = append(ds.Data, row.Values[i])
		}
		payload.Datasets = append(payload.Datasets, ds)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return template.JS(out), nil
}
