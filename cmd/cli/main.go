package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"desa/adapters/tabular"
	"desa/domain/survey"
	"desa/internal/summarize"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "desa-cli",
		Short: "DESA CLI for summarizing evaluation exports without the web UI",
	}

	rootCmd.AddCommand(newSummarizeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSummarizeCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "summarize [files...]",
		Short: "Compute category and session averages across evaluation files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var batch []summarize.UploadedFile
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				batch = append(batch, summarize.UploadedFile{
					Name: filepath.Base(path),
					Data: data,
				})
			}

			pipeline := summarize.New(tabular.NewCachingLoader(len(batch)), survey.DefaultRules())
			report := pipeline.Summarize(context.Background(), batch)

			for _, d := range report.Diagnostics {
				fmt.Fprintf(os.Stderr, "[%s] %s", d.Severity, d.File)
				if d.Column != "" {
					fmt.Fprintf(os.Stderr, " / %s", d.Column)
				}
				fmt.Fprintf(os.Stderr, ": %s\n", d.Message)
			}

			if report.Empty() {
				fmt.Println("No recognizable evaluation columns were found.")
				return nil
			}

			if report.Category != nil {
				fmt.Println("Category Averages Comparison")
				if err := printTable(report.Category); err != nil {
					return err
				}
			}
			if report.Session != nil {
				fmt.Println("Session Averages Comparison")
				if err := printTable(report.Session); err != nil {
					return err
				}
			}

			if outDir != "" {
				if err := writeCSVs(report, outDir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "directory to write Category_Summary.csv / Session_Summary.csv")
	return cmd
}

func printTable(table *summarize.SummaryTable) error {
	out, err := table.CSV()
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func writeCSVs(report *summarize.Report, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	exports := []struct {
		table    *summarize.SummaryTable
		filename string
	}{
		{report.Category, "Category_Summary.csv"},
		{report.Session, "Session_Summary.csv"},
	}
	for _, e := range exports {
		if e.table == nil {
			continue
		}
		out, err := e.table.CSV()
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, e.filename)
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}
