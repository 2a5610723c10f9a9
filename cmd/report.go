package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/stuttgart-things/ghsecrets/internal/repo"
	"github.com/stuttgart-things/ghsecrets/internal/report"
)

const defaultReportPath = ".ghsecrets/last-sync.yaml"

var (
	reportPath   string
	reportStatus string
	reportName   string
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a saved sync report",
	Long:  `Lists the secrets recorded in a sync report written by 'sync --report', with optional filtering by status or secret name.`,
	Run:   runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportPath, "report", defaultReportPath, "Path to the sync report")
	reportCmd.Flags().StringVar(&reportStatus, "status", "", "Filter by status (set, failed, skipped, dry-run)")
	reportCmd.Flags().StringVar(&reportName, "name", "", "Show the last recorded result for this secret name")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "table", "Output format (table, json)")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) {
	path := reportPath

	// If not absolute, try relative to repo root
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			if root, err := repo.FindRoot("."); err == nil {
				path = filepath.Join(root, path)
			}
		}
	}

	rep, err := report.Load(path)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error loading report: %v", err)))
		os.Exit(1)
	}

	entries := selectReportEntries(rep, reportName, reportStatus)

	switch reportOutput {
	case "json":
		if err := printReportJSON(os.Stdout, entries); err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Error marshalling JSON: %v", err)))
			os.Exit(1)
		}
	default:
		fmt.Printf("Repository: %s\nKey ID:     %s\nSynced at:  %s\n", rep.Repository, rep.KeyID, rep.SyncedAt)
		if rep.DryRun {
			fmt.Println("Dry run:    yes")
		}
		fmt.Println()
		if len(entries) == 0 {
			fmt.Println("No secrets found.")
			return
		}
		printReportTable(os.Stdout, entries)
	}
}

// selectReportEntries applies the --name and --status filters
func selectReportEntries(rep *report.SyncReport, name, status string) []report.SecretEntry {
	if name == "" {
		return report.FilterEntries(rep, status)
	}

	e := report.FindEntry(rep, name)
	if e == nil || (status != "" && e.Status != status) {
		return nil
	}
	return []report.SecretEntry{*e}
}

func printReportTable(w io.Writer, entries []report.SecretEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tNAME\tSTATUS\tCODE\tERROR")
	fmt.Fprintln(tw, "----\t----\t------\t----\t-----")

	for _, e := range entries {
		code := "-"
		if e.StatusCode != 0 {
			code = fmt.Sprintf("%d", e.StatusCode)
		}
		name := e.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.Line, name, e.Status, code, e.Error)
	}

	tw.Flush()
}

func printReportJSON(w io.Writer, entries []report.SecretEntry) error {
	if entries == nil {
		entries = []report.SecretEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}
