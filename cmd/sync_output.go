package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stuttgart-things/ghsecrets/internal/github"
	"github.com/stuttgart-things/ghsecrets/internal/report"
	"github.com/stuttgart-things/ghsecrets/internal/secretsync"
)

// Styles for terminal output
var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// consolePrinter renders sync progress to the terminal.
// Skipped lines and failures go to errOut.
type consolePrinter struct {
	out    io.Writer
	errOut io.Writer
	source string
}

func newConsolePrinter(out, errOut io.Writer, source string) *consolePrinter {
	return &consolePrinter{out: out, errOut: errOut, source: source}
}

func (p *consolePrinter) KeyFetched(owner, repo string, key *github.PublicKey) {
	fmt.Fprintln(p.out, successStyle.Render(fmt.Sprintf("Public key fetched successfully (key id %s)", key.KeyID)))
	fmt.Fprintln(p.out, progressStyle.Render(fmt.Sprintf("Starting secret sync from %s...", p.source)))
}

func (p *consolePrinter) Skipped(line int, raw string, err error) {
	fmt.Fprintln(p.errOut, warnStyle.Render(fmt.Sprintf("  Skipping malformed line %d (%v): %s", line, err, raw)))
}

func (p *consolePrinter) Setting(name string) {
	fmt.Fprintf(p.out, "  Encrypting and setting secret %q...\n", name)
}

func (p *consolePrinter) Set(name string, statusCode int) {
	fmt.Fprintln(p.out, successStyle.Render(fmt.Sprintf("  Secret %q has been set (status %d)", name, statusCode)))
}

func (p *consolePrinter) DryRun(name string) {
	fmt.Fprintf(p.out, "  Sealed secret %q (dry run, not published)\n", name)
}

func (p *consolePrinter) Failed(name string, err error) {
	fmt.Fprintln(p.errOut, errorStyle.Render(fmt.Sprintf("  Failed to set secret %q: %v", name, err)))
}

// printSyncSummary prints the totals of a finished run
func printSyncSummary(w io.Writer, summary *secretsync.Summary, dryRun bool) {
	set := summary.Count(secretsync.StatusSet)
	sealed := summary.Count(secretsync.StatusDryRun)
	failed := summary.Count(secretsync.StatusFailed)
	skipped := summary.Count(secretsync.StatusSkipped)
	total := len(summary.Results) - skipped

	fmt.Fprintln(w)
	if dryRun {
		fmt.Fprintln(w, "=== DRY RUN - No secrets published ===")
		fmt.Fprintf(w, "Sealed %d of %d secrets for %s/%s\n", sealed, total, summary.Owner, summary.Repo)
	} else if failed == 0 {
		fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("All %d secrets synced to %s/%s", set, summary.Owner, summary.Repo)))
	} else {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Synced %d of %d secrets to %s/%s (%d failed)", set, total, summary.Owner, summary.Repo, failed)))
	}

	if skipped > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d malformed line(s) skipped", skipped)))
	}
}

// buildSyncReport converts a summary into a report document
func buildSyncReport(summary *secretsync.Summary, dryRun bool, now time.Time) *report.SyncReport {
	rep := report.NewReport(summary.Owner + "/" + summary.Repo)
	rep.KeyID = summary.KeyID
	rep.SyncedAt = now.UTC().Format(time.RFC3339)
	rep.DryRun = dryRun

	for _, r := range summary.Results {
		entry := report.SecretEntry{
			Name:       r.Name,
			Line:       r.Line,
			Status:     string(r.Status),
			StatusCode: r.StatusCode,
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		report.AddEntry(rep, entry)
	}

	return rep
}

// writeSyncReport saves the report for a finished run
func writeSyncReport(path string, summary *secretsync.Summary, dryRun bool) error {
	return report.Save(path, buildSyncReport(summary, dryRun, time.Now()))
}
