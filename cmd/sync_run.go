package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stuttgart-things/ghsecrets/internal/envfile"
	"github.com/stuttgart-things/ghsecrets/internal/github"
	"github.com/stuttgart-things/ghsecrets/internal/repo"
	"github.com/stuttgart-things/ghsecrets/internal/sealbox"
	"github.com/stuttgart-things/ghsecrets/internal/secretsync"
)

// resolveSecretsFile returns path unchanged when it is absolute or exists
// relative to workDir. Otherwise the path is tried relative to the root of
// the git repository containing workDir.
func resolveSecretsFile(path, workDir string) string {
	if filepath.IsAbs(path) {
		return path
	}

	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return path
		}
		workDir = cwd
	}

	candidate := filepath.Join(workDir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	root, err := repo.FindRoot(workDir)
	if err != nil {
		return candidate
	}

	inRoot := filepath.Join(root, path)
	if _, err := os.Stat(inRoot); err == nil {
		return inRoot
	}

	return candidate
}

// loadSecretsFile resolves and parses the secrets file. A missing file is fatal.
func loadSecretsFile(path, workDir string) (string, []envfile.Entry, error) {
	resolved := resolveSecretsFile(path, workDir)

	entries, err := envfile.ParseFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return resolved, nil, fmt.Errorf("secrets file not found at %s", resolved)
		}
		return resolved, nil, err
	}

	return resolved, entries, nil
}

// executeSync fetches the public key, seals and publishes all entries,
// prints a summary and writes the optional report
func executeSync(config *SyncConfig, path string, entries []envfile.Entry) (*secretsync.Summary, error) {
	out := config.stdout()

	client := github.NewClient(config.APIUrl, config.Token)
	syncer := &secretsync.Syncer{
		Keys:      client,
		Sealer:    secretsync.SealerFunc(sealbox.Seal),
		Publisher: client,
		Printer:   newConsolePrinter(out, config.stderr(), path),
		DryRun:    config.DryRun,
	}

	fmt.Fprintln(out, progressStyle.Render(fmt.Sprintf("Fetching public key for %s...", config.repository())))
	summary, err := syncer.Sync(config.Owner, config.Repo, entries)
	if err != nil {
		return nil, err
	}

	printSyncSummary(out, summary, config.DryRun)

	if config.ReportPath != "" {
		if err := writeSyncReport(config.ReportPath, summary, config.DryRun); err != nil {
			// Secrets are already published at this point
			fmt.Fprintln(config.stderr(), errorStyle.Render(fmt.Sprintf("Failed to write report: %v", err)))
		} else {
			fmt.Fprintf(out, "Report written: %s\n", config.ReportPath)
		}
	}

	return summary, nil
}
