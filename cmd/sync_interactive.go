package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/stuttgart-things/ghsecrets/internal/envfile"
	"github.com/stuttgart-things/ghsecrets/internal/repo"
)

// stdinIsTerminal reports whether prompts can be shown
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// runForm shows a huh form and blocks until it is completed
var runForm = func(form *huh.Form) error {
	return form.Run()
}

// runSyncInteractive runs the sync command in interactive mode
func runSyncInteractive(config *SyncConfig) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("interactive mode requires a terminal, use --non-interactive")
	}

	// 1. The secrets file must exist before anything is asked
	path, entries, err := loadSecretsFile(config.File, "")
	if err != nil {
		return err
	}
	out := config.stdout()
	fmt.Fprintf(out, "Loaded %d definitions from %s\n\n", countValid(entries), path)

	// 2. Suggest owner/repo from the git remote
	if config.Owner == "" || config.Repo == "" {
		suggestRepository(config)
	}

	// 3. Prompt for whatever is still missing
	if err := promptRepository(config); err != nil {
		return fmt.Errorf("repository details: %w", err)
	}

	// 4. Preview secret names (never values) and confirm
	fmt.Fprintln(out, progressStyle.Render("Secrets to publish:"))
	fmt.Fprintln(out, previewStyle.Render(previewEntries(entries)))

	var confirm bool
	title := fmt.Sprintf("Publish these secrets to %s?", config.repository())
	if config.DryRun {
		title = fmt.Sprintf("Seal these secrets for %s (dry run)?", config.repository())
	}
	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description("Existing secrets with the same name are replaced").
				Affirmative("Yes, sync").
				Negative("Cancel").
				Value(&confirm),
		),
	)

	if err := runForm(confirmForm); err != nil {
		return fmt.Errorf("confirmation: %w", err)
	}

	if !confirm {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	// 5. Sync
	_, err = executeSync(config, path, entries)
	return err
}

// suggestRepository fills owner and repo from the configured git remote.
// Lookup errors are ignored, the user is prompted instead.
func suggestRepository(config *SyncConfig) {
	r, err := repo.Open(".")
	if err != nil {
		return
	}
	owner, name, err := r.RemoteSlug(config.Remote)
	if err != nil {
		return
	}
	if config.Owner == "" {
		config.Owner = owner
	}
	if config.Repo == "" {
		config.Repo = name
	}
}

func promptRepository(config *SyncConfig) error {
	required := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
	}

	var fields []huh.Field

	// Owner and repo are always shown so suggestions can be corrected
	fields = append(fields,
		huh.NewInput().
			Title("Repository owner").
			Description("GitHub user or organization").
			Value(&config.Owner).
			Validate(required("owner")),

		huh.NewInput().
			Title("Repository name").
			Value(&config.Repo).
			Validate(required("repository")),
	)

	if config.Token == "" {
		fields = append(fields,
			huh.NewInput().
				Title("GitHub token").
				Description("Needs write access to repository secrets").
				EchoMode(huh.EchoModePassword).
				Value(&config.Token).
				Validate(required("token")),
		)
	}

	return runForm(huh.NewForm(huh.NewGroup(fields...)))
}

// previewEntries lists the names to be published and the skipped lines
func previewEntries(entries []envfile.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		if e.Valid() {
			fmt.Fprintf(&b, "%4d  %s\n", e.Line, e.Name)
		} else {
			fmt.Fprintf(&b, "%4d  (skipped: %v)\n", e.Line, e.Err)
		}
	}
	if b.Len() == 0 {
		return "(no definitions)"
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func countValid(entries []envfile.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Valid() {
			n++
		}
	}
	return n
}
