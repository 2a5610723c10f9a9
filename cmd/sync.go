package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stuttgart-things/ghsecrets/internal/envfile"
	"github.com/stuttgart-things/ghsecrets/internal/github"
	"github.com/stuttgart-things/ghsecrets/internal/repo"
)

var (
	syncOwner      string
	syncRepo       string
	syncToken      string
	syncAPIURL     string
	syncFile       string
	syncReportPath string
	syncDryRun     bool
	syncRemote     string

	// Mode flags for sync
	syncInteractive    bool
	syncNonInteractive bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync secrets from a local file to GitHub Actions",
	Long: `Reads name=value definitions from a local secrets file, seals every value with the
repository's public key and creates or updates the matching GitHub Actions repository secrets.
Plaintext values never leave the local machine.`,
	Run: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncOwner, "owner", "", "GitHub repository owner")
	syncCmd.Flags().StringVar(&syncRepo, "repo", "", "GitHub repository name")
	syncCmd.Flags().StringVar(&syncToken, "token", "", "GitHub token with permission to write repository secrets")
	syncCmd.Flags().StringVarP(&syncAPIURL, "api-url", "a", github.DefaultBaseURL, "GitHub API URL")
	syncCmd.Flags().StringVarP(&syncFile, "file", "f", envfile.DefaultFileName, "Secrets file (name=value per line)")
	syncCmd.Flags().StringVar(&syncReportPath, "report", "", "Write a sync report (names and outcomes only) to this path")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Fetch the key and seal values without publishing")
	syncCmd.Flags().StringVar(&syncRemote, "git-remote", repo.DefaultRemote, "Git remote used to suggest owner/repo in interactive mode")

	// Mode flags
	syncCmd.Flags().BoolVarP(&syncInteractive, "interactive", "i", false, "Prompt for missing values and confirm before publishing")
	syncCmd.Flags().BoolVar(&syncNonInteractive, "non-interactive", false, "Force non-interactive mode")

	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) {
	fmt.Println(logo)

	config := &SyncConfig{
		Owner:       syncOwner,
		Repo:        syncRepo,
		Token:       syncToken,
		APIUrl:      syncAPIURL,
		File:        syncFile,
		ReportPath:  syncReportPath,
		DryRun:      syncDryRun,
		Remote:      syncRemote,
		Interactive: syncInteractive && !syncNonInteractive,
	}

	var err error
	if config.Interactive {
		err = runSyncInteractive(config)
	} else {
		err = runSyncNonInteractive(config)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
