package cmd

import (
	"fmt"
)

// runSyncNonInteractive runs the sync command in non-interactive mode
func runSyncNonInteractive(config *SyncConfig) error {
	// Validate required inputs before touching the file or the network
	if config.Owner == "" {
		return fmt.Errorf("--owner is required in non-interactive mode")
	}
	if config.Repo == "" {
		return fmt.Errorf("--repo is required in non-interactive mode")
	}
	if config.Token == "" {
		return fmt.Errorf("--token is required in non-interactive mode")
	}

	path, entries, err := loadSecretsFile(config.File, "")
	if err != nil {
		return err
	}

	_, err = executeSync(config, path, entries)
	return err
}
